package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

func (h *SaleHandler) GetByID(c *fiber.Ctx) (err error) {
	id := c.Params("id")
	ctx, span := commontrace.StartSpan(c.UserContext(), attributes.AttrAppSaleIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "get_sale_by_id")
	defer func() { endRequest(ctx, span, mc, err) }()

	sale, appErr := h.service.FindByID(ctx, id)
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(sale)
}
