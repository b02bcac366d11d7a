package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

func (h *SaleHandler) Delete(c *fiber.Ctx) (err error) {
	id := c.Params("id")
	ctx, span := commontrace.StartSpan(c.UserContext(), attributes.AttrAppSaleIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "delete_sale")
	defer func() { endRequest(ctx, span, mc, err) }()

	sale, appErr := h.service.Delete(ctx, id)
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(sale)
}
