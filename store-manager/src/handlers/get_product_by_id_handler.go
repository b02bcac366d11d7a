package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

func (h *ProductHandler) GetByID(c *fiber.Ctx) (err error) {
	id := c.Params("id")
	ctx, span := commontrace.StartSpan(c.UserContext(), attributes.AttrAppProductIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "get_product_by_id")
	defer func() { endRequest(ctx, span, mc, err) }()

	product, appErr := h.service.FindByID(ctx, id)
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(product)
}
