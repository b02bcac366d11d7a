package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/narender/store-manager/common/apirequests"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

func (h *ProductHandler) Update(c *fiber.Ctx) (err error) {
	id := c.Params("id")
	ctx, span := commontrace.StartSpan(c.UserContext(), attributes.AttrAppProductIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "update_product")
	defer func() { endRequest(ctx, span, mc, err) }()

	var req apirequests.ProductRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid product request format", slog.String("error", parseErr.Error()))
		return malformedBody(parseErr)
	}

	product, appErr := h.service.Update(ctx, id, req.Name, req.Quantity)
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(product)
}
