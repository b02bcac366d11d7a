package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/narender/store-manager/common/apirequests"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

func (h *ProductHandler) Create(c *fiber.Ctx) (err error) {
	ctx, span := commontrace.StartSpan(c.UserContext())
	mc := commonmetric.StartMetricsTimer(layer, "create_product")
	defer func() { endRequest(ctx, span, mc, err) }()

	var req apirequests.ProductRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid product request format", slog.String("error", parseErr.Error()))
		return malformedBody(parseErr)
	}

	product, appErr := h.service.Add(ctx, req.Name, req.Quantity)
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusCreated).JSON(product)
}
