package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/narender/store-manager/common/apirequests"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

// Create answers 200 rather than 201, matching what existing clients expect.
func (h *SaleHandler) Create(c *fiber.Ctx) (err error) {
	ctx, span := commontrace.StartSpan(c.UserContext())
	mc := commonmetric.StartMetricsTimer(layer, "create_sale")
	defer func() { endRequest(ctx, span, mc, err) }()

	var items []apirequests.SaleItemRequest
	if parseErr := c.BodyParser(&items); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid sale request format", slog.String("error", parseErr.Error()))
		return malformedBody(parseErr)
	}

	sale, appErr := h.service.Add(ctx, items)
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(sale)
}
