package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

func (h *SaleHandler) GetAll(c *fiber.Ctx) (err error) {
	ctx, span := commontrace.StartSpan(c.UserContext())
	mc := commonmetric.StartMetricsTimer(layer, "get_all_sales")
	defer func() { endRequest(ctx, span, mc, err) }()

	sales, appErr := h.service.FindAll(ctx)
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"sales": sales})
}
