package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/apirequests"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

// Update answers every business failure, not_found included, with 422.
func (h *SaleHandler) Update(c *fiber.Ctx) (err error) {
	id := c.Params("id")
	ctx, span := commontrace.StartSpan(c.UserContext(), attributes.AttrAppSaleIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "update_sale")
	defer func() { endRequest(ctx, span, mc, err) }()

	var items []apirequests.SaleItemRequest
	if parseErr := c.BodyParser(&items); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid sale request format", slog.String("error", parseErr.Error()))
		return malformedBody(parseErr)
	}

	sale, appErr := h.service.Update(ctx, id, items)
	if appErr != nil {
		if apierrors.IsBusiness(appErr) {
			appErr.WithStatus(http.StatusUnprocessableEntity)
		}
		return appErr
	}
	return c.Status(http.StatusOK).JSON(sale)
}
