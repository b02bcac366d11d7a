package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/apiresponses"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders every error returned along the handler chain as
// {"err": {"code", "message"}} with the status derived by StatusFor.
func ErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := toAppError(err)
		statusCode := StatusFor(appErr)

		entry := logger.WithFields(logrus.Fields{
			"status_code": statusCode,
			"error_code":  appErr.Code,
			"path":        c.Path(),
			"method":      c.Method(),
			"request_id":  RequestIDFrom(c),
		})
		if appErr.Err != nil {
			entry = entry.WithError(appErr.Err)
		}
		if statusCode >= http.StatusInternalServerError {
			entry.Error(appErr.Message)
		} else {
			entry.Debug(appErr.Message)
		}

		return c.Status(statusCode).JSON(apiresponses.NewErrorResponse(appErr.Code, appErr.Message))
	}
}

// StatusFor maps an AppError to its HTTP status. An explicit StatusCode wins;
// otherwise not_found is 404, other business errors are 422 and application
// errors map to the 4xx/5xx that best describes the failure.
func StatusFor(appErr *apierrors.AppError) int {
	if appErr == nil {
		return http.StatusInternalServerError
	}
	if appErr.StatusCode != 0 {
		return appErr.StatusCode
	}

	if apierrors.IsBusiness(appErr) {
		if appErr.Code == apierrors.ErrCodeNotFound {
			return http.StatusNotFound
		}
		return http.StatusUnprocessableEntity
	}

	switch appErr.Code {
	case apierrors.ErrCodeMalformedData:
		return http.StatusBadRequest
	case apierrors.ErrCodeRequestTimeout:
		return http.StatusRequestTimeout
	case apierrors.ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func toAppError(err error) *apierrors.AppError {
	var appErr *apierrors.AppError
	if errors.As(err, &appErr) && appErr != nil {
		return appErr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := apierrors.ErrCodeUnknown
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			code = apierrors.ErrCodeNotFound
		case fiberErr.Code < fiber.StatusInternalServerError:
			code = apierrors.ErrCodeInvalidData
		}
		return &apierrors.AppError{
			Code:       code,
			Message:    fiberErr.Message,
			Category:   apierrors.CategoryApplication,
			StatusCode: fiberErr.Code,
			Err:        err,
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return apierrors.NewApplicationError(apierrors.ErrCodeMalformedData, apierrors.MsgInvalidRequestFormat, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestTimeout, "Request timed out", err)
	}

	return apierrors.NewApplicationError(apierrors.ErrCodeUnknown, "An unexpected error occurred", err)
}
