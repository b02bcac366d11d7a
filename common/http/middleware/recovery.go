package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/sirupsen/logrus"
)

// Recovery converts a panic in a downstream handler into a SYSTEM_PANIC error
// that the app's ErrorHandler renders as a 500.
func Recovery(logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logger.WithFields(logrus.Fields{
				"panic_value": fmt.Sprintf("%v", r),
				"stack_trace": string(debug.Stack()),
				"path":        c.Path(),
				"method":      c.Method(),
				"request_id":  RequestIDFrom(c),
			}).Error("Recovered from panic")

			var cause error
			switch x := r.(type) {
			case error:
				cause = x
			default:
				cause = fmt.Errorf("panic: %v", x)
			}
			err = apierrors.NewApplicationError(apierrors.ErrCodeSystemPanic, "Internal Server Error", cause)
		}()

		return c.Next()
	}
}
