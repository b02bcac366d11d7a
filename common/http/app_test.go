package http

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/config"
	"github.com/narender/store-manager/common/apiresponses"
	"github.com/narender/store-manager/common/http/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	opts := DefaultServerOptions()
	opts.AccessLog = logger
	opts.Middleware.EnableOTel = false
	app := NewApp(opts)

	app.Get("/invalid", func(c *fiber.Ctx) error {
		return apierrors.InvalidData(apierrors.MsgInvalidName)
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apierrors.NewBusinessError(apierrors.ErrCodeNotFound, apierrors.MsgSaleNotFound, nil)
	})
	app.Get("/pinned", func(c *fiber.Ctx) error {
		return apierrors.NewBusinessError(apierrors.ErrCodeNotFound, apierrors.MsgSaleNotFound, nil).WithStatus(nethttp.StatusUnprocessableEntity)
	})
	app.Get("/db", func(c *fiber.Ctx) error {
		return apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "Failed to read products", errors.New("connection refused"))
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	app.Post("/parse", func(c *fiber.Ctx) error {
		var body map[string]any
		if err := c.BodyParser(&body); err != nil {
			return err
		}
		return c.SendStatus(nethttp.StatusNoContent)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *nethttp.Request) (*nethttp.Response, apiresponses.ErrorResponse) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body apiresponses.ErrorResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp, body
}

func TestErrorResponses(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"business invalid data", "/invalid", nethttp.StatusUnprocessableEntity, apierrors.ErrCodeInvalidData, apierrors.MsgInvalidName},
		{"business not found", "/missing", nethttp.StatusNotFound, apierrors.ErrCodeNotFound, apierrors.MsgSaleNotFound},
		{"pinned status", "/pinned", nethttp.StatusUnprocessableEntity, apierrors.ErrCodeNotFound, apierrors.MsgSaleNotFound},
		{"application error", "/db", nethttp.StatusInternalServerError, apierrors.ErrCodeDatabaseAccess, "Failed to read products"},
		{"panic", "/panic", nethttp.StatusInternalServerError, apierrors.ErrCodeSystemPanic, "Internal Server Error"},
		{"unknown route", "/nowhere", nethttp.StatusNotFound, apierrors.ErrCodeNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, app, httptest.NewRequest(nethttp.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCode, body.Err.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Err.Message)
			}
		})
	}
}

func TestMalformedJSONBody(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(nethttp.MethodPost, "/parse", strings.NewReader(`{"name": `))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, body := doRequest(t, app, req)

	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apierrors.ErrCodeMalformedData, body.Err.Code)
	assert.Equal(t, apierrors.MsgInvalidRequestFormat, body.Err.Message)
}

func TestRequestIDIsEchoedOrGenerated(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/invalid", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-123")
	resp, _ := doRequest(t, app, req)
	assert.Equal(t, "req-123", resp.Header.Get(middleware.HeaderRequestID))

	resp, _ = doRequest(t, app, httptest.NewRequest(nethttp.MethodGet, "/invalid", nil))
	assert.Len(t, resp.Header.Get(middleware.HeaderRequestID), 36)
}

func TestServerOptionsFollowConfig(t *testing.T) {
	access := logrus.New()
	cfg := config.NewConfig(config.WithServiceName("sales-api"))
	cfg.OtelEnabled = false

	opts := ServerOptionsFor(cfg, access)
	assert.Equal(t, "sales-api", opts.Name)
	assert.Same(t, access, opts.AccessLog)
	assert.False(t, opts.Middleware.EnableOTel)
	assert.True(t, opts.Middleware.EnableRecovery)

	app := NewApp(opts)
	assert.Equal(t, "sales-api", app.Config().AppName)
	assert.Equal(t, maxBodyBytes, app.Config().BodyLimit)
}
