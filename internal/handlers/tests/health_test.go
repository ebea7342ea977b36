package handler_tests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"

	"poi-finder/internal/handlers"
	"poi-finder/internal/logger"
)

func TestHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("connection refused") }

	server := httptest.NewServer(setupTestHealthRoute(handlers.NewHealthHandler(
		map[string]handlers.HealthCheck{"redis": ok}, logger.NewTest())))
	defer server.Close()

	obj := httpexpect.Default(t, server.URL).GET("/health").Expect().Status(http.StatusOK).JSON().Object()
	obj.Value("status").String().IsEqual("ok")
	obj.Value("checks").Object().Value("redis").String().IsEqual("ok")

	degraded := httptest.NewServer(setupTestHealthRoute(handlers.NewHealthHandler(
		map[string]handlers.HealthCheck{"redis": ok, "postgres": failing}, logger.NewTest())))
	defer degraded.Close()

	obj = httpexpect.Default(t, degraded.URL).GET("/health").Expect().Status(http.StatusServiceUnavailable).JSON().Object()
	obj.Value("status").String().IsEqual("degraded")
	obj.Value("checks").Object().Value("postgres").String().IsEqual("connection refused")
}
