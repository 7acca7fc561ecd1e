package handlers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spicebyte/menu-app/internal/config"
	"github.com/spicebyte/menu-app/internal/repository"
	"github.com/spicebyte/menu-app/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := NewRenderer()
	require.NoError(t, err)
	return renderer
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            "8080",
			Host:            "127.0.0.1",
			ReadTimeout:     15,
			WriteTimeout:    15,
			ShutdownTimeout: 30,
			RequestTimeout:  60,
		},
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
		ServiceName: "menu-app-test",
		LogLevel:    "error",
	}
}

func testOrderHandler(t *testing.T) *OrderHandler {
	t.Helper()
	log := testLogger()
	orderService := service.NewOrderService(repository.BuildCatalog(), log)
	return NewOrderHandler(orderService, testRenderer(t), log)
}

func testMenuHandler(t *testing.T) *MenuHandler {
	t.Helper()
	repo := repository.NewInMemoryMenuRepository(repository.BuildCatalog())
	return NewMenuHandler(service.NewMenuService(repo), testRenderer(t), testLogger())
}
