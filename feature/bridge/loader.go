package bridge

import (
	"speedtab/core/proxy"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature registers the proxy bridge routes with the application.
type Feature struct {
	registry *proxy.Registry
	logger   *zap.Logger
}

// NewFeature creates the bridge feature.
func NewFeature(registry *proxy.Registry, logger *zap.Logger) *Feature {
	return &Feature{registry: registry, logger: logger}
}

func (f *Feature) Name() string { return "bridge" }

func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.registry, f.logger).RegisterRoutes(app)
	return nil
}
