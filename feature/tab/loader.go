package tab

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature registers the tab routes with the application.
type Feature struct {
	engine *Engine
	logger *zap.Logger
}

// NewFeature creates the tab feature.
func NewFeature(engine *Engine, logger *zap.Logger) *Feature {
	return &Feature{engine: engine, logger: logger}
}

func (f *Feature) Name() string { return "tab" }

func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.engine, f.logger).RegisterRoutes(app)
	return nil
}
