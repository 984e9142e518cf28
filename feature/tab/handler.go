package tab

import (
	"net/url"

	"speedtab/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the tab engine over HTTP.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(engine *Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// RegisterRoutes registers the tab routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tab")
	group.Get("/servers", h.HandleListServers)
	group.Get("/resolve/:server", h.HandleResolve)
}

// HandleListServers lists the servers with their own entry in the active configuration.
func (h *Handler) HandleListServers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"servers": h.engine.Servers(),
	})
}

// HandleResolve previews the tab title and footer a player on :server receives.
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	server, err := url.PathUnescape(c.Params("server"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid server name"})
	}
	if server == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "server is required"})
	}

	logger.WithRayID(h.logger, c).Debug("Resolving tab override", zap.String("server", server))

	o := h.engine.Resolve(server)
	return c.JSON(fiber.Map{
		"server":       o.Server,
		"configured":   o.Configured,
		"raw_title":    o.RawTitle,
		"raw_footer":   o.RawFooter,
		"title":        o.Title,
		"footer":       o.Footer,
		"title_plain":  o.Title.String(),
		"footer_plain": o.Footer.String(),
	})
}
