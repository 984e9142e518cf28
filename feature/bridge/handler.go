package bridge

import (
	"errors"
	"strings"

	"speedtab/core/logger"
	"speedtab/core/proxy"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequesterHeader names the requester of a command invocation.
const RequesterHeader = "X-Requester"

// Handler handles HTTP requests from the proxy.
type Handler struct {
	registry *proxy.Registry
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(registry *proxy.Registry, logger *zap.Logger) *Handler {
	return &Handler{registry: registry, logger: logger}
}

// RegisterRoutes registers the bridge routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	events := app.Group("/events")
	events.Post("/connect", h.HandleConnect)
	events.Post("/switch", h.HandleSwitch)
	events.Post("/disconnect", h.HandleDisconnect)

	players := app.Group("/players")
	players.Get("/", h.HandleListPlayers)
	players.Get("/:id/tab", h.HandleGetTab)

	app.Post("/commands/:name", h.HandleCommand)
}

type connectRequest struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
}

type switchRequest struct {
	PlayerID string `json:"player_id"`
	Server   string `json:"server"`
}

type disconnectRequest struct {
	PlayerID string `json:"player_id"`
}

type playerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Server   string `json:"server,omitempty"`
}

// HandleConnect registers a player that joined the proxy.
func (h *Handler) HandleConnect(c *fiber.Ctx) error {
	var req connectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	id := uuid.Nil
	if req.PlayerID != "" {
		parsed, err := uuid.Parse(req.PlayerID)
		if err != nil {
			return badRequest(c, "invalid player_id")
		}
		id = parsed
	}

	s, err := h.registry.Connect(id, req.Username)
	if err != nil {
		if errors.Is(err, proxy.ErrAlreadyConnected) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return badRequest(c, err.Error())
	}

	logger.WithRayID(h.logger, c).Info("Player connected",
		zap.String("player_id", s.ID().String()),
		zap.String("player", s.Username()))

	return c.Status(fiber.StatusCreated).JSON(playerResponse{ID: s.ID().String(), Username: s.Username()})
}

// HandleSwitch records that a player reached a backend server.
func (h *Handler) HandleSwitch(c *fiber.Ctx) error {
	var req switchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	id, err := uuid.Parse(req.PlayerID)
	if err != nil {
		return badRequest(c, "invalid player_id")
	}

	if err := h.registry.SwitchServer(id, req.Server); err != nil {
		return h.playerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDisconnect removes a player that left the proxy.
func (h *Handler) HandleDisconnect(c *fiber.Ctx) error {
	var req disconnectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	id, err := uuid.Parse(req.PlayerID)
	if err != nil {
		return badRequest(c, "invalid player_id")
	}

	if err := h.registry.Disconnect(id); err != nil {
		return h.playerError(c, err)
	}

	logger.WithRayID(h.logger, c).Info("Player disconnected", zap.String("player_id", id.String()))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListPlayers lists the connected players.
func (h *Handler) HandleListPlayers(c *fiber.Ctx) error {
	sessions := h.registry.Players()
	players := make([]playerResponse, 0, len(sessions))
	for _, s := range sessions {
		server, _ := s.CurrentServer()
		players = append(players, playerResponse{ID: s.ID().String(), Username: s.Username(), Server: server})
	}
	return c.JSON(fiber.Map{"players": players})
}

// HandleGetTab returns the header and footer last pushed to a player.
func (h *Handler) HandleGetTab(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid player id")
	}

	s, ok := h.registry.Player(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": proxy.ErrUnknownPlayer.Error()})
	}

	tab := s.TabList()
	server, _ := s.CurrentServer()
	return c.JSON(fiber.Map{
		"server":       server,
		"header":       tab.Header,
		"footer":       tab.Footer,
		"header_plain": tab.Header.String(),
		"footer_plain": tab.Footer.String(),
		"updated_at":   tab.UpdatedAt,
	})
}

// HandleCommand runs a proxy command on behalf of the requester named in the
// X-Requester header and returns the replies.
func (h *Handler) HandleCommand(c *fiber.Ctx) error {
	requester := strings.TrimSpace(c.Get(RequesterHeader))
	if requester == "" {
		return badRequest(c, "missing "+RequesterHeader+" header")
	}

	name := c.Params("name")
	src := proxy.NewBufferedSource(requester)
	if err := h.registry.ExecuteCommand(c.Context(), name, src); err != nil {
		if errors.Is(err, proxy.ErrUnknownCommand) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.logger, c).Error("Command failed", zap.String("command", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"command":  name,
		"messages": src.Messages(),
	})
}

func (h *Handler) playerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, proxy.ErrUnknownPlayer):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, proxy.ErrDisconnected):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{"error": err.Error()})
	default:
		return badRequest(c, err.Error())
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
