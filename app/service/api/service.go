package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"heartline/app/client/heart"
	"heartline/app/config"
	"heartline/app/service/decision"
	"heartline/app/service/engine"
	"heartline/app/service/queue"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

const shutdownTimeout = 5 * time.Second

// Service is the HTTP surface the chat host calls once per conversational
// turn.
type Service struct {
	cfg       *config.Config
	engineSvc *engine.Service
	queueSvc  *queue.Service

	app *fiber.App
}

type turnRequest struct {
	Persona         string   `json:"persona"`
	SessionStart    bool     `json:"session_start"`
	CooldownMinutes int      `json:"cooldown_minutes"`
	BaseRate        *float64 `json:"base_rate"`
	DaytimeOnly     *bool    `json:"daytime_only"`
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:       do.MustInvoke[*config.Config](di),
		engineSvc: do.MustInvoke[*engine.Service](di),
		queueSvc:  do.MustInvoke[*queue.Service](di),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/v1/turn", s.handleTurn)
	app.Post("/v1/turn/async", s.handleTurnAsync)

	s.app = app

	return s, nil
}

// Run serves the API until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Warn("API shutdown failed", "error", err)
		}
	}()

	if err := s.app.Listen(s.cfg.Server.Addr); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func (s *Service) handleTurn(c *fiber.Ctx) error {
	req, err := parseTurnRequest(c)
	if err != nil {
		return err
	}

	result, err := s.engineSvc.HandleTurn(c.Context(), heart.Persona(req.Persona), toOptions(req))
	if err != nil {
		slog.Error("Turn request failed", "persona", req.Persona, "error", err)
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return c.JSON(result)
}

func (s *Service) handleTurnAsync(c *fiber.Ctx) error {
	req, err := parseTurnRequest(c)
	if err != nil {
		return err
	}

	s.queueSvc.Add(queue.Turn{
		Persona:      heart.Persona(req.Persona),
		SessionStart: req.SessionStart,
	})

	return c.SendStatus(fiber.StatusAccepted)
}

func parseTurnRequest(c *fiber.Ctx) (*turnRequest, error) {
	var req turnRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !heart.Persona(req.Persona).Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown persona")
	}

	return &req, nil
}

func toOptions(req *turnRequest) decision.Options {
	return decision.Options{
		MinCooldown:  time.Duration(req.CooldownMinutes) * time.Minute,
		BaseRate:     req.BaseRate,
		DaytimeOnly:  req.DaytimeOnly,
		SessionStart: req.SessionStart,
	}
}
