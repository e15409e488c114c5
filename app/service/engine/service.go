package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"heartline/app/client/heart"
	"heartline/app/config"
	"heartline/app/service/decision"
	"heartline/app/service/queue"

	"github.com/samber/do"
)

// Service orchestrates one conversational turn: fetch a fresh snapshot, run
// the decision core, surface the utterance.
type Service struct {
	cfg         *config.Config
	heartClient *heart.Client
	decisionSvc *decision.Service
	queueSvc    *queue.Service
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:         do.MustInvoke[*config.Config](di),
		heartClient: do.MustInvoke[*heart.Client](di),
		decisionSvc: do.MustInvoke[*decision.Service](di),
		queueSvc:    do.MustInvoke[*queue.Service](di),
	}, nil
}

// TurnResult is what one conversational turn produced.
type TurnResult struct {
	Line    string           `json:"line,omitempty"`
	Spoke   bool             `json:"spoke"`
	Outcome decision.Outcome `json:"outcome"`
}

// HandleTurn runs one decision against a freshly fetched snapshot. The fetch
// is never retried; its failure is the caller's to handle.
func (s *Service) HandleTurn(ctx context.Context, persona heart.Persona, opts decision.Options) (*TurnResult, error) {
	if !persona.Valid() {
		return nil, fmt.Errorf("unknown persona: %q", persona)
	}

	snapshot, err := s.heartClient.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch heart snapshot: %w", err)
	}

	line, outcome := s.decisionSvc.Decide(persona, snapshot, opts)

	return &TurnResult{
		Line:    line,
		Spoke:   outcome == decision.OutcomeSpoken,
		Outcome: outcome,
	}, nil
}

// Run consumes queued turns until the context is cancelled. Failed turns are
// logged and the loop backs off for a minute, matching the snapshot export
// cadence.
func (s *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case turn, ok := <-s.queueSvc.Channel():
			if !ok {
				return
			}

			start := time.Now()

			result, err := s.HandleTurn(ctx, turn.Persona, decision.Options{
				SessionStart: turn.SessionStart,
			})
			if err != nil {
				slog.Error("Turn failed", "persona", turn.Persona, "error", err)
				s.sleep(ctx, time.Minute)
				continue
			}

			if !result.Spoke {
				slog.Debug("Persona stayed silent",
					"persona", turn.Persona,
					"outcome", result.Outcome,
				)
				continue
			}

			slog.Info("Weather remark",
				"persona", turn.Persona,
				"line", result.Line,
				"duration", time.Since(start),
				"telegram", true,
			)
		}
	}
}

func (s *Service) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
