package queue

import (
	"log/slog"

	"heartline/app/client/heart"

	"github.com/samber/do"
)

const bufferSize = 64

var _ do.Shutdownable = (*Service)(nil)

// Service buffers conversational turns the host fires asynchronously.
type Service struct {
	queue chan Turn
}

type Turn struct {
	Persona      heart.Persona
	SessionStart bool
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		queue: make(chan Turn, bufferSize),
	}, nil
}

func (s *Service) Add(turn Turn) {
	defer func() {
		if r := recover(); r != nil {

		}
	}()

	select {
	case s.queue <- turn:
	default:
		slog.Warn("turn queue is full")
	}
}

func (s *Service) Channel() <-chan Turn {
	return s.queue
}

func (s *Service) Shutdown() error {
	close(s.queue)

	return nil
}
