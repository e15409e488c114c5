package speakstate

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"heartline/app/config"

	"github.com/samber/do"
)

var _ Store = (*Service)(nil)

// Service is a flat-file Store. Every Get reloads and every Set rewrites the
// whole file: the state is two-odd string keys, durability beats cleverness.
// All storage errors are logged and swallowed.
type Service struct {
	path string
	mu   sync.RWMutex
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	_ = os.MkdirAll(filepath.Dir(cfg.State.Path), 0755)

	return &Service{
		path: cfg.State.Path,
	}, nil
}

// NewAt returns a Service backed by an explicit file path.
func NewAt(path string) *Service {
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	return &Service{path: path}
}

func (s *Service) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, err := s.load()
	if err != nil {
		slog.Warn("speak-state read failed", "key", key, "error", err)
		return "", false
	}

	value, ok := values[key]
	return value, ok
}

func (s *Service) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		slog.Warn("speak-state read before write failed", "key", key, "error", err)
		values = map[string]string{}
	}

	values[key] = value

	if err := s.save(values); err != nil {
		slog.Warn("speak-state write failed", "key", key, "error", err)
	}
}

func (s *Service) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}

	if err = json.Unmarshal(data, &values); err != nil {
		return nil, err
	}

	return values, nil
}

func (s *Service) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
