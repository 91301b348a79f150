package internal

import (
	"chat-archive/domain"
	"fmt"
	"log/slog"
	"sync"
)

type RetentionListener func(previous, current domain.Retention)

// Settings holds the retention policy, which can change while the node runs.
// The sweep and purge jobs read it on every tick.
type Settings struct {
	log       *slog.Logger
	mu        sync.RWMutex
	retention domain.Retention
	listeners []RetentionListener
}

func NewSettings(log *slog.Logger, retention domain.Retention) *Settings {
	return &Settings{log: log, retention: retention}
}

func (s *Settings) Retention() domain.Retention {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.retention
}

func (s *Settings) Subscribe(l RetentionListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// SetRetention replaces the policy. A negative duration is rejected; zero disables a job.
func (s *Settings) SetRetention(r domain.Retention) error {
	if r.IdleTime < 0 || r.MaxAge < 0 {
		return fmt.Errorf("retention durations must not be negative: idle=%s max_age=%s", r.IdleTime, r.MaxAge)
	}
	s.mu.Lock()
	previous := s.retention
	s.retention = r
	listeners := append([]RetentionListener(nil), s.listeners...)
	s.mu.Unlock()

	if previous == r {
		return nil
	}
	s.log.Info("Retention changed",
		"idle_time", r.IdleTime, "max_age", r.MaxAge,
		"previous_idle_time", previous.IdleTime, "previous_max_age", previous.MaxAge)
	for _, l := range listeners {
		l(previous, r)
	}
	return nil
}
