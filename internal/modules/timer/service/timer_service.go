package service

import (
	"sync"

	"flowcat/internal/modules/timer/domain"
)

// TimerService owns the single timer instance for the process. Bubble
// Tea commands run on their own goroutines, so transitions take a lock.
type TimerService struct {
	mu    sync.Mutex
	timer *domain.Timer
}

func NewTimerService(timer *domain.Timer) *TimerService {
	return &TimerService{timer: timer}
}

func (s *TimerService) Start() domain.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Start()
	return *s.timer
}

func (s *TimerService) Pause() domain.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Pause()
	return *s.timer
}

func (s *TimerService) Reset() domain.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Reset()
	return *s.timer
}

func (s *TimerService) Tick() (domain.Timer, domain.Completion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	completion := s.timer.Tick()
	return *s.timer, completion
}

func (s *TimerService) Skip() (domain.Timer, domain.Completion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	completion := s.timer.Skip()
	return *s.timer, completion
}

func (s *TimerService) Snapshot() domain.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.timer
}
