package enhance

import (
	"sync"
	"time"

	"server/internal/domain"
)

// Status is the request lifecycle state of a session. Exactly one is active at
// a time and every transition goes through the Session methods below.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Session owns the application state for one user: the uploaded source image,
// the adjustment settings, the request lifecycle status, and the enhanced
// result or failure. Invariants: the result is non-nil only in StatusSuccess,
// the failure only in StatusError, and a missing source implies idle state with
// default settings.
type Session struct {
	mu         sync.Mutex
	id         string
	source     *domain.Image
	settings   Settings
	status     Status
	result     *domain.Image
	failure    error
	generation uint64
	lastSeen   time.Time
}

// NewSession creates an idle session with default settings.
func NewSession(id string) *Session {
	return &Session{
		id:       id,
		settings: DefaultSettings(),
		status:   StatusIdle,
		lastSeen: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// View is a point-in-time copy of the session state for rendering.
type View struct {
	Status   Status
	Settings Settings
	Filter   FilterChain
	Source   *domain.Image
	Result   *domain.Image
	Failure  error
}

// Snapshot returns a consistent copy of the current state together with the
// recompiled preview filter.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return View{
		Status:   s.status,
		Settings: s.settings,
		Filter:   BuildPreviewFilter(s.settings),
		Source:   s.source,
		Result:   s.result,
		Failure:  s.failure,
	}
}

// SetSource replaces the source image wholesale: settings return to defaults,
// any previous result or failure is cleared, and the session is idle again. An
// in-flight enhancement is orphaned by the generation bump and its eventual
// completion is discarded.
func (s *Session) SetSource(img domain.Image) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.source = &img
	s.settings = DefaultSettings()
	s.status = StatusIdle
	s.result = nil
	s.failure = nil
	s.lastSeen = time.Now()
	return s.viewLocked()
}

// ApplySettings clamps and stores the given adjustments. Settings mutations
// never touch the request status.
func (s *Session) ApplySettings(next Settings) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = next.Clamp()
	s.lastSeen = time.Now()
	return s.viewLocked()
}

// Reset restores the initial state: no source, default settings, idle status.
// Like SetSource it bumps the generation so a late completion cannot resurrect
// stale state.
func (s *Session) Reset() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.source = nil
	s.settings = DefaultSettings()
	s.status = StatusIdle
	s.result = nil
	s.failure = nil
	s.lastSeen = time.Now()
	return s.viewLocked()
}

// RecordFailure puts the session into the error state for a failure that
// happened outside the enhancement round trip, such as an unreadable upload.
// The generation bump discards any in-flight completion.
func (s *Session) RecordFailure(err error) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.status = StatusError
	s.result = nil
	s.failure = err
	s.lastSeen = time.Now()
	return s.viewLocked()
}

// Begin starts an enhancement attempt. It enforces the single-flight rule
// (ErrEnhanceInFlight while one is loading) and the source guard: without a
// source the session transitions straight to error and the provider must not
// be invoked. On success it returns the generation token, a copy of the source
// and the compiled instruction.
func (s *Session) Begin() (uint64, domain.Image, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()

	if s.status == StatusLoading {
		return 0, domain.Image{}, "", domain.ErrEnhanceInFlight
	}
	if s.source == nil {
		s.status = StatusError
		s.result = nil
		s.failure = domain.ErrNoSourceImage
		return 0, domain.Image{}, "", domain.ErrNoSourceImage
	}

	s.generation++
	s.status = StatusLoading
	s.result = nil
	s.failure = nil
	return s.generation, *s.source, BuildInstruction(s.settings), nil
}

// Complete finishes the attempt identified by gen. Stale completions (a reset
// or a new upload happened in between) are dropped and the method reports
// false. Otherwise the session moves to success with the result stored, or to
// error with the failure recorded.
func (s *Session) Complete(gen uint64, img *domain.Image, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.status != StatusLoading {
		return false
	}
	if err != nil {
		s.status = StatusError
		s.result = nil
		s.failure = err
		return true
	}
	s.status = StatusSuccess
	s.result = img
	s.failure = nil
	return true
}

// Result returns the enhanced image, valid only in StatusSuccess.
func (s *Session) Result() (domain.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	if s.status != StatusSuccess || s.result == nil {
		return domain.Image{}, domain.ErrNoResult
	}
	return *s.result, nil
}

// LastSeen reports the most recent activity, used by the store sweeper.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) viewLocked() View {
	return View{
		Status:   s.status,
		Settings: s.settings,
		Filter:   BuildPreviewFilter(s.settings),
		Source:   s.source,
		Result:   s.result,
		Failure:  s.failure,
	}
}
