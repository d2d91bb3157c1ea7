// Package session holds the client-side session bootstrap: a small state
// machine that resolves the current actor against the backend, preferring
// an existing admin OAuth session and falling back to a guest session.
package session

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"hrvibe/internal/adapters/garmin"
	"hrvibe/internal/domain"
	"hrvibe/internal/ports"
)

// Phase is the resolution state of the store.
type Phase int

const (
	Unresolved Phase = iota
	Resolving
	Authenticated
	Unauthenticated
)

func (p Phase) String() string {
	switch p {
	case Unresolved:
		return "unresolved"
	case Resolving:
		return "resolving"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// State is a snapshot of the store. Session is set only when Phase is
// Authenticated.
type State struct {
	Phase   Phase
	Session *domain.Session
}

// Store is the process-wide session cell. All mutation goes through its
// methods; consumers only read snapshots.
type Store struct {
	auth ports.AuthService
	log  *zap.SugaredLogger

	mu       sync.Mutex
	phase    Phase
	session  *domain.Session
	inflight chan struct{}
}

func NewStore(auth ports.AuthService, log *zap.SugaredLogger) *Store {
	return &Store{
		auth:  auth,
		log:   log,
		phase: Unresolved,
	}
}

// State returns a race-free snapshot of the store.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Phase: s.phase, Session: s.session}
}

// Current returns the active session, if any.
func (s *Store) Current() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

// IsResolving reports whether a resolution sequence is in flight.
func (s *Store) IsResolving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == Resolving
}

// Resolve runs the session bootstrap sequence and returns the resulting
// state. A cached guest session is trusted without network validation.
// Otherwise the admin endpoint is checked first; a 401 there is the
// expected answer for plain visitors and falls through to the guest
// endpoint. Resolution runs at most once per store lifetime: calls after a
// terminal state return the existing snapshot, and concurrent calls while
// resolving coalesce onto the single in-flight sequence.
func (s *Store) Resolve(ctx context.Context, cached *domain.Session) State {
	s.mu.Lock()
	switch s.phase {
	case Authenticated, Unauthenticated:
		st := State{Phase: s.phase, Session: s.session}
		s.mu.Unlock()
		return st
	case Resolving:
		done := s.inflight
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
		}
		return s.State()
	}

	s.phase = Resolving
	s.inflight = make(chan struct{})
	done := s.inflight
	s.mu.Unlock()

	phase, sess := s.resolve(ctx, cached)

	s.mu.Lock()
	s.phase = phase
	s.session = sess
	s.inflight = nil
	s.mu.Unlock()
	close(done)

	return State{Phase: phase, Session: sess}
}

func (s *Store) resolve(ctx context.Context, cached *domain.Session) (Phase, *domain.Session) {
	if cached != nil && cached.IsGuest() {
		s.log.Debugw("accepting cached guest session", "username", cached.Username)
		c := *cached
		return Authenticated, &c
	}

	admin, err := s.auth.CheckAdmin(ctx)
	if err == nil {
		s.log.Infow("resolved admin session", "username", admin.Username)
		return Authenticated, &admin
	}
	if !garmin.IsStatus(err, http.StatusUnauthorized) {
		s.log.Errorw("admin session check failed", "error", err)
		return Unauthenticated, nil
	}

	// 401 is the normal answer for a non-admin visitor.
	s.log.Debug("no active admin session, trying guest")

	guest, err := s.auth.CheckGuest(ctx)
	if err != nil {
		s.log.Warnw("guest session check failed", "error", err)
		return Unauthenticated, nil
	}
	s.log.Infow("resolved guest session", "username", guest.Username)
	return Authenticated, &guest
}

// InvalidateForRetry returns an unauthenticated store to Unresolved so the
// route guard can re-trigger resolution once after its grace period. It is
// a no-op in any other phase.
func (s *Store) InvalidateForRetry() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Unauthenticated {
		return false
	}
	s.phase = Unresolved
	return true
}

// LoginAsGuest asks the backend for a guest session. Success replaces any
// prior state; failure leaves the store untouched and returns the error.
func (s *Store) LoginAsGuest(ctx context.Context) (domain.Session, error) {
	guest, err := s.auth.CheckGuest(ctx)
	if err != nil {
		s.log.Errorw("guest login failed", "error", err)
		return domain.Session{}, err
	}

	s.mu.Lock()
	s.phase = Authenticated
	s.session = &guest
	s.mu.Unlock()

	return guest, nil
}

// AdminLoginURL is the backend OAuth endpoint the browser must be sent to.
// Control re-enters the state machine only through a later Resolve, after
// the OAuth redirect completes.
func (s *Store) AdminLoginURL() string {
	return s.auth.AdminLoginURL()
}

// Logout ends the backend session. Local state is cleared no matter what
// the backend answered; the error is returned for logging only.
func (s *Store) Logout(ctx context.Context) error {
	err := s.auth.Logout(ctx)
	if err != nil {
		s.log.Warnw("backend logout failed", "error", err)
	}

	s.mu.Lock()
	s.phase = Unauthenticated
	s.session = nil
	s.mu.Unlock()

	return err
}
