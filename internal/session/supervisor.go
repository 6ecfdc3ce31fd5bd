// Package session owns the client authentication state: whether a usable
// credential is held, who it belongs to, and the background expiry check
// that forces a logout when the token lapses.
package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/remirami/RecipeBank/internal/credstore"
	userModel "github.com/remirami/RecipeBank/internal/models/user"
	"github.com/remirami/RecipeBank/pkg/auth/tokenAuth"
)

const loggedOutNotice = "You have been logged out."

type (
	// State is the snapshot handed to subscribers. IsAuthenticated is true
	// iff a non-expired token is held.
	State struct {
		IsAuthenticated bool
		UserID          string
		Username        string
	}

	Store interface {
		Load() (*credstore.Credentials, error)
		Save(credstore.Credentials) error
		Clear() error
	}

	Options struct {
		CheckInterval  time.Duration
		NoticeDuration time.Duration
	}

	Supervisor struct {
		store          Store
		decoder        tokenAuth.Decoder
		checkInterval  time.Duration
		noticeDuration time.Duration

		mu          sync.Mutex
		token       string
		state       State
		notice      string
		noticeTimer *time.Timer
		subscribers []func(State)
	}
)

// New creates a pointer to a Supervisor, restoring any stored credential.
// A stored token that is already expired is discarded immediately, without
// the logout notice.
func New(store Store, decoder tokenAuth.Decoder, options Options) *Supervisor {
	if options.CheckInterval <= 0 {
		options.CheckInterval = time.Minute
	}
	if options.NoticeDuration <= 0 {
		options.NoticeDuration = 3 * time.Second
	}

	s := &Supervisor{
		store:          store,
		decoder:        decoder,
		checkInterval:  options.CheckInterval,
		noticeDuration: options.NoticeDuration,
	}

	credentials, err := store.Load()
	if err != nil || credentials == nil {
		return s
	}
	if _, err := decoder.Decode(credentials.Token); err != nil {
		if clearErr := store.Clear(); clearErr != nil {
			log.Printf("could not discard stored credentials: %v", clearErr)
		}
		return s
	}

	s.token = credentials.Token
	s.state = State{
		IsAuthenticated: true,
		UserID:          credentials.User.ID,
		Username:        credentials.User.Username,
	}
	return s
}

// IsTokenExpired reports whether the held credential is unusable: no token,
// an undecodable token, or an exp claim strictly in the past. Decoding
// failure counts as expiry.
func (s *Supervisor) IsTokenExpired() bool {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return true
	}
	_, err := s.decoder.Decode(token)
	return err != nil
}

// Login stores the credential triple and marks the session authenticated.
func (s *Supervisor) Login(token string, user userModel.User) error {
	err := s.store.Save(credstore.Credentials{
		Token:  token,
		User:   user,
		UserID: user.ID,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.state = State{
		IsAuthenticated: true,
		UserID:          user.ID,
		Username:        user.Username,
	}
	s.clearNoticeLocked()
	state, subscribers := s.state, s.snapshotSubscribersLocked()
	s.mu.Unlock()

	notify(subscribers, state)
	return nil
}

// Logout clears the stored credential and posts a transient notice that
// auto-clears after the configured window. The in-memory state is cleared
// even when removing the stored credential fails; the failure is returned
// so the caller can report the leftover file.
func (s *Supervisor) Logout() error {
	clearErr := s.store.Clear()

	s.mu.Lock()
	s.token = ""
	s.state = State{}
	s.notice = loggedOutNotice
	if s.noticeTimer != nil {
		s.noticeTimer.Stop()
	}
	s.noticeTimer = time.AfterFunc(s.noticeDuration, func() {
		s.mu.Lock()
		s.notice = ""
		s.mu.Unlock()
	})
	state, subscribers := s.state, s.snapshotSubscribersLocked()
	s.mu.Unlock()

	notify(subscribers, state)
	if clearErr != nil {
		return fmt.Errorf("could not clear stored credentials: %w", clearErr)
	}
	return nil
}

func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the held access token, or an empty string when logged out.
func (s *Supervisor) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Notice returns the transient user-facing message, if one is active.
func (s *Supervisor) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// Subscribe registers a callback invoked on every login and logout.
func (s *Supervisor) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Run checks token expiry once per interval and logs out when it lapses.
// It blocks until ctx is cancelled; the ticker is stopped on return.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.IsTokenExpired() && s.State().IsAuthenticated {
				if err := s.Logout(); err != nil {
					log.Println(err)
				}
			}
		}
	}
}

func (s *Supervisor) clearNoticeLocked() {
	if s.noticeTimer != nil {
		s.noticeTimer.Stop()
		s.noticeTimer = nil
	}
	s.notice = ""
}

func (s *Supervisor) snapshotSubscribersLocked() []func(State) {
	subscribers := make([]func(State), len(s.subscribers))
	copy(subscribers, s.subscribers)
	return subscribers
}

func notify(subscribers []func(State), state State) {
	for _, fn := range subscribers {
		fn(state)
	}
}
