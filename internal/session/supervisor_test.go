package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/remirami/RecipeBank/internal/credstore"
	userModel "github.com/remirami/RecipeBank/internal/models/user"
	"github.com/remirami/RecipeBank/internal/session"
	jwtToken "github.com/remirami/RecipeBank/pkg/auth/tokenAuth/jwt"
	"github.com/remirami/RecipeBank/pkg/tools/random"
	"github.com/stretchr/testify/require"
)

func tokenExpiringIn(t *testing.T, d time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(d).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(random.String(32)))
	require.NoError(t, err)
	return token
}

// failingClearStore keeps credentials in memory and refuses to clear them.
type failingClearStore struct {
	credentials *credstore.Credentials
}

func (s *failingClearStore) Load() (*credstore.Credentials, error) { return s.credentials, nil }

func (s *failingClearStore) Save(credentials credstore.Credentials) error {
	s.credentials = &credentials
	return nil
}

func (s *failingClearStore) Clear() error { return errors.New("disk full") }

func newSupervisor(t *testing.T, options session.Options) (*session.Supervisor, *credstore.FileStore) {
	t.Helper()
	store := credstore.New(filepath.Join(t.TempDir(), "credentials.json"))
	return session.New(store, jwtToken.NewDecoder(), options), store
}

func TestSupervisor(t *testing.T) {
	user := userModel.User{ID: "user-1", Username: "maija", Email: random.Email()}

	t.Run("Logged out by default", func(t *testing.T) {
		supervisor, _ := newSupervisor(t, session.Options{})

		require.False(t, supervisor.State().IsAuthenticated)
		require.True(t, supervisor.IsTokenExpired())
	})

	t.Run("Login persists credentials and notifies", func(t *testing.T) {
		supervisor, store := newSupervisor(t, session.Options{})

		var notified []session.State
		supervisor.Subscribe(func(state session.State) {
			notified = append(notified, state)
		})

		token := tokenExpiringIn(t, time.Hour)
		require.NoError(t, supervisor.Login(token, user))

		state := supervisor.State()
		require.True(t, state.IsAuthenticated)
		require.Equal(t, user.ID, state.UserID)
		require.False(t, supervisor.IsTokenExpired())

		credentials, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, credentials)
		require.Equal(t, token, credentials.Token)
		require.Equal(t, user.ID, credentials.UserID)

		require.Len(t, notified, 1)
		require.True(t, notified[0].IsAuthenticated)
	})

	t.Run("Logout clears credentials and posts a transient notice", func(t *testing.T) {
		supervisor, store := newSupervisor(t, session.Options{NoticeDuration: 50 * time.Millisecond})
		require.NoError(t, supervisor.Login(tokenExpiringIn(t, time.Hour), user))

		require.NoError(t, supervisor.Logout())

		require.False(t, supervisor.State().IsAuthenticated)
		require.NotEmpty(t, supervisor.Notice())

		credentials, err := store.Load()
		require.NoError(t, err)
		require.Nil(t, credentials)

		require.Eventually(t, func() bool {
			return supervisor.Notice() == ""
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Logout reports a failed credential clear but still logs out", func(t *testing.T) {
		store := &failingClearStore{}
		supervisor := session.New(store, jwtToken.NewDecoder(), session.Options{})
		require.NoError(t, supervisor.Login(tokenExpiringIn(t, time.Hour), user))

		err := supervisor.Logout()
		require.Error(t, err)
		require.Contains(t, err.Error(), "disk full")
		require.False(t, supervisor.State().IsAuthenticated)
		require.True(t, supervisor.IsTokenExpired())
	})

	t.Run("Restores a stored valid credential", func(t *testing.T) {
		store := credstore.New(filepath.Join(t.TempDir(), "credentials.json"))
		require.NoError(t, store.Save(credstore.Credentials{
			Token:  tokenExpiringIn(t, time.Hour),
			User:   user,
			UserID: user.ID,
		}))

		supervisor := session.New(store, jwtToken.NewDecoder(), session.Options{})
		require.True(t, supervisor.State().IsAuthenticated)
		require.Equal(t, user.Username, supervisor.State().Username)
	})

	t.Run("Discards a stored expired credential", func(t *testing.T) {
		store := credstore.New(filepath.Join(t.TempDir(), "credentials.json"))
		require.NoError(t, store.Save(credstore.Credentials{
			Token:  tokenExpiringIn(t, -time.Second),
			User:   user,
			UserID: user.ID,
		}))

		supervisor := session.New(store, jwtToken.NewDecoder(), session.Options{})
		require.False(t, supervisor.State().IsAuthenticated)

		credentials, err := store.Load()
		require.NoError(t, err)
		require.Nil(t, credentials)
	})

	t.Run("Background check logs out when the token lapses", func(t *testing.T) {
		supervisor, _ := newSupervisor(t, session.Options{
			CheckInterval:  20 * time.Millisecond,
			NoticeDuration: time.Minute,
		})
		require.NoError(t, supervisor.Login(tokenExpiringIn(t, 100*time.Millisecond), user))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go supervisor.Run(ctx)

		require.Eventually(t, func() bool {
			return !supervisor.State().IsAuthenticated
		}, time.Second, 10*time.Millisecond)
		require.NotEmpty(t, supervisor.Notice())
	})

	t.Run("Run stops on context cancellation", func(t *testing.T) {
		supervisor, _ := newSupervisor(t, session.Options{CheckInterval: 10 * time.Millisecond})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			supervisor.Run(ctx)
			close(done)
		}()

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not stop after cancellation")
		}
	})
}
