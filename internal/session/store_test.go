package session

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hrvibe/internal/adapters/garmin"
	"hrvibe/internal/domain"
	"hrvibe/internal/mocks"
)

func setupStore() (*Store, *mocks.AuthService) {
	logger, _ := zap.NewDevelopment()
	auth := new(mocks.AuthService)
	return NewStore(auth, logger.Sugar()), auth
}

func adminSession() domain.Session {
	return domain.Session{Username: "admin", Role: domain.RoleAdmin}
}

func guestSession() domain.Session {
	return domain.Session{Username: "guest", Role: domain.RoleGuest}
}

func unauthorized() error {
	return &garmin.StatusError{Code: http.StatusUnauthorized, Path: "/auth/admin"}
}

func TestResolveAdmin(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(adminSession(), nil)

	st := store.Resolve(context.Background(), nil)

	assert.Equal(t, Authenticated, st.Phase)
	require.NotNil(t, st.Session)
	assert.Equal(t, domain.RoleAdmin, st.Session.Role)
	auth.AssertNotCalled(t, "CheckGuest", mock.Anything)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "admin", current.Username)
}

func TestResolveFallsThroughToGuestOn401(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(domain.Session{}, unauthorized())
	auth.On("CheckGuest", mock.Anything).Return(guestSession(), nil)

	st := store.Resolve(context.Background(), nil)

	assert.Equal(t, Authenticated, st.Phase)
	require.NotNil(t, st.Session)
	assert.Equal(t, domain.RoleGuest, st.Session.Role)
}

func TestResolveBothFail(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(domain.Session{}, unauthorized())
	auth.On("CheckGuest", mock.Anything).Return(domain.Session{}, errors.New("backend down"))

	st := store.Resolve(context.Background(), nil)

	assert.Equal(t, Unauthenticated, st.Phase)
	assert.Nil(t, st.Session)
}

func TestResolveUnexpectedAdminErrorSkipsGuest(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(domain.Session{}, errors.New("connection refused"))

	st := store.Resolve(context.Background(), nil)

	assert.Equal(t, Unauthenticated, st.Phase)
	auth.AssertNotCalled(t, "CheckGuest", mock.Anything)
}

func TestResolveTrustsCachedGuest(t *testing.T) {
	store, auth := setupStore()

	cached := guestSession()
	st := store.Resolve(context.Background(), &cached)

	assert.Equal(t, Authenticated, st.Phase)
	require.NotNil(t, st.Session)
	assert.Equal(t, "guest", st.Session.Username)
	auth.AssertNotCalled(t, "CheckAdmin", mock.Anything)
	auth.AssertNotCalled(t, "CheckGuest", mock.Anything)
}

func TestResolveIgnoresCachedAdmin(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(adminSession(), nil)

	cached := adminSession()
	st := store.Resolve(context.Background(), &cached)

	assert.Equal(t, Authenticated, st.Phase)
	auth.AssertCalled(t, "CheckAdmin", mock.Anything)
}

func TestResolveRunsOncePerLifetime(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(adminSession(), nil).Once()

	store.Resolve(context.Background(), nil)
	st := store.Resolve(context.Background(), nil)

	assert.Equal(t, Authenticated, st.Phase)
	auth.AssertNumberOfCalls(t, "CheckAdmin", 1)
}

func TestConcurrentResolvesCoalesce(t *testing.T) {
	store, auth := setupStore()

	release := make(chan struct{})
	auth.On("CheckAdmin", mock.Anything).Run(func(mock.Arguments) {
		<-release
	}).Return(adminSession(), nil)

	var wg sync.WaitGroup
	states := make([]State, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			states[i] = store.Resolve(context.Background(), nil)
		}(i)
	}

	// Let the resolvers pile up on the single in-flight sequence.
	time.Sleep(50 * time.Millisecond)
	assert.True(t, store.IsResolving())
	close(release)
	wg.Wait()

	for _, st := range states {
		assert.Equal(t, Authenticated, st.Phase)
	}
	auth.AssertNumberOfCalls(t, "CheckAdmin", 1)
}

func TestLoginAsGuest(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(domain.Session{}, unauthorized())
	auth.On("CheckGuest", mock.Anything).Return(domain.Session{}, errors.New("backend down")).Once()
	auth.On("CheckGuest", mock.Anything).Return(guestSession(), nil)

	// Resolution fails both checks.
	st := store.Resolve(context.Background(), nil)
	assert.Equal(t, Unauthenticated, st.Phase)

	// Explicit guest login succeeds regardless of the prior state.
	sess, err := store.LoginAsGuest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, sess.Role)
	assert.Equal(t, Authenticated, store.State().Phase)
}

func TestLoginAsGuestFailureLeavesStateUntouched(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(adminSession(), nil)
	auth.On("CheckGuest", mock.Anything).Return(domain.Session{}, errors.New("backend down"))

	store.Resolve(context.Background(), nil)

	_, err := store.LoginAsGuest(context.Background())
	require.Error(t, err)

	st := store.State()
	assert.Equal(t, Authenticated, st.Phase)
	assert.Equal(t, domain.RoleAdmin, st.Session.Role)
}

func TestLogoutClearsStateEvenOnBackendError(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(adminSession(), nil)
	auth.On("Logout", mock.Anything).Return(errors.New("backend down"))

	store.Resolve(context.Background(), nil)
	err := store.Logout(context.Background())

	assert.Error(t, err)
	st := store.State()
	assert.Equal(t, Unauthenticated, st.Phase)
	assert.Nil(t, st.Session)
}

func TestInvalidateForRetry(t *testing.T) {
	store, auth := setupStore()
	auth.On("CheckAdmin", mock.Anything).Return(domain.Session{}, errors.New("backend down")).Once()
	auth.On("CheckAdmin", mock.Anything).Return(adminSession(), nil)

	st := store.Resolve(context.Background(), nil)
	assert.Equal(t, Unauthenticated, st.Phase)

	require.True(t, store.InvalidateForRetry())
	st = store.Resolve(context.Background(), nil)
	assert.Equal(t, Authenticated, st.Phase)

	// Only an unauthenticated store can be re-armed.
	assert.False(t, store.InvalidateForRetry())
}
