package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/config"
	"github.com/dhanamorganics/storefront/internal/kvstore"
	"github.com/dhanamorganics/storefront/internal/logging"
	"github.com/dhanamorganics/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:               "k",
		SessionValidityDuration: time.Hour,
	}
}

func newTestService(t *testing.T, kv kvstore.Store) *Service {
	t.Helper()
	return NewService(context.Background(), kv, testLogger(), testConfig())
}

func TestSignupThenLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, kvstore.NewMemoryStore())

	profile, token, err := s.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", profile.Email)
	assert.NotEmpty(t, profile.ID)
	assert.NotEmpty(t, token)
	assert.False(t, profile.CreatedAt.IsZero())

	s.Logout(ctx, profile.ID)

	// case-insensitive email match
	again, token2, err := s.Login(ctx, "JANE@X.COM", "pass123")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
	assert.NotEmpty(t, token2)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	s := newTestService(t, kv)

	_, _, err := s.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)

	_, _, err = s.Signup(ctx, "Other Jane", "Jane@X.com", "different")
	assert.ErrorIs(t, err, common.ErrEmailTaken)

	// exactly one directory entry for the email survives
	s2 := newTestService(t, kv)
	profile, _, err := s2.Login(ctx, "jane@x.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.Name)
}

func TestSignup_MissingFields(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, kvstore.NewMemoryStore())

	_, _, err := s.Signup(ctx, "", "jane@x.com", "pass123")
	assert.ErrorIs(t, err, common.ErrValidation)
	_, _, err = s.Signup(ctx, "Jane", "", "pass123")
	assert.ErrorIs(t, err, common.ErrValidation)
	_, _, err = s.Signup(ctx, "Jane", "jane@x.com", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, kvstore.NewMemoryStore())

	_, _, err := s.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)

	// unknown email and wrong password are indistinguishable
	_, _, err = s.Login(ctx, "nobody@x.com", "pass123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, _, err = s.Login(ctx, "jane@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestPasswordsAreNotStoredInPlaintext(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	s := newTestService(t, kv)

	_, _, err := s.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)

	raw, err := kv.Get(ctx, "dhanam_users")
	require.NoError(t, err)
	assert.NotContains(t, raw, "pass123")
}

func TestCurrentUser_RestoresAfterRestart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	s1 := newTestService(t, kv)
	_, token, err := s1.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)

	// a fresh service over the same storage restores the session
	s2 := newTestService(t, kv)
	profile, err := s2.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", profile.Email)
}

func TestCurrentUser_CorruptSessionReadsAsLoggedOut(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	s1 := newTestService(t, kv)
	profile, token, err := s1.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "dhanam_session:"+profile.ID, "{not json"))

	s2 := newTestService(t, kv)
	_, err = s2.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestCurrentUser_AfterLogout(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	s := newTestService(t, kv)

	profile, token, err := s.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)

	s.Logout(ctx, profile.ID)

	_, err = s.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestCorruptDirectoryStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, "dhanam_users", "{{{"))

	s := newTestService(t, kv)
	_, _, err := s.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	s := newTestService(t, kv)

	profile, _, err := s.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)

	phone := "+91 98765 43210"
	name := "Jane D"
	updated, err := s.UpdateProfile(ctx, profile.ID, models.ProfileUpdate{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Jane D", updated.Name)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "jane@x.com", updated.Email)

	// the edit is mirrored into the directory and survives a restart
	s2 := newTestService(t, kv)
	again, _, err := s2.Login(ctx, "jane@x.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "Jane D", again.Name)
	assert.Equal(t, phone, again.Phone)
}

func TestUpdateProfile_NoSession(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, kvstore.NewMemoryStore())

	name := "x"
	_, err := s.UpdateProfile(ctx, "nobody", models.ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestSignup_SurvivesFullStorage(t *testing.T) {
	ctx := context.Background()
	// quota so small every commit fails
	kv := kvstore.NewMemoryStoreWithQuota(4)
	s := newTestService(t, kv)

	profile, token, err := s.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)

	// in-memory state stays authoritative for the rest of the session
	got, err := s.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)

	_, _, err = s.Login(ctx, "jane@x.com", "pass123")
	require.NoError(t, err)
}

func TestSubscribe_NotifiedOnMutation(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, kvstore.NewMemoryStore())

	var calls int
	s.Subscribe(func() { calls++ })

	profile, _, err := s.Signup(ctx, "Jane", "jane@x.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	s.Logout(ctx, profile.ID)
	assert.Equal(t, 2, calls)
}
