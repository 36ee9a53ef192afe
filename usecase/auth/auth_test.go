package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/passhash"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrEmailTaken
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) ExistsByCredentials(_ context.Context, email, passwordHash string) (bool, error) {
	user, ok := r.byEmail[email]
	return ok && user.PasswordHash == passwordHash, nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, session *domain.Session) error {
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func newTestUseCase() (*UseCase, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	uc := New(users, sessions, Config{
		JWTSecret:  "test-secret",
		Issuer:     "taskdeck-test",
		SessionTTL: time.Hour,
	}, nil)
	return uc, users, sessions
}

func TestRegisterStoresDigest(t *testing.T) {
	uc, users, _ := newTestUseCase()

	ok, err := uc.Register(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	stored := users.byEmail["a@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, passhash.Digest("secret"), stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, users, _ := newTestUseCase()
	ctx := context.Background()

	ok, err := uc.Register(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = uc.Register(ctx, "a@example.com", "another")
	require.NoError(t, err)
	assert.False(t, ok)

	// Exactly one row survives, holding the first password's digest.
	require.Len(t, users.byEmail, 1)
	assert.Equal(t, passhash.Digest("secret"), users.byEmail["a@example.com"].PasswordHash)
}

func TestLoginCorrectness(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	creds, err := uc.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, creds.Token)
	assert.True(t, creds.ExpiresAt.After(time.Now()))

	// Wrong password and unknown email fail with the same error.
	_, errWrongPass := uc.Login(ctx, "a@example.com", "wrong")
	_, errNoUser := uc.Login(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, errWrongPass, domain.ErrBadCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrBadCredentials)
}

func TestAuthenticateResolvesOwner(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	creds, err := uc.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	owner, err := uc.Authenticate(ctx, creds.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", owner)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Authenticate(context.Background(), "not-a-token")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}

func TestAuthenticateRejectsRevokedSession(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	creds, err := uc.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, creds.Token))

	_, err = uc.Authenticate(ctx, creds.Token)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}

func TestAuthenticateRejectsExpiredSession(t *testing.T) {
	uc, _, sessions := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	creds, err := uc.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	for _, s := range sessions.sessions {
		s.ExpiresAt = time.Now().Add(-time.Minute)
	}

	_, err = uc.Authenticate(ctx, creds.Token)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	assert.Empty(t, sessions.sessions, "expired session should be removed")
}
