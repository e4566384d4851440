package services

import (
	"context"
	"testing"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, *u)
	}
	return users, nil
}

const testSecret = "test-secret"

func TestAuthService_RegisterLoginVerify(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testSecret)
	ctx := context.Background()

	user, err := svc.Register(ctx, "dev@example.com", "hunter22", "Dev")
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "password must be hashed")

	token, err := svc.Login(ctx, "dev@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testSecret)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dev@example.com", "hunter22", "Dev")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dev@example.com", "other-pass", "Dev Again")
	assert.ErrorIs(t, err, errors.ErrAlreadyExists)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testSecret)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dev@example.com", "hunter22", "Dev")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "dev@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email reports the same error")
}

func TestAuthService_VerifyTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testSecret)

	_, err := svc.VerifyToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_VerifyTokenRejectsWrongSecret(t *testing.T) {
	repo := newFakeUserRepo()
	ctx := context.Background()

	issuer := NewAuthService(repo, "secret-a")
	_, err := issuer.Register(ctx, "dev@example.com", "hunter22", "Dev")
	require.NoError(t, err)
	token, err := issuer.Login(ctx, "dev@example.com", "hunter22")
	require.NoError(t, err)

	verifier := NewAuthService(repo, "secret-b")
	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_UpdateNiche(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testSecret)
	ctx := context.Background()

	user, err := svc.Register(ctx, "dev@example.com", "hunter22", "Dev")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateNiche(ctx, user.ID, "B2B SaaS"))

	updated, err := svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "B2B SaaS", updated.Niche)
}

func TestUserContextRoundTrip(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "dev@example.com"}

	ctx := WithUserContext(context.Background(), user)
	got, ok := UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)

	_, ok = UserFromContext(context.Background())
	assert.False(t, ok)
}
