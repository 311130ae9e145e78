package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/common"
	"notekeeper/internal/server/auth"
	"notekeeper/internal/server/config"
	"notekeeper/internal/server/refreshtokens"
)

// fakeUserRepo keeps users in memory keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*User
	byID    map[string]*User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*User{}, byID: map[string]*User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *User) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, common.ErrEmailTaken
	}
	user.CreatedAt = time.Now()
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

// fakeTokenRepo keeps refresh tokens in memory.
type fakeTokenRepo struct {
	tokens map[string]*refreshtokens.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*refreshtokens.RefreshToken{}}
}

func (f *fakeTokenRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	f.tokens[token] = &refreshtokens.RefreshToken{Token: token, UserID: userID, ExpiresAt: time.Now().Add(validity)}
	return nil
}

func (f *fakeTokenRepo) Find(ctx context.Context, token string) (*refreshtokens.RefreshToken, error) {
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeTokenRepo) Delete(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func (f *fakeTokenRepo) Rotate(ctx context.Context, oldToken, newToken, userID string, validity time.Duration) error {
	delete(f.tokens, oldToken)
	return f.Create(ctx, userID, newToken, validity)
}

func (f *fakeTokenRepo) DeleteForUser(ctx context.Context, userID string) error {
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
		}
	}
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeTokenRepo) {
	cfg := &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
	}
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	return NewService(users, tokens, cfg), users, tokens
}

func TestRegister_NormalizesEmail(t *testing.T) {
	s, repo, _ := newTestService()

	user, err := s.Register(context.Background(), "  Ann@Example.COM ", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "ann@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotContains(t, string(user.PasswordHash), "secret1")
	_, ok := repo.byEmail["ann@example.com"]
	assert.True(t, ok)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.Register(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "ann@example.com", "secret2")
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestRegister_ShortPassword(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.Register(context.Background(), "ann@example.com", "12345")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestLogin_Success(t *testing.T) {
	s, _, tokens := newTestService()

	registered, err := s.Register(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)

	user, pair, err := s.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// access token carries the user ID
	userID, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)

	// refresh token is persisted
	_, ok := tokens.tokens[pair.RefreshToken]
	assert.True(t, ok)
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.Register(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = s.Login(context.Background(), "ann@example.com", "wrong-pass")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	s, _, _ := newTestService()

	_, _, err := s.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefresh_RotatesToken(t *testing.T) {
	s, _, tokens := newTestService()

	_, err := s.Register(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	_, pair, err := s.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)

	newPair, err := s.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, newPair.RefreshToken)

	// the returned token is the stored one
	_, ok := tokens.tokens[newPair.RefreshToken]
	assert.True(t, ok)

	// the old token is consumed
	_, ok = tokens.tokens[pair.RefreshToken]
	assert.False(t, ok)
	_, err = s.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefresh_ExpiredTokenDeleted(t *testing.T) {
	s, _, tokens := newTestService()

	user, err := s.Register(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)

	tokens.tokens["stale"] = &refreshtokens.RefreshToken{
		Token: "stale", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err = s.Refresh(context.Background(), "stale")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
	_, ok := tokens.tokens["stale"]
	assert.False(t, ok)
}

func TestLogout_RevokesAllTokens(t *testing.T) {
	s, _, tokens := newTestService()

	user, err := s.Register(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	_, _, err = s.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	_, _, err = s.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	require.Len(t, tokens.tokens, 2)

	require.NoError(t, s.Logout(context.Background(), user.ID))
	assert.Empty(t, tokens.tokens)
}
