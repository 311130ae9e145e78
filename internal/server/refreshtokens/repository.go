package refreshtokens

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	Find(ctx context.Context, token string) (*RefreshToken, error)
	Delete(ctx context.Context, token string) error
	DeleteForUser(ctx context.Context, userID string) error
	// Rotate atomically consumes oldToken and stores newToken for the user.
	Rotate(ctx context.Context, oldToken, newToken, userID string, validity time.Duration) error
}
