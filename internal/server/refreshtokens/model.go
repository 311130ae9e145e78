package refreshtokens

import "time"

type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
