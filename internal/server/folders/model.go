package folders

import (
	"fmt"
	"strings"
	"time"

	"notekeeper/internal/common"
)

// MaxNameLen limits folder names, matching the client-side rule.
const MaxNameLen = 100

type Folder struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeName trims and validates a folder name.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: folder name must not be empty", common.ErrorValidation)
	}
	if len(name) > MaxNameLen {
		return "", fmt.Errorf("%w: folder name must be at most %d characters", common.ErrorValidation, MaxNameLen)
	}
	return name, nil
}
