package models

import (
	"fmt"
	"strings"
	"time"

	"notekeeper/internal/common"
)

// MaxFolderNameLen caps folder names after trimming.
const MaxFolderNameLen = 100

type Folder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateFolderName trims the name and checks it is non-empty and within
// MaxFolderNameLen. Returns the trimmed name, or common.ErrorValidation.
// Name uniqueness is not enforced here; concurrent duplicates are tolerated.
func ValidateFolderName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: folder name must not be empty", common.ErrorValidation)
	}
	if len(name) > MaxFolderNameLen {
		return "", fmt.Errorf("%w: folder name longer than %d characters", common.ErrorValidation, MaxFolderNameLen)
	}
	return name, nil
}
