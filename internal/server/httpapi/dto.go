package httpapi

import (
	"time"

	"notekeeper/internal/server/folders"
	"notekeeper/internal/server/notes"
	"notekeeper/internal/server/users"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *users.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

type sessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}

type noteResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"is_favorite"`
	FolderID   *string   `json:"folder_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toNoteResponse(n *notes.Note) noteResponse {
	return noteResponse{
		ID:         n.ID,
		UserID:     n.UserID,
		Title:      n.Title,
		Content:    n.Content,
		Tags:       n.Tags,
		IsFavorite: n.IsFavorite,
		FolderID:   n.FolderID,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func toNoteResponses(list []notes.Note) []noteResponse {
	result := make([]noteResponse, 0, len(list))
	for i := range list {
		result = append(result, toNoteResponse(&list[i]))
	}
	return result
}

type folderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toFolderResponse(f *folders.Folder) folderResponse {
	return folderResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toFolderResponses(list []folders.Folder) []folderResponse {
	result := make([]folderResponse, 0, len(list))
	for i := range list {
		result = append(result, toFolderResponse(&list[i]))
	}
	return result
}
