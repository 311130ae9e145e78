package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"notekeeper/internal/client/models"
	"notekeeper/internal/common"
)

// HTTPBackend talks JSON over HTTP to the Notekeeper server. It holds the
// token pair for the active session; SignIn/SignUp populate it, SignOut
// clears it.
type HTTPBackend struct {
	baseURL      string
	httpClient   *http.Client
	accessToken  string
	refreshToken string
}

func NewHTTPBackend(baseURL string) *HTTPBackend {
	return &HTTPBackend{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (b *HTTPBackend) Close() error {
	b.httpClient.CloseIdleConnections()
	return nil
}

// errorResponse is the server's uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

func (b *HTTPBackend) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+b.accessToken)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func (b *HTTPBackend) do(ctx context.Context, method, path string, body any, out any) error {
	resp, err := b.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// An expired access token gets one transparent refresh-and-retry.
	if resp.StatusCode == http.StatusUnauthorized && b.refreshToken != "" && path != refreshPath {
		resp.Body.Close()
		if err := b.refresh(ctx); err != nil {
			return err
		}
		resp, err = b.send(ctx, method, path, body)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
	}

	if resp.StatusCode >= 400 {
		return b.asError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

const refreshPath = "/api/auth/refresh"

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// refresh swaps the stored refresh token for a fresh pair. The server
// consumes the presented token, so on success both tokens are replaced.
func (b *HTTPBackend) refresh(ctx context.Context) error {
	var pair tokenPair
	body := map[string]string{"refresh_token": b.refreshToken}
	if err := b.do(ctx, http.MethodPost, refreshPath, body, &pair); err != nil {
		b.accessToken = ""
		b.refreshToken = ""
		return err
	}
	b.accessToken = pair.AccessToken
	b.refreshToken = pair.RefreshToken
	return nil
}

func (b *HTTPBackend) asError(resp *http.Response) error {
	var er errorResponse
	msg := http.StatusText(resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
		msg = er.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrEmailTaken, msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", common.ErrorValidation, msg)
	default:
		return fmt.Errorf("%w: %s", common.ErrorInternal, msg)
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (b *HTTPBackend) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := b.do(ctx, http.MethodPost, "/api/auth/register", credentials{Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (b *HTTPBackend) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := b.do(ctx, http.MethodPost, "/api/auth/login", credentials{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	b.accessToken = session.AccessToken
	b.refreshToken = session.RefreshToken
	return &session, nil
}

func (b *HTTPBackend) SignOut(ctx context.Context) error {
	body := map[string]string{"refresh_token": b.refreshToken}
	err := b.do(ctx, http.MethodPost, "/api/auth/logout", body, nil)
	b.accessToken = ""
	b.refreshToken = ""
	return err
}

func (b *HTTPBackend) CurrentUser(ctx context.Context) (*models.User, error) {
	if b.accessToken == "" {
		return nil, common.ErrorUnauthorized
	}
	var user models.User
	if err := b.do(ctx, http.MethodGet, "/api/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (b *HTTPBackend) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := b.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (b *HTTPBackend) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder
	if err := b.do(ctx, http.MethodGet, "/api/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

type createNoteRequest struct {
	models.NoteInput
	FolderID *string `json:"folder_id,omitempty"`
}

func (b *HTTPBackend) CreateNote(ctx context.Context, input models.NoteInput, folderID *string) (*models.Note, error) {
	var note models.Note
	req := createNoteRequest{NoteInput: input, FolderID: folderID}
	if err := b.do(ctx, http.MethodPost, "/api/notes", req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (b *HTTPBackend) UpdateNote(ctx context.Context, noteID string, patch NotePatch) (*models.Note, error) {
	var note models.Note
	path := "/api/notes/" + url.PathEscape(noteID)
	if err := b.do(ctx, http.MethodPut, path, patch, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (b *HTTPBackend) DeleteNote(ctx context.Context, noteID string) error {
	return b.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(noteID), nil, nil)
}

type folderNameRequest struct {
	Name string `json:"name"`
}

func (b *HTTPBackend) CreateFolder(ctx context.Context, name string) (*models.Folder, error) {
	var folder models.Folder
	if err := b.do(ctx, http.MethodPost, "/api/folders", folderNameRequest{Name: name}, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (b *HTTPBackend) UpdateFolder(ctx context.Context, folderID, name string) (*models.Folder, error) {
	var folder models.Folder
	path := "/api/folders/" + url.PathEscape(folderID)
	if err := b.do(ctx, http.MethodPut, path, folderNameRequest{Name: name}, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (b *HTTPBackend) DeleteFolder(ctx context.Context, folderID string) error {
	return b.do(ctx, http.MethodDelete, "/api/folders/"+url.PathEscape(folderID), nil, nil)
}

func (b *HTTPBackend) ClearFolderNotes(ctx context.Context, folderID string) error {
	path := "/api/folders/" + url.PathEscape(folderID) + "/clear-notes"
	return b.do(ctx, http.MethodPost, path, nil, nil)
}
