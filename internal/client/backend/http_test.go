package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"notekeeper/internal/client/models"
	"notekeeper/internal/common"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *HTTPBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPBackend(srv.URL)
}

func TestSignIn_StoresTokensAndSendsThem(t *testing.T) {
	var sawAuth string
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			require.Equal(t, "a@b.c", creds["email"])
			json.NewEncoder(w).Encode(Session{
				AccessToken:  "tok",
				RefreshToken: "ref",
				User:         models.User{ID: "u1", Email: "a@b.c"},
			})
		case "/api/notes":
			sawAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]models.Note{})
		}
	})

	sess, err := b.SignIn(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "u1", sess.User.ID)

	_, err = b.ListNotes(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok", sawAuth)
}

func TestCurrentUser_NoSession(t *testing.T) {
	b := NewHTTPBackend("http://127.0.0.1:0")
	_, err := b.CurrentUser(context.Background())
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestStatusCodesMapToSentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, common.ErrorUnauthorized},
		{http.StatusNotFound, common.ErrorNotFound},
		{http.StatusBadRequest, common.ErrorValidation},
		{http.StatusConflict, common.ErrEmailTaken},
		{http.StatusInternalServerError, common.ErrorInternal},
	}

	for _, tt := range tests {
		b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]string{"error": "nope"})
		})
		err := b.DeleteNote(context.Background(), "n1")
		require.ErrorIs(t, err, tt.want, "status %d", tt.status)
		require.Contains(t, err.Error(), "nope")
	}
}

func TestCreateNote_SendsFolderID(t *testing.T) {
	f1 := "F1"
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/notes", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Title", body["title"])
		require.Equal(t, "F1", body["folder_id"])

		json.NewEncoder(w).Encode(models.Note{ID: "n1", Title: "Title", FolderID: &f1})
	})

	note, err := b.CreateNote(context.Background(),
		models.NewNoteInput("Title", "body", []string{"work"}, false), &f1)
	require.NoError(t, err)
	require.Equal(t, "n1", note.ID)
	require.Equal(t, "F1", *note.FolderID)
}

func TestUpdateNote_PatchOmitsUnsetFields(t *testing.T) {
	fav := true
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notes/n1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, true, body["is_favorite"])
		_, hasTitle := body["title"]
		require.False(t, hasTitle)

		json.NewEncoder(w).Encode(models.Note{ID: "n1", IsFavorite: true})
	})

	note, err := b.UpdateNote(context.Background(), "n1", NotePatch{IsFavorite: &fav})
	require.NoError(t, err)
	require.True(t, note.IsFavorite)
}

func TestUpdateNote_MoveToUnfiled(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, true, body["move_folder"])
		_, hasFolder := body["folder_id"]
		require.False(t, hasFolder)

		json.NewEncoder(w).Encode(models.Note{ID: "n1"})
	})

	note, err := b.UpdateNote(context.Background(), "n1", NotePatch{MoveFolder: true})
	require.NoError(t, err)
	require.Nil(t, note.FolderID)
}

func TestClearFolderNotes_Path(t *testing.T) {
	var sawPath string
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		sawPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, b.ClearFolderNotes(context.Background(), "F1"))
	require.Equal(t, "/api/folders/F1/clear-notes", sawPath)
}

func TestExpiredToken_RefreshedAndRetried(t *testing.T) {
	calls := map[string]int{}
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calls[r.URL.Path]++
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(Session{AccessToken: "stale", RefreshToken: "ref1"})
		case "/api/auth/refresh":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "ref1", body["refresh_token"])
			json.NewEncoder(w).Encode(map[string]string{
				"access_token":  "fresh",
				"refresh_token": "ref2",
			})
		case "/api/notes":
			if r.Header.Get("Authorization") != "Bearer fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode([]models.Note{{ID: "n1"}})
		}
	})

	_, err := b.SignIn(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	notes, err := b.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, 2, calls["/api/notes"])
	require.Equal(t, 1, calls["/api/auth/refresh"])
	require.Equal(t, "ref2", b.refreshToken)
}

func TestExpiredRefreshToken_SurfacesUnauthorized(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(Session{AccessToken: "stale", RefreshToken: "dead"})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "refresh token expired"})
		}
	})

	_, err := b.SignIn(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	_, err = b.ListNotes(context.Background())
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	require.Empty(t, b.accessToken)
}

func TestSignOut_ClearsTokens(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(Session{AccessToken: "tok", RefreshToken: "ref"})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	_, err := b.SignIn(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.NoError(t, b.SignOut(context.Background()))

	_, err = b.CurrentUser(context.Background())
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}
