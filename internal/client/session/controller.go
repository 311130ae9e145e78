// Package session owns the canonical in-memory note and folder collections
// for the active session and routes every user action through the optimistic
// mutation protocol. Presentation code only ever sees copies; all mutation
// flows through the controller's methods.
package session

import (
	"context"
	"sync"

	"notekeeper/internal/client/backend"
	"notekeeper/internal/client/models"
	"notekeeper/internal/client/noteview"
	"notekeeper/internal/logging"
)

// State is the per-session lifecycle: Unauthenticated → Loading → Ready.
// Ready self-loops on every mutation; losing the session drops back to
// Unauthenticated. There is no offline or reconnecting state.
type State int

const (
	StateUnauthenticated State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

type Controller struct {
	backend backend.Backend
	logger  logging.Logger

	state   State
	user    *models.User
	notes   []models.Note
	folders []models.Folder
	filter  models.Filter
}

func NewController(b backend.Backend, l logging.Logger) *Controller {
	return &Controller{
		backend: b,
		logger:  l.With("module", "session"),
		state:   StateUnauthenticated,
		filter:  models.AllFilter(),
	}
}

// SignIn authenticates and loads the user's collections. On success the
// controller is Ready.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	sess, err := c.backend.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	c.user = &sess.User
	c.load(ctx)
	return nil
}

// SignUp registers a new account. It does not start a session; callers
// follow up with SignIn.
func (c *Controller) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	return c.backend.SignUp(ctx, email, password)
}

// Resume restores a session from an existing token, as on page load. If the
// backend reports no current user the controller stays Unauthenticated and
// the caller should route to the sign-in entry point.
func (c *Controller) Resume(ctx context.Context) error {
	user, err := c.backend.CurrentUser(ctx)
	if err != nil {
		c.reset()
		return err
	}

	c.user = user
	c.load(ctx)
	return nil
}

// load fetches notes and folders concurrently and joins before going Ready.
// A failed fetch degrades that collection to empty instead of blocking the
// other one.
func (c *Controller) load(ctx context.Context) {
	c.state = StateLoading

	var (
		wg      sync.WaitGroup
		notes   []models.Note
		folders []models.Folder
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		notes, err = c.backend.ListNotes(ctx)
		if err != nil {
			c.logger.Error(ctx, "loading notes failed", "error", err.Error())
			notes = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		folders, err = c.backend.ListFolders(ctx)
		if err != nil {
			c.logger.Error(ctx, "loading folders failed", "error", err.Error())
			folders = nil
		}
	}()
	wg.Wait()

	c.notes = notes
	c.folders = folders
	c.state = StateReady
}

// SignOut terminates the session and discards all in-memory state. The
// remote call's error is reported but local state is dropped regardless.
func (c *Controller) SignOut(ctx context.Context) error {
	err := c.backend.SignOut(ctx)
	c.reset()
	return err
}

func (c *Controller) reset() {
	c.state = StateUnauthenticated
	c.user = nil
	c.notes = nil
	c.folders = nil
	c.filter = models.AllFilter()
}

func (c *Controller) State() State { return c.state }

func (c *Controller) User() *models.User {
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Notes returns a copy of the canonical note collection.
func (c *Controller) Notes() []models.Note {
	out := make([]models.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Folders returns a copy of the canonical folder collection.
func (c *Controller) Folders() []models.Folder {
	out := make([]models.Folder, len(c.folders))
	copy(out, c.folders)
	return out
}

func (c *Controller) Filter() models.Filter { return c.filter }

func (c *Controller) SetFilter(f models.Filter) { c.filter = f }

// FilterTitle resolves the active filter to its header label.
func (c *Controller) FilterTitle() string {
	switch c.filter.Kind {
	case models.FilterAll:
		return "All Notes"
	case models.FilterFavorites:
		return "Favorites"
	case models.FilterUnfiled:
		return "Unfiled"
	case models.FilterFolder:
		for _, f := range c.folders {
			if f.ID == c.filter.FolderID {
				return f.Name
			}
		}
		return "Folder"
	default:
		return "Notes"
	}
}

// View derives the visible notes and sidebar counts for the active filter
// combined with the given list controls.
// View derives the presentation state for the current collections. The
// sidebar filter belongs to the controller; q.Filter is overwritten.
func (c *Controller) View(q noteview.Query) noteview.View {
	q.Filter = c.filter
	return noteview.Derive(c.notes, q)
}

func (c *Controller) noteIndex(noteID string) int {
	for i := range c.notes {
		if c.notes[i].ID == noteID {
			return i
		}
	}
	return -1
}

func (c *Controller) folderIndex(folderID string) int {
	for i := range c.folders {
		if c.folders[i].ID == folderID {
			return i
		}
	}
	return -1
}
