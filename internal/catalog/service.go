package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/funicular/funicular/internal/logging"
	"github.com/funicular/funicular/internal/markup"
	"github.com/funicular/funicular/internal/page"
)

// Submit actions carried by the form's submit button
const (
	SubmitAdd    = "add"
	SubmitRemove = "remove"
)

// State is the presentation state a request resolves to
type State int

const (
	// StateIdle renders no catalog content (landing page).
	StateIdle State = iota
	// StateListing renders the catalog table.
	StateListing
	// StateAddPending renders the table with the add dialog over it.
	StateAddPending
)

func (s State) String() string {
	switch s {
	case StateListing:
		return "listing"
	case StateAddPending:
		return "add-pending"
	}
	return "idle"
}

// Form is a decoded POST /games submission
type Form struct {
	Submit      string
	Name        string
	Description string
	Slugs       []string
	All         bool
}

// Validate checks the fields the chosen action needs
func (f Form) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Submit, validation.Required, validation.In(SubmitAdd, SubmitRemove)),
		validation.Field(&f.Name, validation.When(f.Submit == SubmitAdd, validation.Required)),
	)
}

// View is the outcome of a request: fragments for the page composer plus
// the state and HTTP status they represent
type View struct {
	State   State
	Status  int
	Content markup.Part
	Overlay markup.Part
}

// Fragments returns the view in composer form
func (v *View) Fragments() page.Fragments {
	return page.Fragments{Content: v.Content, Overlay: v.Overlay}
}

// Service implements the catalog operations over a Repository.
// It holds no per-request state.
type Service struct {
	repo Repository
	log  logging.Logger
}

// NewService creates a catalog service
func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: logging.OrNoOp(log)}
}

// List returns all games in storage order
func (s *Service) List(ctx context.Context) ([]Game, error) {
	return s.repo.List(ctx)
}

// Add stores a game under a slug derived from its name
func (s *Service) Add(ctx context.Context, name, description string) (*Game, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	form := Form{Submit: SubmitAdd, Name: name, Description: description}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("add game: %w", err)
	}

	id, err := s.newSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	game := &Game{Slug: id, Name: name, Description: description}
	if err := s.repo.Insert(ctx, game); err != nil {
		return nil, err
	}
	s.log.Info("game added", "slug", game.Slug, "name", game.Name)
	return game, nil
}

// Remove deletes every game when all is set, otherwise exactly the games in
// slugs. Absent slugs and an empty set are not errors.
func (s *Service) Remove(ctx context.Context, slugs []string, all bool) (int64, error) {
	var (
		n   int64
		err error
	)
	if all {
		n, err = s.repo.DeleteAll(ctx)
	} else {
		n, err = s.repo.Delete(ctx, dedupe(slugs))
	}
	if err != nil {
		return 0, err
	}
	s.log.Info("games removed", "count", n, "all", all)
	return n, nil
}

// Get returns one game
func (s *Service) Get(ctx context.Context, id string) (*Game, error) {
	return s.repo.Get(ctx, id)
}

// Listing renders the catalog, optionally with the add dialog. Read failures
// render the empty state; only ErrUnavailable is returned.
func (s *Service) Listing(ctx context.Context, addOpen bool) (*View, error) {
	games, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		s.log.Warn("list games failed", "error", err)
		games = nil
	}

	view := &View{State: StateListing, Status: http.StatusOK, Content: ListingView(games)}
	if addOpen {
		view.State = StateAddPending
		view.Overlay = AddDialog()
	}
	return view, nil
}

// Submit applies a form mutation and renders the resulting listing in the
// same response. An invalid add re-opens the dialog.
func (s *Service) Submit(ctx context.Context, form Form) (*View, error) {
	form.Name = strings.TrimSpace(form.Name)
	if err := form.Validate(); err != nil {
		s.log.Debug("rejected form", "submit", form.Submit, "error", err)
		return s.Listing(ctx, form.Submit == SubmitAdd)
	}

	var err error
	switch form.Submit {
	case SubmitAdd:
		_, err = s.Add(ctx, form.Name, form.Description)
	case SubmitRemove:
		_, err = s.Remove(ctx, form.Slugs, form.All)
	}
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		s.log.Error("catalog mutation failed", "submit", form.Submit, "error", err)
	}
	return s.Listing(ctx, false)
}

// Detail renders one game. Unknown slugs render a not-found view.
func (s *Service) Detail(ctx context.Context, id string) (*View, error) {
	game, err := s.repo.Get(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		return &View{State: StateListing, Status: http.StatusNotFound, Content: MissingView()}, nil
	case errors.Is(err, ErrUnavailable):
		return nil, err
	case err != nil:
		s.log.Warn("get game failed", "slug", id, "error", err)
		return &View{State: StateListing, Status: http.StatusOK, Content: MissingView()}, nil
	}

	description, err := markup.Markdown(game.Description)
	if err != nil {
		s.log.Warn("render description failed", "slug", id, "error", err)
		description = []markup.Node{markup.El("p", markup.Text(game.Description))}
	}
	return &View{State: StateListing, Status: http.StatusOK, Content: DetailView(game, description)}, nil
}

// newSlug derives a slug from name, adding a random suffix when the
// normalized slug is empty or already taken
func (s *Service) newSlug(ctx context.Context, name string) (string, error) {
	base, err := slug.Normalize(name)
	if err != nil || base == "" {
		return "game-" + shortID(), nil
	}

	taken, err := s.repo.Exists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return base + "-" + shortID(), nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func dedupe(slugs []string) []string {
	seen := make(map[string]struct{}, len(slugs))
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
