// Package catalog manages the games catalog: storage, request handling and
// the page fragments that present it.
package catalog

import (
	"errors"

	"github.com/uptrace/bun"
)

// Game is one catalog entry
type Game struct {
	bun.BaseModel `bun:"table:game"`

	Slug        string `bun:"slug,pk"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description,nullzero"`
}

var (
	// ErrNotFound is returned when no game has the requested slug.
	ErrNotFound = errors.New("catalog: game not found")
	// ErrUnavailable is returned when the store cannot be reached within
	// the acquire deadline or the request was cancelled.
	ErrUnavailable = errors.New("catalog: store unavailable")
)
