package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// Repository is the storage contract the service depends on
type Repository interface {
	List(ctx context.Context) ([]Game, error)
	Get(ctx context.Context, slug string) (*Game, error)
	Exists(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, game *Game) error
	Delete(ctx context.Context, slugs []string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// BunRepository stores games through bun. Each call is a single statement
// run in autocommit mode.
type BunRepository struct {
	db      *bun.DB
	timeout time.Duration
}

var _ Repository = (*BunRepository)(nil)

// NewBunRepository creates a repository. timeout bounds each statement,
// including the wait for a pooled connection; zero disables it.
func NewBunRepository(db *bun.DB, timeout time.Duration) *BunRepository {
	return &BunRepository{db: db, timeout: timeout}
}

// CreateSchema creates the game table when it does not exist
func (r *BunRepository) CreateSchema(ctx context.Context) error {
	ctx, cancel := r.deadline(ctx)
	defer cancel()
	_, err := r.db.NewCreateTable().Model((*Game)(nil)).IfNotExists().Exec(ctx)
	return r.wrap("create schema", err)
}

// List returns slug and name of every game in storage order
func (r *BunRepository) List(ctx context.Context) ([]Game, error) {
	ctx, cancel := r.deadline(ctx)
	defer cancel()

	var games []Game
	err := r.db.NewSelect().Model(&games).Column("slug", "name").Scan(ctx)
	if err != nil {
		return nil, r.wrap("list games", err)
	}
	return games, nil
}

// Get returns one game including its description
func (r *BunRepository) Get(ctx context.Context, slug string) (*Game, error) {
	ctx, cancel := r.deadline(ctx)
	defer cancel()

	var game Game
	err := r.db.NewSelect().Model(&game).Where("slug = ?", slug).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, r.wrap("get game", err)
	}
	return &game, nil
}

// Exists reports whether slug is taken
func (r *BunRepository) Exists(ctx context.Context, slug string) (bool, error) {
	ctx, cancel := r.deadline(ctx)
	defer cancel()

	ok, err := r.db.NewSelect().Model((*Game)(nil)).Where("slug = ?", slug).Exists(ctx)
	if err != nil {
		return false, r.wrap("check slug", err)
	}
	return ok, nil
}

// Insert stores a new game
func (r *BunRepository) Insert(ctx context.Context, game *Game) error {
	ctx, cancel := r.deadline(ctx)
	defer cancel()

	_, err := r.db.NewInsert().Model(game).Exec(ctx)
	return r.wrap("insert game", err)
}

// Delete removes the games with the given slugs. Unknown slugs are ignored.
func (r *BunRepository) Delete(ctx context.Context, slugs []string) (int64, error) {
	if len(slugs) == 0 {
		return 0, nil
	}
	ctx, cancel := r.deadline(ctx)
	defer cancel()

	q := r.db.NewDelete().Model((*Game)(nil))
	if r.db.Dialect().Name() == dialect.PG {
		q = q.Where("slug = ANY(?)", pgdialect.Array(slugs))
	} else {
		q = q.Where("slug IN (?)", bun.In(slugs))
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return 0, r.wrap("delete games", err)
	}
	return affected(res), nil
}

// DeleteAll empties the catalog
func (r *BunRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := r.deadline(ctx)
	defer cancel()

	res, err := r.db.NewDelete().Model((*Game)(nil)).Where("1 = 1").Exec(ctx)
	if err != nil {
		return 0, r.wrap("delete all games", err)
	}
	return affected(res), nil
}

func (r *BunRepository) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// wrap marks deadline and cancellation failures as ErrUnavailable
func (r *BunRepository) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func affected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}
