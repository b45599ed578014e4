package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type PlayerRow struct {
	ID          int32
	AccountName string
	Name        string
	X, Y, Z     float64
	Heading     float64
	CreatedAt   time.Time
	LastSeen    *time.Time
}

type PlayerRepo struct {
	db *DB
}

func NewPlayerRepo(db *DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// LoadByAccount returns the player row for an account, or nil when the
// account has none yet.
func (r *PlayerRepo) LoadByAccount(ctx context.Context, accountName string) (*PlayerRow, error) {
	row := &PlayerRow{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, account_name, name, x, y, z, heading, created_at, last_seen
		 FROM players WHERE account_name = $1`, accountName,
	).Scan(
		&row.ID, &row.AccountName, &row.Name,
		&row.X, &row.Y, &row.Z, &row.Heading,
		&row.CreatedAt, &row.LastSeen,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Create inserts a fresh player at the given spawn position and returns it.
func (r *PlayerRepo) Create(ctx context.Context, accountName, name string, x, y, z float64) (*PlayerRow, error) {
	row := &PlayerRow{
		AccountName: accountName,
		Name:        name,
		X:           x,
		Y:           y,
		Z:           z,
	}
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO players (account_name, name, x, y, z)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		accountName, name, x, y, z,
	).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}
	return row, nil
}

// SavePosition writes a player's position and bumps last_seen.
func (r *PlayerRepo) SavePosition(ctx context.Context, id int32, x, y, z, heading float64) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE players SET x = $2, y = $3, z = $4, heading = $5, last_seen = NOW()
		 WHERE id = $1`,
		id, x, y, z, heading,
	)
	if err != nil {
		return fmt.Errorf("save player %d: %w", id, err)
	}
	return nil
}

// NameTaken reports whether a character name is already in use.
func (r *PlayerRepo) NameTaken(ctx context.Context, name string) (bool, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM players WHERE name = $1`, name,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
