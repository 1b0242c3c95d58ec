package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/domain/repository"
	"github.com/bnema/dumbterm/internal/logging"
	"github.com/goccy/go-json"
)

const (
	upsertLayoutSQL = `INSERT INTO layouts (name, document) VALUES (?, ?)
ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = CURRENT_TIMESTAMP`
	getLayoutSQL    = `SELECT document FROM layouts WHERE name = ?`
	listLayoutsSQL  = `SELECT name FROM layouts ORDER BY name`
	deleteLayoutSQL = `DELETE FROM layouts WHERE name = ?`
)

type layoutRepo struct {
	db *sql.DB
}

// NewLayoutRepository creates a SQLite-backed layout repository.
// Layouts are stored as their JSON document.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db}
}

func (r *layoutRepo) Save(ctx context.Context, desc *entity.LayoutDescription) error {
	if desc == nil || desc.Name == "" {
		return fmt.Errorf("layout name cannot be empty")
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("layout", desc.Name).Msg("saving layout")

	doc, err := json.Marshal(desc)
	if err != nil {
		return fmt.Errorf("encode layout %q: %w", desc.Name, err)
	}
	if _, err := r.db.ExecContext(ctx, upsertLayoutSQL, desc.Name, string(doc)); err != nil {
		return fmt.Errorf("save layout %q: %w", desc.Name, err)
	}
	return nil
}

func (r *layoutRepo) Get(ctx context.Context, name string) (*entity.LayoutDescription, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, getLayoutSQL, name).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get layout %q: %w", name, err)
	}

	desc := &entity.LayoutDescription{}
	if err := json.Unmarshal([]byte(doc), desc); err != nil {
		return nil, fmt.Errorf("decode layout %q: %w", name, err)
	}
	// The row key wins over a name embedded in an imported document.
	desc.Name = name
	return desc, nil
}

func (r *layoutRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsSQL)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list layouts: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, deleteLayoutSQL, name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	return nil
}
