package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/logging"
)

const (
	upsertLayoutQuery = `
INSERT INTO layouts (name, layout_json, version, widget_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    layout_json = excluded.layout_json,
    version = excluded.version,
    widget_count = excluded.widget_count,
    updated_at = excluded.updated_at`

	getLayoutQuery    = `SELECT layout_json FROM layouts WHERE name = ?`
	listLayoutsQuery  = `SELECT name, version, widget_count, updated_at FROM layouts ORDER BY updated_at DESC, name`
	deleteLayoutQuery = `DELETE FROM layouts WHERE name = ?`
)

type layoutRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutRepository creates a new layout repository.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db, now: time.Now}
}

// Save stores or replaces a layout snapshot.
func (r *layoutRepo) Save(ctx context.Context, name string, data *entity.LayoutData) error {
	log := logging.FromContext(ctx)
	if data == nil {
		return errors.New("layout data cannot be nil")
	}

	layoutJSON, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout")
		return err
	}

	log.Debug().
		Str("layout", name).
		Int("widget_count", data.CountWidgets()).
		Msg("saving layout")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin layout transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("layout rollback reported non-terminal error")
		}
	}()

	now := r.now().Unix()
	if _, err := tx.ExecContext(ctx, upsertLayoutQuery,
		name, string(layoutJSON), data.Version, data.CountWidgets(), now, now,
	); err != nil {
		return fmt.Errorf("upsert layout: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit layout transaction: %w", err)
	}
	return nil
}

// Get returns the layout stored under name, or nil.
func (r *layoutRepo) Get(ctx context.Context, name string) (*entity.LayoutData, error) {
	var layoutJSON string
	err := r.db.QueryRowContext(ctx, getLayoutQuery, name).Scan(&layoutJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var data entity.LayoutData
	if err := json.Unmarshal([]byte(layoutJSON), &data); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("layout", name).
			Msg("failed to unmarshal layout")
		return nil, err
	}
	return &data, nil
}

// List returns every stored layout, most recently updated first.
func (r *layoutRepo) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsQuery)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var infos []entity.LayoutInfo
	for rows.Next() {
		var (
			info      entity.LayoutInfo
			updatedAt int64
		)
		if err := rows.Scan(&info.Name, &info.Version, &info.WidgetCount, &updatedAt); err != nil {
			return nil, err
		}
		info.UpdatedAt = time.Unix(updatedAt, 0)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes the layout stored under name.
func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("layout", name).Msg("deleting layout")
	_, err := r.db.ExecContext(ctx, deleteLayoutQuery, name)
	return err
}
