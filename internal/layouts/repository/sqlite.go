package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	advisor "room-planner/internal/advisor/models"
	"room-planner/internal/layouts/models"
)

// ============================================================
// SQLite Repository
// ============================================================

var ErrNotFound = errors.New("not found")

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Init applies the schema. It is safe to call on every start.
func (r *Repository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (r *Repository) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

// ============================================================
// Layouts
// ============================================================

func (r *Repository) CreateLayout(ctx context.Context, name string, room advisor.RoomDimensions) (*models.Layout, error) {
	l := &models.Layout{
		ID:        uuid.NewString(),
		Name:      name,
		Room:      room,
		CreatedAt: r.timestamp(),
	}

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO layouts (id, name, width, depth, height, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, l.ID, l.Name, room.Width, room.Depth, room.Height, l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert layout %q: %w", name, err)
	}
	return l, nil
}

func (r *Repository) GetLayout(ctx context.Context, id string) (*models.Layout, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, width, depth, height, created_at
        FROM layouts
        WHERE id = ?
    `, id)

	var l models.Layout
	if err := row.Scan(&l.ID, &l.Name, &l.Room.Width, &l.Room.Depth, &l.Room.Height, &l.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("layout %q: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &l, nil
}

// ListLayouts returns every layout in creation order, without items.
func (r *Repository) ListLayouts(ctx context.Context) ([]models.Layout, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, width, depth, height, created_at
        FROM layouts
        ORDER BY rowid
    `)
	if err != nil {
		return nil, fmt.Errorf("query layouts: %w", err)
	}
	defer rows.Close()

	layouts := []models.Layout{}
	for rows.Next() {
		var l models.Layout
		if err := rows.Scan(&l.ID, &l.Name, &l.Room.Width, &l.Room.Depth, &l.Room.Height, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan layout: %w", err)
		}
		layouts = append(layouts, l)
	}
	return layouts, rows.Err()
}

// DeleteLayout removes a layout and, through the foreign key, its items.
func (r *Repository) DeleteLayout(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM layout_items WHERE layout_id = ?`, id); err != nil {
		return fmt.Errorf("delete items of %q: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM layouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete layout %q: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("layout %q: %w", id, ErrNotFound)
	}
	return tx.Commit()
}

// ============================================================
// Items
// ============================================================

func (r *Repository) AddItem(ctx context.Context, layoutID, furnitureID string, pos advisor.Position, rotation float64) (*models.Item, error) {
	if _, err := r.GetLayout(ctx, layoutID); err != nil {
		return nil, err
	}

	item := &models.Item{
		ID:          uuid.NewString(),
		LayoutID:    layoutID,
		FurnitureID: furnitureID,
		Position:    pos,
		Rotation:    rotation,
		CreatedAt:   r.timestamp(),
	}

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO layout_items (id, layout_id, furniture_id, x, y, z, rotation, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, item.ID, layoutID, furnitureID, pos.X, pos.Y, pos.Z, rotation, item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert item %q: %w", furnitureID, err)
	}
	return item, nil
}

// ListItems returns the items of a layout in placement order.
func (r *Repository) ListItems(ctx context.Context, layoutID string) ([]models.Item, error) {
	if _, err := r.GetLayout(ctx, layoutID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT id, layout_id, furniture_id, x, y, z, rotation, created_at
        FROM layout_items
        WHERE layout_id = ?
        ORDER BY rowid
    `, layoutID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.LayoutID, &it.FurnitureID,
			&it.Position.X, &it.Position.Y, &it.Position.Z, &it.Rotation, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *Repository) RemoveItem(ctx context.Context, layoutID, itemID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM layout_items WHERE id = ? AND layout_id = ?`, itemID, layoutID)
	if err != nil {
		return fmt.Errorf("delete item %q: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("item %q: %w", itemID, ErrNotFound)
	}
	return nil
}

// ============================================================
// Connection
// ============================================================

// OpenSQLite opens (creating if needed) the database file at dbPath.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := "file:" + dbPath + "?mode=rwc&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}
