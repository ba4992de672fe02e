package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lixenwraith/gaze/content"
)

// ErrNotFound is returned when no entry has the requested id
var ErrNotFound = errors.New("archive entry not found")

// Entry is one stored item with its bookkeeping
type Entry struct {
	Item      content.Item
	StoredAt  time.Time
	Published bool // Authored in a session, reloaded as a seed
	Archived  bool // Saved from the thread view
}

// Store persists published and archived items in SQLite
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the archive database at path
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("archive path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Single writer, the loop goroutine
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL,
			rating INTEGER NOT NULL DEFAULT 0,
			image TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			stored_at INTEGER NOT NULL,
			published INTEGER NOT NULL DEFAULT 0,
			archived INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_items_stored_at ON items(stored_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database path
func (s *Store) Path() string {
	return s.path
}

// SavePublished stores an item authored in a session
func (s *Store) SavePublished(ctx context.Context, item content.Item, at time.Time) error {
	return s.upsert(ctx, item, at, true, false)
}

// Archive stores an item from the thread view, keeping its published flag if already present
func (s *Store) Archive(ctx context.Context, item content.Item, at time.Time) error {
	return s.upsert(ctx, item, at, false, true)
}

func (s *Store) upsert(ctx context.Context, item content.Item, at time.Time, published, archived bool) error {
	if item.ID == "" {
		return fmt.Errorf("%w: item has no id", content.ErrInvalidItem)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, type, title, subtitle, content, rating, image, link, stored_at, published, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			title = excluded.title,
			subtitle = excluded.subtitle,
			content = excluded.content,
			rating = excluded.rating,
			image = excluded.image,
			link = excluded.link,
			published = MAX(items.published, excluded.published),
			archived = MAX(items.archived, excluded.archived)
	`, item.ID, string(item.Type), item.Title, item.Subtitle, item.Content, item.Rating, item.Image, item.Link,
		at.UnixMilli(), boolInt(published), boolInt(archived))
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", item.ID, err)
	}
	return nil
}

// Get returns the entry with the given id
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, selectEntry+` WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, err
}

// Filter selects entries returned by List
type Filter uint8

const (
	FilterAll Filter = iota
	FilterPublished
	FilterArchived
)

// List returns entries in storage order
func (s *Store) List(ctx context.Context, filter Filter) ([]Entry, error) {
	query := selectEntry
	switch filter {
	case FilterPublished:
		query += ` WHERE published = 1`
	case FilterArchived:
		query += ` WHERE archived = 1`
	}
	query += ` ORDER BY stored_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PublishedItems returns the items authored in earlier sessions, ready to seed
func (s *Store) PublishedItems(ctx context.Context) ([]content.Item, error) {
	entries, err := s.List(ctx, FilterPublished)
	if err != nil {
		return nil, err
	}
	items := make([]content.Item, len(entries))
	for i, e := range entries {
		items[i] = e.Item
	}
	return items, nil
}

const selectEntry = `SELECT id, type, title, subtitle, content, rating, image, link, stored_at, published, archived FROM items`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e         Entry
		typ       string
		storedAt  int64
		published int
		archived  int
	)
	err := sc.Scan(&e.Item.ID, &typ, &e.Item.Title, &e.Item.Subtitle, &e.Item.Content, &e.Item.Rating,
		&e.Item.Image, &e.Item.Link, &storedAt, &published, &archived)
	if err != nil {
		return Entry{}, err
	}
	e.Item.Type = content.Type(typ)
	e.StoredAt = time.UnixMilli(storedAt)
	e.Published = published != 0
	e.Archived = archived != 0
	return e, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
