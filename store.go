package website

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/testingfly/website/logger"
	"github.com/testingfly/website/migrations"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("resource not found")

// Store wraps a SQLite database and provides CRUD operations for
// resources.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and applies the schema migrations.
func NewStore(path string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// WAL lets readers proceed while the admin writes; writers wait on
	// busy_timeout instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	if err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

var resourceColumns = []string{"id", "title", "url", "description", "category", "position", "published", "created_at"}

func selectResources() sq.SelectBuilder {
	return sq.Select(resourceColumns...).From("resources")
}

// ListResources returns published resources in display order: by
// category, then position, then insertion order.
func (s *Store) ListResources(ctx context.Context) ([]Resource, error) {
	return s.query(ctx, selectResources().
		Where(sq.Eq{"published": 1}).
		OrderBy("category COLLATE NOCASE", "position", "id"))
}

// ListAllResources returns every resource, drafts included, in display
// order.
func (s *Store) ListAllResources(ctx context.Context) ([]Resource, error) {
	return s.query(ctx, selectResources().OrderBy("category COLLATE NOCASE", "position", "id"))
}

// GetResource returns a resource by id regardless of published status.
func (s *Store) GetResource(ctx context.Context, id int64) (Resource, error) {
	q, args, err := selectResources().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return Resource{}, err
	}
	r, err := scanResource(s.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Resource{}, ErrNotFound
	}
	if err != nil {
		return Resource{}, fmt.Errorf("get resource %d: %w", id, err)
	}
	return r, nil
}

// SaveResource inserts r when r.ID is zero and updates it otherwise. It
// returns the id of the stored row.
func (s *Store) SaveResource(ctx context.Context, r Resource) (int64, error) {
	published := 0
	if r.Published {
		published = 1
	}
	if r.ID == 0 {
		created := r.CreatedAt
		if created.IsZero() {
			created = time.Now()
		}
		res, err := s.exec(ctx, sq.Insert("resources").
			Columns("title", "url", "description", "category", "position", "published", "created_at").
			Values(r.Title, r.URL, r.Description, r.Category, r.Position, published, created.UTC().Format(time.RFC3339)))
		if err != nil {
			return 0, fmt.Errorf("insert resource: %w", err)
		}
		return res.LastInsertId()
	}
	res, err := s.exec(ctx, sq.Update("resources").
		SetMap(map[string]interface{}{
			"title":       r.Title,
			"url":         r.URL,
			"description": r.Description,
			"category":    r.Category,
			"position":    r.Position,
			"published":   published,
		}).
		Where(sq.Eq{"id": r.ID}))
	if err != nil {
		return 0, fmt.Errorf("update resource %d: %w", r.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return r.ID, nil
}

// DeleteResource removes a resource by id.
func (s *Store) DeleteResource(ctx context.Context, id int64) error {
	res, err := s.exec(ctx, sq.Delete("resources").Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("delete resource %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) exec(ctx context.Context, b sq.Sqlizer) (sql.Result, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return s.db.ExecContext(ctx, q, args...)
}

func (s *Store) query(ctx context.Context, b sq.SelectBuilder) ([]Resource, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}
	defer rows.Close()

	var resources []Resource
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	return resources, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResource(row scanner) (Resource, error) {
	var (
		r         Resource
		published int
		created   string
	)
	if err := row.Scan(&r.ID, &r.Title, &r.URL, &r.Description, &r.Category, &r.Position, &published, &created); err != nil {
		return Resource{}, err
	}
	r.Published = published == 1
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		r.CreatedAt = t
	}
	return r, nil
}
