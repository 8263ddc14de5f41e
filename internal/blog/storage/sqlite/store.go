package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmoreira/quill/internal/blog/article"
	"github.com/lmoreira/quill/internal/blog/storage"
	"github.com/lmoreira/quill/internal/blog/storage/sqlite/migrations"
	"github.com/lmoreira/quill/internal/blog/user"
	sqlitemigrate "github.com/lmoreira/quill/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store implements blog persistence over SQLite.
//
// A single SQLite file backs both users and articles so every request shares
// the same transaction and visibility boundaries.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the blog SQLite store and applies bundled migrations.
//
// This keeps startup and schema evolution in one place, instead of requiring
// callers to coordinate migrations independently.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListArticles returns all articles ordered most recently created first.
func (s *Store) ListArticles(ctx context.Context) ([]article.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, slug, title, html_content, created_at, updated_at
FROM articles
ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []article.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

// GetArticleBySlug fetches one article by its slug.
func (s *Store) GetArticleBySlug(ctx context.Context, slug string) (article.Article, error) {
	if err := ctx.Err(); err != nil {
		return article.Article{}, err
	}
	if s == nil || s.sqlDB == nil {
		return article.Article{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, slug, title, html_content, created_at, updated_at
FROM articles
WHERE slug = ?`, slug)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return article.Article{}, storage.ErrNotFound
		}
		return article.Article{}, fmt.Errorf("get article by slug: %w", err)
	}
	return a, nil
}

// InsertArticle persists a new article and returns it with its assigned id.
func (s *Store) InsertArticle(ctx context.Context, a article.Article) (article.Article, error) {
	if err := ctx.Err(); err != nil {
		return article.Article{}, err
	}
	if s == nil || s.sqlDB == nil {
		return article.Article{}, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO articles (slug, title, html_content, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		a.Slug, a.Title, a.HTMLContent, toMillis(a.CreatedAt), toMillis(a.UpdatedAt))
	if err != nil {
		return article.Article{}, fmt.Errorf("insert article: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return article.Article{}, fmt.Errorf("article insert id: %w", err)
	}
	a.ID = id
	return a, nil
}

// UpdateArticle rewrites slug, title and content of an existing article.
func (s *Store) UpdateArticle(ctx context.Context, a article.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if a.ID == 0 {
		return fmt.Errorf("article id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE articles
SET slug = ?, title = ?, html_content = ?, updated_at = ?
WHERE id = ?`,
		a.Slug, a.Title, a.HTMLContent, toMillis(a.UpdatedAt), a.ID)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update article rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteArticle removes an article by id.
func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete article rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetUserByUsername fetches an administrator account by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}
	if s == nil || s.sqlDB == nil {
		return user.User{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(username) == "" {
		return user.User{}, fmt.Errorf("username is required")
	}

	var (
		u         user.User
		createdAt int64
	)
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, username, password_hash, created_at
FROM users
WHERE username = ?`, username)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, storage.ErrNotFound
		}
		return user.User{}, fmt.Errorf("get user by username: %w", err)
	}
	u.CreatedAt = fromMillis(createdAt)
	return u, nil
}

// InsertUser persists a new administrator account.
func (s *Store) InsertUser(ctx context.Context, u user.User) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}
	if s == nil || s.sqlDB == nil {
		return user.User{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(u.Username) == "" {
		return user.User{}, fmt.Errorf("username is required")
	}
	if strings.TrimSpace(u.PasswordHash) == "" {
		return user.User{}, fmt.Errorf("password hash is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO users (username, password_hash, created_at)
VALUES (?, ?, ?)`,
		u.Username, u.PasswordHash, toMillis(u.CreatedAt))
	if err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return user.User{}, fmt.Errorf("user insert id: %w", err)
	}
	u.ID = id
	return u, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (article.Article, error) {
	var (
		a         article.Article
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.HTMLContent, &createdAt, &updatedAt); err != nil {
		return article.Article{}, err
	}
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updatedAt)
	return a, nil
}

var _ article.Store = (*Store)(nil)
