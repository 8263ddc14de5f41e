package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lmoreira/quill/internal/blog/slug"
	"github.com/lmoreira/quill/internal/blog/storage"
	"github.com/lmoreira/quill/internal/platform/apperrors"
)

// Store is the persistence surface the article service depends on.
type Store interface {
	// ListArticles returns all articles, most recently created first.
	ListArticles(ctx context.Context) ([]Article, error)
	// GetArticleBySlug returns the article owning slug, or storage.ErrNotFound.
	GetArticleBySlug(ctx context.Context, slug string) (Article, error)
	// InsertArticle persists a new article and returns it with its assigned id.
	InsertArticle(ctx context.Context, a Article) (Article, error)
	// UpdateArticle rewrites slug, title and content of the article with a.ID.
	UpdateArticle(ctx context.Context, a Article) error
	// DeleteArticle removes the article with the given id.
	DeleteArticle(ctx context.Context, id int64) error
}

// Service implements article CRUD with slug uniqueness enforcement.
//
// Each mutating operation issues exactly one write to storage; validation
// happens in memory first so either the full mutation lands or none of it
// does.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService builds an article service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock overrides the service clock. Test seam.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// ListAll returns every article, most recently created first.
func (s *Service) ListAll(ctx context.Context) ([]Article, error) {
	articles, err := s.store.ListArticles(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnavailable, "failed to load articles", err)
	}
	return articles, nil
}

// GetBySlug returns the article owning slug.
func (s *Service) GetBySlug(ctx context.Context, articleSlug string) (Article, error) {
	a, err := s.store.GetArticleBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Article{}, apperrors.E(apperrors.KindNotFound, "article not found")
		}
		return Article{}, apperrors.Wrap(apperrors.KindUnavailable, "failed to load article", err)
	}
	return a, nil
}

// Create validates and persists a new article.
func (s *Service) Create(ctx context.Context, title, htmlContent string) (Article, error) {
	title = strings.TrimSpace(title)
	htmlContent = strings.TrimSpace(htmlContent)
	if title == "" || htmlContent == "" {
		return Article{}, apperrors.E(apperrors.KindInvalidInput, "Both title and HTML content are required.")
	}

	articleSlug := slug.Make(title)
	if existing, err := s.store.GetArticleBySlug(ctx, articleSlug); err == nil {
		return Article{}, duplicateSlugError(existing.Title)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return Article{}, apperrors.Wrap(apperrors.KindUnavailable, "failed to check slug", err)
	}

	now := s.now().UTC()
	created, err := s.store.InsertArticle(ctx, Article{
		Slug:        articleSlug,
		Title:       title,
		HTMLContent: htmlContent,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return Article{}, fmt.Errorf("create article: %w", err)
	}
	return created, nil
}

// Update loads the article owning articleSlug, applies the new title and
// content, recomputes the slug and persists the result.
//
// The mutated in-memory article is returned alongside validation errors so
// callers can re-render an edit form with the rejected values.
func (s *Service) Update(ctx context.Context, articleSlug, newTitle, newContent string) (Article, error) {
	current, err := s.GetBySlug(ctx, articleSlug)
	if err != nil {
		return Article{}, err
	}

	current.Title = strings.TrimSpace(newTitle)
	current.HTMLContent = strings.TrimSpace(newContent)
	current.Slug = slug.Make(current.Title)

	if current.Title == "" || current.HTMLContent == "" {
		return current, apperrors.E(apperrors.KindInvalidInput, "Title and HTML content cannot be empty.")
	}

	// A different article already owning the recomputed slug would otherwise
	// surface as a raw constraint violation at commit time.
	if existing, err := s.store.GetArticleBySlug(ctx, current.Slug); err == nil && existing.ID != current.ID {
		return current, duplicateSlugError(existing.Title)
	} else if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return current, apperrors.Wrap(apperrors.KindUnavailable, "failed to check slug", err)
	}

	current.UpdatedAt = s.now().UTC()
	if err := s.store.UpdateArticle(ctx, current); err != nil {
		return current, fmt.Errorf("update article: %w", err)
	}
	return current, nil
}

// Delete removes the article owning articleSlug.
//
// A missing slug is NotFound; a storage failure during removal is reported as
// a recoverable error so the caller can surface it without failing the page.
func (s *Service) Delete(ctx context.Context, articleSlug string) (Article, error) {
	a, err := s.GetBySlug(ctx, articleSlug)
	if err != nil {
		return Article{}, err
	}
	if err := s.store.DeleteArticle(ctx, a.ID); err != nil {
		return a, apperrors.Wrap(apperrors.KindUnavailable, fmt.Sprintf("Failed to delete article '%s'.", a.Title), err)
	}
	return a, nil
}

func duplicateSlugError(conflictingTitle string) *apperrors.Error {
	return apperrors.WithMetadata(
		apperrors.KindConflict,
		fmt.Sprintf("An article with the title '%s' already exists. Please choose a different title.", conflictingTitle),
		map[string]string{"Title": conflictingTitle},
	)
}
