package web

import (
	"errors"
	"net/http"

	"github.com/lmoreira/quill/internal/blog/storage"
	"github.com/lmoreira/quill/internal/platform/apperrors"
	"github.com/lmoreira/quill/internal/web/templates"
)

func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	shell := h.pageShell(w, r)
	articles, err := h.articles.ListAll(r.Context())
	if err != nil {
		h.renderInternalError(w, r, err)
		return
	}
	h.renderPage(w, r, http.StatusOK, templates.HomePage(shell, articles))
}

func (h *handler) handleArticle(w http.ResponseWriter, r *http.Request) {
	shell := h.pageShell(w, r)
	a, err := h.articles.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound || errors.Is(err, storage.ErrNotFound) {
			h.renderPage(w, r, http.StatusNotFound, templates.NotFoundPage(shell))
			return
		}
		h.renderInternalError(w, r, err)
		return
	}
	h.renderPage(w, r, http.StatusOK, templates.ArticlePage(shell, a, h.renderer.Render(a.HTMLContent)))
}
