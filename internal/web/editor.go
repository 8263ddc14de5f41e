package web

import (
	"net/http"

	"github.com/lmoreira/quill/internal/platform/apperrors"
	"github.com/lmoreira/quill/internal/web/platform/flash"
	"github.com/lmoreira/quill/internal/web/routepath"
	"github.com/lmoreira/quill/internal/web/templates"
)

func (h *handler) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	shell := h.pageShell(w, r)
	h.renderPage(w, r, http.StatusOK, templates.UploadPage(shell, templates.ArticleForm{}))
}

func (h *handler) handleUploadSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	created, err := h.articles.Create(r.Context(), r.PostFormValue("title"), r.PostFormValue("html_content"))
	if err != nil {
		flash.Write(w, r, flash.Notice{Kind: flash.KindError, Message: apperrors.PublicMessage(err)})
		http.Redirect(w, r, routepath.Upload, http.StatusFound)
		return
	}

	flash.Write(w, r, flash.Notice{Kind: flash.KindSuccess, Message: localizer(w, r).Sprintf("flash.article_published", created.Title)})
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

func (h *handler) handleEditPage(w http.ResponseWriter, r *http.Request) {
	shell := h.pageShell(w, r)
	a, err := h.articles.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			h.renderPage(w, r, http.StatusNotFound, templates.NotFoundPage(shell))
			return
		}
		h.renderInternalError(w, r, err)
		return
	}
	form := templates.ArticleForm{Title: a.Title, Content: a.HTMLContent}
	h.renderPage(w, r, http.StatusOK, templates.EditPage(shell, a.Slug, form))
}

func (h *handler) handleEditSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderInternalError(w, r, err)
		return
	}
	slug := r.PathValue("slug")
	title := r.PostFormValue("title")
	content := r.PostFormValue("html_content")

	updated, err := h.articles.Update(r.Context(), slug, title, content)
	if err != nil {
		switch apperrors.KindOf(err) {
		case apperrors.KindNotFound:
			shell := h.pageShell(w, r)
			h.renderPage(w, r, http.StatusNotFound, templates.NotFoundPage(shell))
		case apperrors.KindInvalidInput, apperrors.KindConflict:
			// Re-render the form with what the author typed so nothing is
			// lost on a failed save.
			shell := h.pageShell(w, r)
			shell.Notice = &flash.Notice{Kind: flash.KindError, Message: apperrors.PublicMessage(err)}
			form := templates.ArticleForm{Title: title, Content: content}
			h.renderPage(w, r, apperrors.HTTPStatus(err), templates.EditPage(shell, slug, form))
		default:
			h.renderInternalError(w, r, err)
		}
		return
	}

	flash.Write(w, r, flash.Notice{Kind: flash.KindSuccess, Message: localizer(w, r).Sprintf("flash.article_updated", updated.Title)})
	http.Redirect(w, r, routepath.ArticlePath(updated.Slug), http.StatusFound)
}

func (h *handler) handleDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.articles.Delete(r.Context(), r.PathValue("slug"))
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			shell := h.pageShell(w, r)
			h.renderPage(w, r, http.StatusNotFound, templates.NotFoundPage(shell))
			return
		}
		// A failed removal is not fatal: the list view still renders, with
		// the failure flashed.
		flash.Write(w, r, flash.Notice{Kind: flash.KindError, Message: apperrors.PublicMessage(err)})
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}

	flash.Write(w, r, flash.Notice{Kind: flash.KindSuccess, Message: localizer(w, r).Sprintf("flash.article_deleted", deleted.Title)})
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}
