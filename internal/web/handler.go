package web

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/lmoreira/quill/internal/blog/article"
	"github.com/lmoreira/quill/internal/blog/auth"
	"github.com/lmoreira/quill/internal/blog/render"
	"github.com/lmoreira/quill/internal/web/i18n"
	"github.com/lmoreira/quill/internal/web/platform/flash"
	"github.com/lmoreira/quill/internal/web/platform/sessioncookie"
	"github.com/lmoreira/quill/internal/web/routepath"
	"github.com/lmoreira/quill/internal/web/templates"
	"golang.org/x/text/message"
)

type handler struct {
	articles *article.Service
	sessions *auth.Manager
	renderer render.Renderer
}

// localizer resolves the request locale, optionally persists a cookie, and
// returns a message printer.
func localizer(w http.ResponseWriter, r *http.Request) *message.Printer {
	tag, setCookie := i18n.ResolveTag(r)
	if setCookie {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag)
}

func (h *handler) currentSession(r *http.Request) (auth.Session, bool) {
	token, ok := sessioncookie.Read(r)
	if !ok {
		return auth.Session{}, false
	}
	return h.sessions.VerifyToken(token)
}

// pageShell assembles per-page data for a response that renders HTML now.
// It consumes any pending flash notice, so redirecting handlers must not
// call it.
func (h *handler) pageShell(w http.ResponseWriter, r *http.Request) templates.Shell {
	shell := templates.Shell{Printer: localizer(w, r)}
	if _, ok := h.currentSession(r); ok {
		shell.LoggedIn = true
	}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		shell.Notice = &notice
	}
	return shell
}

func (h *handler) renderPage(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(r.Context(), w); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
	}
}

func (h *handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	shell := h.pageShell(w, r)
	h.renderPage(w, r, http.StatusNotFound, templates.NotFoundPage(shell))
}

func (h *handler) renderInternalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	shell := h.pageShell(w, r)
	h.renderPage(w, r, http.StatusInternalServerError, templates.InternalErrorPage(shell))
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, r)
}

// requireSession gates admin pages. Requests without a valid session are
// bounced to the login page carrying the original target.
func (h *handler) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.currentSession(r); !ok {
			http.Redirect(w, r, routepath.LoginPathWithNext(r.URL.Path), http.StatusFound)
			return
		}
		next(w, r)
	}
}
