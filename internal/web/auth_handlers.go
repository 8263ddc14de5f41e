package web

import (
	"net/http"

	"github.com/lmoreira/quill/internal/platform/apperrors"
	"github.com/lmoreira/quill/internal/web/platform/flash"
	"github.com/lmoreira/quill/internal/web/platform/sessioncookie"
	"github.com/lmoreira/quill/internal/web/routepath"
	"github.com/lmoreira/quill/internal/web/templates"
)

func (h *handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	next := routepath.SafeNext(r.URL.Query().Get(routepath.NextParam))
	if _, ok := h.currentSession(r); ok {
		http.Redirect(w, r, next, http.StatusFound)
		return
	}
	shell := h.pageShell(w, r)
	if next == routepath.Root {
		next = ""
	}
	h.renderPage(w, r, http.StatusOK, templates.LoginPage(shell, next))
}

func (h *handler) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderInternalError(w, r, err)
		return
	}
	next := routepath.SafeNext(r.PostFormValue(routepath.NextParam))

	session, err := h.sessions.Authenticate(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		shell := h.pageShell(w, r)
		shell.Notice = &flash.Notice{Kind: flash.KindError, Message: apperrors.PublicMessage(err)}
		formNext := next
		if formNext == routepath.Root {
			formNext = ""
		}
		h.renderPage(w, r, apperrors.HTTPStatus(err), templates.LoginPage(shell, formNext))
		return
	}

	token, err := h.sessions.IssueToken(session)
	if err != nil {
		h.renderInternalError(w, r, err)
		return
	}
	sessioncookie.Write(w, r, token)
	flash.Write(w, r, flash.Notice{Kind: flash.KindSuccess, Message: localizer(w, r).Sprintf("flash.logged_in")})
	http.Redirect(w, r, next, http.StatusFound)
}

func (h *handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r)
	flash.Write(w, r, flash.Notice{Kind: flash.KindInfo, Message: localizer(w, r).Sprintf("flash.logged_out")})
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}
