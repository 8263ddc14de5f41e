// Package flash implements one-shot notices carried across redirects in a
// short-lived cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lmoreira/quill/internal/web/platform/requestmeta"
)

// cookieName is the transport cookie for pending notices.
const cookieName = "quill_flash"

// Kind classifies a notice for presentation.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is a single message shown on the next rendered page.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Write stores a notice to be displayed on the next page load.
func Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if w == nil {
		return
	}
	notice = normalizeNotice(notice)
	if notice.Message == "" {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300,
	})
}

// ReadAndClear returns the pending notice, if any, and expires its cookie so
// the notice renders at most once.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie == nil || strings.TrimSpace(cookie.Value) == "" {
		return Notice{}, false
	}
	Clear(w, r)

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(payload, &notice); err != nil {
		return Notice{}, false
	}
	notice = normalizeNotice(notice)
	if notice.Message == "" {
		return Notice{}, false
	}
	return notice, true
}

// Clear expires any pending notice cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func normalizeNotice(notice Notice) Notice {
	notice.Message = strings.TrimSpace(notice.Message)
	switch notice.Kind {
	case KindInfo, KindSuccess, KindError:
	default:
		notice.Kind = KindInfo
	}
	return notice
}
