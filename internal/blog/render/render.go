// Package render decides how stored article HTML reaches the page.
//
// The single-author design treats article content as trusted markup, so the
// default mode renders it untouched. Deployments with a less trusted editing
// surface can opt into sanitize-on-render instead.
package render

import (
	"fmt"
	"strings"
)

// Mode selects the content rendering capability.
type Mode string

const (
	// ModeTrusted renders stored HTML exactly as authored.
	ModeTrusted Mode = "trusted"
	// ModeSanitize strips active content before rendering.
	ModeSanitize Mode = "sanitize"
)

// ParseMode validates a configured mode string. Empty selects ModeTrusted.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeTrusted:
		return ModeTrusted, nil
	case ModeSanitize:
		return ModeSanitize, nil
	default:
		return "", fmt.Errorf("unknown content mode %q", value)
	}
}

// Renderer prepares article HTML for a page according to its mode.
type Renderer struct {
	mode Mode
}

// New builds a renderer for the given mode.
func New(mode Mode) Renderer {
	if mode == "" {
		mode = ModeTrusted
	}
	return Renderer{mode: mode}
}

// Mode reports the configured content mode.
func (r Renderer) Mode() Mode {
	return r.mode
}

// Render returns the HTML to embed for the article body.
func (r Renderer) Render(htmlContent string) string {
	if r.mode == ModeSanitize {
		return Sanitize(htmlContent)
	}
	return htmlContent
}
