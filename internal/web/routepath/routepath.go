// Package routepath stores canonical HTTP paths for the blog.
package routepath

import "net/url"

const (
	Root          = "/"
	Login         = "/login"
	Logout        = "/logout"
	Upload        = "/upload"
	ArticlePrefix = "/article/"
	EditPrefix    = "/edit/"
	DeletePrefix  = "/delete/"

	ArticlePattern = ArticlePrefix + "{slug}"
	EditPattern    = EditPrefix + "{slug}"
	DeletePattern  = DeletePrefix + "{slug}"
)

// NextParam carries the originally-requested path through a login redirect.
const NextParam = "next"

// ArticlePath returns the public path for an article slug.
func ArticlePath(slug string) string {
	return ArticlePrefix + url.PathEscape(slug)
}

// EditPath returns the admin edit path for an article slug.
func EditPath(slug string) string {
	return EditPrefix + url.PathEscape(slug)
}

// DeletePath returns the admin delete path for an article slug.
func DeletePath(slug string) string {
	return DeletePrefix + url.PathEscape(slug)
}

// LoginPathWithNext returns the login path carrying a post-login target.
func LoginPathWithNext(next string) string {
	if next == "" || next == Root {
		return Login
	}
	return Login + "?" + NextParam + "=" + url.QueryEscape(next)
}

// SafeNext validates a post-login redirect target. Only local absolute paths
// are accepted; anything else falls back to the home page so the login flow
// cannot be used as an open redirect.
func SafeNext(next string) string {
	if next == "" {
		return Root
	}
	parsed, err := url.Parse(next)
	if err != nil {
		return Root
	}
	if parsed.Scheme != "" || parsed.Host != "" {
		return Root
	}
	if len(parsed.Path) == 0 || parsed.Path[0] != '/' {
		return Root
	}
	if len(parsed.Path) > 1 && parsed.Path[1] == '/' {
		// "//host" is scheme-relative, not local.
		return Root
	}
	return parsed.Path
}
