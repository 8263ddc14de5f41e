// Package templates renders the blog's HTML pages as templ components.
package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/lmoreira/quill/internal/blog/article"
	"github.com/lmoreira/quill/internal/web/platform/flash"
	"github.com/lmoreira/quill/internal/web/routepath"
)

// SiteName is the blog title shown in the shell and page titles.
const SiteName = "Quill"

// Shell carries data every page needs.
type Shell struct {
	Printer  *message.Printer
	LoggedIn bool
	Notice   *flash.Notice
}

func (s Shell) printer() *message.Printer {
	if s.Printer != nil {
		return s.Printer
	}
	return message.NewPrinter(message.MatchLanguage("en"))
}

// ArticleForm holds raw form values so failed submissions re-render what the
// author typed.
type ArticleForm struct {
	Title   string
	Content string
}

func layout(shell Shell, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := shell.printer()
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>%s</title></head><body>", templ.EscapeString(title)); err != nil {
			return err
		}
		if err := navigation(w, p, shell.LoggedIn); err != nil {
			return err
		}
		if err := noticeBanner(w, shell.Notice); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<main>"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

func navigation(w io.Writer, p *message.Printer, loggedIn bool) error {
	if _, err := fmt.Fprintf(w, "<header><h1><a href=%q>%s</a></h1><nav>", routepath.Root, templ.EscapeString(SiteName)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<a href=%q>%s</a> ", routepath.Root, templ.EscapeString(p.Sprintf("nav.home"))); err != nil {
		return err
	}
	if loggedIn {
		if _, err := fmt.Fprintf(w, "<a href=%q>%s</a> <a href=%q>%s</a>",
			routepath.Upload, templ.EscapeString(p.Sprintf("nav.new_article")),
			routepath.Logout, templ.EscapeString(p.Sprintf("nav.logout"))); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "<a href=%q>%s</a>", routepath.Login, templ.EscapeString(p.Sprintf("nav.login"))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</nav></header>")
	return err
}

func noticeBanner(w io.Writer, notice *flash.Notice) error {
	if notice == nil || notice.Message == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "<div class=\"notice notice-%s\" role=\"status\">%s</div>",
		templ.EscapeString(string(notice.Kind)), templ.EscapeString(notice.Message))
	return err
}

func formatDay(t time.Time) string {
	return t.UTC().Format("January 2, 2006")
}

// HomePage lists published articles, newest first.
func HomePage(shell Shell, articles []article.Article) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := shell.printer()
		if len(articles) == 0 {
			_, err := fmt.Fprintf(w, "<p>%s</p>", templ.EscapeString(p.Sprintf("home.empty")))
			return err
		}
		if _, err := io.WriteString(w, "<ul class=\"articles\">"); err != nil {
			return err
		}
		for _, a := range articles {
			if _, err := fmt.Fprintf(w, "<li><a href=%q>%s</a> <time datetime=%q>%s</time></li>",
				routepath.ArticlePath(a.Slug),
				templ.EscapeString(a.Title),
				a.CreatedAt.UTC().Format(time.RFC3339),
				templ.EscapeString(p.Sprintf("home.published", formatDay(a.CreatedAt)))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
	return layout(shell, shell.printer().Sprintf("title.home", SiteName), body)
}

// ArticlePage renders one article. renderedHTML is the article body after the
// configured content mode has been applied and is written without escaping.
func ArticlePage(shell Shell, a article.Article, renderedHTML string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := shell.printer()
		if _, err := fmt.Fprintf(w, "<article><h2>%s</h2><p><time datetime=%q>%s</time></p>",
			templ.EscapeString(a.Title),
			a.UpdatedAt.UTC().Format(time.RFC3339),
			templ.EscapeString(p.Sprintf("article.updated", formatDay(a.UpdatedAt)))); err != nil {
			return err
		}
		if err := templ.Raw(renderedHTML).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</article>"); err != nil {
			return err
		}
		if shell.LoggedIn {
			if _, err := fmt.Fprintf(w, "<p><a href=%q>%s</a></p>", routepath.EditPath(a.Slug), templ.EscapeString(p.Sprintf("article.edit"))); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "<form method=\"post\" action=%q onsubmit=\"return confirm('%s')\"><button type=\"submit\">%s</button></form>",
				routepath.DeletePath(a.Slug),
				templ.EscapeString(p.Sprintf("article.delete_confirm")),
				templ.EscapeString(p.Sprintf("article.delete"))); err != nil {
				return err
			}
		}
		return nil
	})
	return layout(shell, fmt.Sprintf("%s | %s", a.Title, SiteName), body)
}

// LoginPage renders the login form. next is carried through as a hidden field
// so a successful login returns to the originally requested page.
func LoginPage(shell Shell, next string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := shell.printer()
		if _, err := fmt.Fprintf(w, "<h2>%s</h2><form method=\"post\" action=%q>", templ.EscapeString(p.Sprintf("login.heading")), routepath.Login); err != nil {
			return err
		}
		if next != "" {
			if _, err := fmt.Fprintf(w, "<input type=\"hidden\" name=%q value=%q>", routepath.NextParam, templ.EscapeString(next)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			"<label>%s <input type=\"text\" name=\"username\" required autofocus></label>"+
				"<label>%s <input type=\"password\" name=\"password\" required></label>"+
				"<button type=\"submit\">%s</button></form>",
			templ.EscapeString(p.Sprintf("login.username")),
			templ.EscapeString(p.Sprintf("login.password")),
			templ.EscapeString(p.Sprintf("login.submit")))
		return err
	})
	return layout(shell, shell.printer().Sprintf("title.login", SiteName), body)
}

// UploadPage renders the new-article form, pre-filled on failed submissions.
func UploadPage(shell Shell, form ArticleForm) templ.Component {
	p := shell.printer()
	body := articleForm(shell, routepath.Upload, p.Sprintf("upload.heading"), p.Sprintf("upload.submit"), form)
	return layout(shell, p.Sprintf("title.upload", SiteName), body)
}

// EditPage renders the edit form for an existing article.
func EditPage(shell Shell, slug string, form ArticleForm) templ.Component {
	p := shell.printer()
	body := articleForm(shell, routepath.EditPath(slug), p.Sprintf("edit.heading"), p.Sprintf("edit.submit"), form)
	return layout(shell, p.Sprintf("title.edit", SiteName), body)
}

func articleForm(shell Shell, action, heading, submit string, form ArticleForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := shell.printer()
		_, err := fmt.Fprintf(w,
			"<h2>%s</h2><form method=\"post\" action=%q>"+
				"<label>%s <input type=\"text\" name=\"title\" value=%q></label>"+
				"<label>%s <textarea name=\"html_content\" rows=\"20\">%s</textarea></label>"+
				"<button type=\"submit\">%s</button></form>",
			templ.EscapeString(heading),
			action,
			templ.EscapeString(p.Sprintf("upload.title_label")),
			templ.EscapeString(form.Title),
			templ.EscapeString(p.Sprintf("upload.content_label")),
			templ.EscapeString(form.Content),
			templ.EscapeString(submit))
		return err
	})
}

// NotFoundPage renders the 404 page.
func NotFoundPage(shell Shell) templ.Component {
	return errorPage(shell, "error.not_found_title", "error.not_found_body")
}

// InternalErrorPage renders the 500 page.
func InternalErrorPage(shell Shell) templ.Component {
	return errorPage(shell, "error.internal_title", "error.internal_body")
}

func errorPage(shell Shell, titleKey, bodyKey string) templ.Component {
	p := shell.printer()
	title := p.Sprintf(titleKey)
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h2>%s</h2><p>%s</p><p><a href=%q>%s</a></p>",
			templ.EscapeString(title),
			templ.EscapeString(p.Sprintf(bodyKey)),
			routepath.Root,
			templ.EscapeString(p.Sprintf("error.back_home")))
		return err
	})
	return layout(shell, fmt.Sprintf("%s | %s", title, SiteName), body)
}
