package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Shared chrome
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.new_article", "New Article")
	message.SetString(lang, "nav.login", "Log in")
	message.SetString(lang, "nav.logout", "Log out")

	// Home page
	message.SetString(lang, "title.home", "%s | Home")
	message.SetString(lang, "home.empty", "No articles yet.")
	message.SetString(lang, "home.published", "Published %s")

	// Article page
	message.SetString(lang, "article.updated", "Updated %s")
	message.SetString(lang, "article.edit", "Edit")
	message.SetString(lang, "article.delete", "Delete")
	message.SetString(lang, "article.delete_confirm", "Delete this article?")

	// Login page
	message.SetString(lang, "title.login", "%s | Log In")
	message.SetString(lang, "login.heading", "Log in")
	message.SetString(lang, "login.username", "Username")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Log in")

	// Upload page
	message.SetString(lang, "title.upload", "%s | New Article")
	message.SetString(lang, "upload.heading", "New article")
	message.SetString(lang, "upload.title_label", "Title")
	message.SetString(lang, "upload.content_label", "HTML content")
	message.SetString(lang, "upload.submit", "Publish")

	// Edit page
	message.SetString(lang, "title.edit", "%s | Edit Article")
	message.SetString(lang, "edit.heading", "Edit article")
	message.SetString(lang, "edit.submit", "Save changes")

	// Flash notices
	message.SetString(lang, "flash.logged_in", "Logged in.")
	message.SetString(lang, "flash.logged_out", "You have been logged out.")
	message.SetString(lang, "flash.article_published", "Published \"%s\".")
	message.SetString(lang, "flash.article_updated", "Updated \"%s\".")
	message.SetString(lang, "flash.article_deleted", "Deleted \"%s\".")

	// Error pages
	message.SetString(lang, "error.not_found_title", "Page not found")
	message.SetString(lang, "error.not_found_body", "The page you are looking for does not exist.")
	message.SetString(lang, "error.internal_title", "Something went wrong")
	message.SetString(lang, "error.internal_body", "An unexpected error occurred. Please try again.")
	message.SetString(lang, "error.back_home", "Back to home")
}
