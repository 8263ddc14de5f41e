package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Shared chrome
	message.SetString(lang, "nav.home", "Início")
	message.SetString(lang, "nav.new_article", "Novo Artigo")
	message.SetString(lang, "nav.login", "Entrar")
	message.SetString(lang, "nav.logout", "Sair")

	// Home page
	message.SetString(lang, "title.home", "%s | Início")
	message.SetString(lang, "home.empty", "Nenhum artigo ainda.")
	message.SetString(lang, "home.published", "Publicado em %s")

	// Article page
	message.SetString(lang, "article.updated", "Atualizado em %s")
	message.SetString(lang, "article.edit", "Editar")
	message.SetString(lang, "article.delete", "Excluir")
	message.SetString(lang, "article.delete_confirm", "Excluir este artigo?")

	// Login page
	message.SetString(lang, "title.login", "%s | Entrar")
	message.SetString(lang, "login.heading", "Entrar")
	message.SetString(lang, "login.username", "Usuário")
	message.SetString(lang, "login.password", "Senha")
	message.SetString(lang, "login.submit", "Entrar")

	// Upload page
	message.SetString(lang, "title.upload", "%s | Novo Artigo")
	message.SetString(lang, "upload.heading", "Novo artigo")
	message.SetString(lang, "upload.title_label", "Título")
	message.SetString(lang, "upload.content_label", "Conteúdo HTML")
	message.SetString(lang, "upload.submit", "Publicar")

	// Edit page
	message.SetString(lang, "title.edit", "%s | Editar Artigo")
	message.SetString(lang, "edit.heading", "Editar artigo")
	message.SetString(lang, "edit.submit", "Salvar alterações")

	// Flash notices
	message.SetString(lang, "flash.logged_in", "Login efetuado.")
	message.SetString(lang, "flash.logged_out", "Você saiu da sua conta.")
	message.SetString(lang, "flash.article_published", "\"%s\" publicado.")
	message.SetString(lang, "flash.article_updated", "\"%s\" atualizado.")
	message.SetString(lang, "flash.article_deleted", "\"%s\" excluído.")

	// Error pages
	message.SetString(lang, "error.not_found_title", "Página não encontrada")
	message.SetString(lang, "error.not_found_body", "A página que você procura não existe.")
	message.SetString(lang, "error.internal_title", "Algo deu errado")
	message.SetString(lang, "error.internal_body", "Ocorreu um erro inesperado. Tente novamente.")
	message.SetString(lang, "error.back_home", "Voltar ao início")
}
