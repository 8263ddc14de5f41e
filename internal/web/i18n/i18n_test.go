package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagDefaults(t *testing.T) {
	tag, persist := ResolveTag(httptest.NewRequest("GET", "/", nil))
	if tag != language.English || persist {
		t.Fatalf("ResolveTag = %v, %t", tag, persist)
	}
}

func TestResolveTagQueryParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/?lang=pt-BR", nil)
	tag, persist := ResolveTag(r)
	if tag.String() != "pt-BR" || !persist {
		t.Fatalf("ResolveTag = %v, %t", tag, persist)
	}

	r = httptest.NewRequest("GET", "/?lang=abcdefg", nil)
	tag, persist = ResolveTag(r)
	if tag != language.English || persist {
		t.Fatalf("unsupported lang: ResolveTag = %v, %t", tag, persist)
	}
}

func TestResolveTagCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "pt-BR"})
	tag, persist := ResolveTag(r)
	if tag.String() != "pt-BR" || persist {
		t.Fatalf("ResolveTag = %v, %t", tag, persist)
	}
}

func TestResolveTagAcceptLanguage(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")
	tag, _ := ResolveTag(r)
	if tag.String() != "pt-BR" {
		t.Fatalf("ResolveTag = %v", tag)
	}
}

func TestPrinterLocalizesCopy(t *testing.T) {
	got := Printer(language.MustParse("pt-BR")).Sprintf("home.empty")
	if got != "Nenhum artigo ainda." {
		t.Fatalf("Sprintf = %q", got)
	}
	got = Printer(language.English).Sprintf("home.empty")
	if got != "No articles yet." {
		t.Fatalf("Sprintf = %q", got)
	}
}
