package routepath

import "testing"

func TestArticlePathEscapesSlug(t *testing.T) {
	if got := ArticlePath("my-first-post"); got != "/article/my-first-post" {
		t.Fatalf("ArticlePath = %q", got)
	}
	if got := ArticlePath("a b"); got != "/article/a%20b" {
		t.Fatalf("ArticlePath escaped = %q", got)
	}
}

func TestLoginPathWithNext(t *testing.T) {
	if got := LoginPathWithNext(""); got != "/login" {
		t.Fatalf("empty next = %q", got)
	}
	if got := LoginPathWithNext("/"); got != "/login" {
		t.Fatalf("root next = %q", got)
	}
	if got := LoginPathWithNext("/upload"); got != "/login?next=%2Fupload" {
		t.Fatalf("upload next = %q", got)
	}
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		name string
		next string
		want string
	}{
		{name: "empty", next: "", want: "/"},
		{name: "local path", next: "/upload", want: "/upload"},
		{name: "local with segments", next: "/edit/my-post", want: "/edit/my-post"},
		{name: "absolute url", next: "https://evil.example/", want: "/"},
		{name: "scheme relative", next: "//evil.example/x", want: "/"},
		{name: "relative path", next: "upload", want: "/"},
		{name: "unparseable", next: "::", want: "/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeNext(tc.next); got != tc.want {
				t.Fatalf("SafeNext(%q) = %q, want %q", tc.next, got, tc.want)
			}
		})
	}
}
