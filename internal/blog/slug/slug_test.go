package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "mixed punctuation", title: "Hello, World! 2024", want: "hello-world-2024"},
		{name: "whitespace only", title: "   ", want: ""},
		{name: "already slug", title: "hello-world-2024", want: "hello-world-2024"},
		{name: "uppercase", title: "My First Post", want: "my-first-post"},
		{name: "underscores kept", title: "snake_case title", want: "snake_case-title"},
		{name: "unicode stripped", title: "Café au Lait", want: "caf-au-lait"},
		{name: "interior spaces", title: "  a  b  ", want: "a--b"},
		{name: "symbols only", title: "!!!???", want: ""},
		{name: "empty", title: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Make(tc.title); got != tc.want {
				t.Fatalf("Make(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestMakeStableOnOwnOutput(t *testing.T) {
	titles := []string{"Hello, World! 2024", "My First Post", "snake_case title", "a - b_c 9"}
	for _, title := range titles {
		once := Make(title)
		if twice := Make(once); twice != once {
			t.Fatalf("Make not stable on slug form: Make(%q) = %q", once, twice)
		}
	}
}
