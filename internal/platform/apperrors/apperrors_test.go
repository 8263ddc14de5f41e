package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindUnknown, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(E(tc.kind, "boom")); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusFallsBackForPlainErrors(t *testing.T) {
	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(plain) = %d, want 500", got)
	}
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want 200", got)
	}
}

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("create: %w", E(KindConflict, "slug taken"))
	if !errors.Is(err, E(KindConflict, "")) {
		t.Fatal("expected conflict kind to match through wrapping")
	}
	if errors.Is(err, E(KindNotFound, "")) {
		t.Fatal("did not expect not_found kind to match")
	}
}

func TestMetadataSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("update: %w", WithMetadata(KindConflict, "slug taken", map[string]string{"Title": "Hello"}))
	md := Metadata(err)
	if md["Title"] != "Hello" {
		t.Fatalf("Metadata = %v, want Title=Hello", md)
	}
}

func TestPublicMessagePrefersTypedMessage(t *testing.T) {
	if got := PublicMessage(E(KindInvalidInput, "title is required")); got != "title is required" {
		t.Fatalf("PublicMessage = %q", got)
	}
	if got := PublicMessage(errors.New("pq: connection reset")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(plain) = %q, want status text", got)
	}
}

func TestUnwrapReturnsCause(t *testing.T) {
	cause := errors.New("disk gone")
	err := Wrap(KindUnavailable, "storage failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable via errors.Is")
	}
}
