package requestmeta

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPSDirectTLS(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if IsHTTPS(r) {
		t.Fatal("plain request reported as HTTPS")
	}
	r.TLS = &tls.ConnectionState{}
	if !IsHTTPS(r) {
		t.Fatal("TLS request not reported as HTTPS")
	}
}

func TestForwardedProtoRequiresPolicy(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")

	if IsHTTPS(r) {
		t.Fatal("forwarded proto trusted without policy")
	}
	if !IsHTTPSWithPolicy(r, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("forwarded proto ignored with policy enabled")
	}
}
