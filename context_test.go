package berkas

import (
	"net/http/httptest"
	"testing"
)

func TestSetGetUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	user := &User{Username: "alice"}

	req = SetUser(req, user)

	got, ok := GetUser(req)
	if !ok {
		t.Fatalf("GetUser() ok = false, want true")
	}
	if got.Username != "alice" {
		t.Errorf("username = %q, want alice", got.Username)
	}
}

func TestGetUserMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	user, ok := GetUser(req)
	if ok || user != nil {
		t.Errorf("GetUser() = %v, %v, want nil, false", user, ok)
	}
}

func TestSetGetRequestID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	req = SetRequestID(req, "req-123")

	if got := GetRequestID(req); got != "req-123" {
		t.Errorf("GetRequestID() = %q, want req-123", got)
	}
}

func TestGetRequestIDMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	if got := GetRequestID(req); got != "" {
		t.Errorf("GetRequestID() = %q, want empty string", got)
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
		want   string
		ok     bool
	}{
		{"bare_token", "auth-token", "abc123", "abc123", true},
		{"bearer_prefix", "auth-token", "Bearer abc123", "abc123", true},
		{"missing_header", "auth-token", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.value != "" {
				req.Header.Set(tt.header, tt.value)
			}

			got, ok := ExtractToken(req, tt.header)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ExtractToken() = %q, %v, want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
