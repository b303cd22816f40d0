package berkas

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelInfo)

	var requestID string
	handler := LoggerMiddleware(logger)(func(w http.ResponseWriter, r *http.Request) {
		requestID = GetRequestID(r)
		w.WriteHeader(http.StatusOK)
	})

	handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/list", nil))

	if requestID == "" {
		t.Errorf("request ID not set in context")
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["request_id"] != requestID {
		t.Errorf("logged request_id = %v, want %s", entry["request_id"], requestID)
	}
	if entry["method"] != "GET" {
		t.Errorf("logged method = %v, want GET", entry["method"])
	}
	if entry["status"] != float64(200) {
		t.Errorf("logged status = %v, want 200", entry["status"])
	}
}

func TestLoggerMiddlewareStatusCode(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelInfo)

	handler := LoggerMiddleware(logger)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/list", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	var entry map[string]interface{}
	json.Unmarshal(buf.Bytes(), &entry)
	if entry["status"] != float64(401) {
		t.Errorf("logged status = %v, want 401", entry["status"])
	}
}

func TestLoggerMiddlewareDefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelInfo)

	handler := LoggerMiddleware(logger)(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/list", nil))

	var entry map[string]interface{}
	json.Unmarshal(buf.Bytes(), &entry)
	if entry["status"] != float64(200) {
		t.Errorf("logged status = %v, want 200 when handler never calls WriteHeader", entry["status"])
	}
}
