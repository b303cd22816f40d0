package berkas

import (
	"context"
	"net/http"
)

// Context keys
type contextKey string

const (
	userKey      contextKey = "user"
	requestIDKey contextKey = "request_id"
)

// SetUser menyimpan identitas terautentikasi ke dalam request context.
// Identitas hanya hidup selama request berjalan; tidak ada state global
// ataupun session server-side (model sesi stateless).
//
// Example:
//
//	req = SetUser(req, user)
//	user, ok := GetUser(req)
func SetUser(r *http.Request, user *User) *http.Request {
	ctx := context.WithValue(r.Context(), userKey, user)
	return r.WithContext(ctx)
}

// GetUser mengambil identitas terautentikasi dari request context.
// Returns nil user dan false jika request berjalan tanpa autentikasi.
func GetUser(r *http.Request) (*User, bool) {
	user, ok := r.Context().Value(userKey).(*User)
	return user, ok
}

// SetRequestID menyimpan unique request ID ke dalam context.
// Biasanya di-set oleh logger middleware di awal request processing.
func SetRequestID(r *http.Request, requestID string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, requestID)
	return r.WithContext(ctx)
}

// GetRequestID mengambil request ID dari context.
// Returns empty string jika request ID tidak ditemukan.
func GetRequestID(r *http.Request) string {
	if requestID, ok := r.Context().Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// ExtractToken mengekstrak token dari header dengan nama yang dikonfigurasi.
// Nilai header dipecah pada whitespace dan segmen terakhir yang diambil,
// sehingga prefix skema seperti "Bearer <token>" tetap diterima.
// Returns empty string dan false jika header tidak ada atau kosong.
//
// Example:
//
//	token, ok := ExtractToken(req, "auth-token")
func ExtractToken(r *http.Request, header string) (string, bool) {
	return lastSegment(r.Header.Get(header))
}
