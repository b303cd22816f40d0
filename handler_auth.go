package berkas

import (
	"encoding/json"
	"net/http"
)

// AuthHandler exposes the login and logout endpoints
type AuthHandler struct {
	authService *AuthService
	headerName  string
	logger      *Logger
}

// NewAuthHandler membuat auth handler baru.
//
// Parameters:
//   - authService: *AuthService untuk login/logout
//   - headerName: nama header pembawa token
//   - logger: Logger untuk mencatat handler errors
//
// Returns:
//   - *AuthHandler: handler instance
//
// Example:
//
//	authHandler := NewAuthHandler(authService, config.Auth.HeaderName, logger)
//	router.Post("/login", authHandler.Login)
func NewAuthHandler(authService *AuthService, headerName string, logger *Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		headerName:  headerName,
		logger:      logger,
	}
}

// Login menangani POST /login.
// Body yang tidak bisa di-parse diperlakukan sebagai kredensial nil, yang oleh
// AuthService dipetakan ke error "Invalid credentials" ber-kategori email.
//
// Responses:
//   - 200 {"auth-token": "..."} pada sukses
//   - 400 {"email": [...], "password": [...]} pada kredensial ditolak
//   - 500 {"code": 500, "message": "Server Error"} pada kegagalan infrastruktur
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds *UserCreds
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		creds = nil
	}

	login, loginErrs, err := h.authService.Login(r.Context(), creds)
	if err != nil {
		h.logger.Error("login failed", "error", err)
		JsonAppError(w, ErrServer)
		return
	}

	if loginErrs != nil {
		BadRequest(w, loginErrs)
		return
	}

	OK(w, login)
}

// Logout menangani POST /logout.
// Selalu 200, apapun isi (atau ketiadaan) header token — logout idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(r.Context(), r.Header.Get(h.headerName))
	OKEmpty(w)
}
