package berkas

import (
	"context"
	"errors"
	"fmt"
)

// UserCreds is the login request body
type UserCreds struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login is the successful login response body
type Login struct {
	Token string `json:"auth-token"`
}

// LoginErrors adalah response body untuk login yang gagal.
// Email dan Password adalah daftar pesan yang independen; dalam praktiknya
// hanya satu list yang terisi per kegagalan, tapi bentuknya mendukung banyak.
type LoginErrors struct {
	Email    []string `json:"email"`
	Password []string `json:"password"`
}

// NewLoginErrors membuat LoginErrors kosong dengan list yang sudah diinisialisasi,
// supaya ter-serialize sebagai [] dan bukan null.
func NewLoginErrors() *LoginErrors {
	return &LoginErrors{
		Email:    []string{},
		Password: []string{},
	}
}

// AddEmailMsg menambahkan pesan error ke kategori email dan mengembalikan receiver
// untuk chaining.
func (e *LoginErrors) AddEmailMsg(msg string) *LoginErrors {
	e.Email = append(e.Email, msg)
	return e
}

// AddPasswordMsg menambahkan pesan error ke kategori password dan mengembalikan
// receiver untuk chaining.
func (e *LoginErrors) AddPasswordMsg(msg string) *LoginErrors {
	e.Password = append(e.Password, msg)
	return e
}

// AuthService orchestrates login and logout
type AuthService struct {
	jwtHelper  *JWTHelper
	userStore  UserStore
	headerName string
	logger     *Logger
}

// NewAuthService membuat auth service baru.
//
// Parameters:
//   - jwtHelper: JWTHelper untuk mint dan decode token
//   - userStore: UserStore untuk lookup dan persist user
//   - headerName: nama header pembawa token (untuk logout)
//   - logger: Logger untuk mencatat auth events
//
// Returns:
//   - *AuthService: auth service instance
//
// Example:
//
//	authService := NewAuthService(jwtHelper, userStore, config.Auth.HeaderName, logger)
func NewAuthService(jwtHelper *JWTHelper, userStore UserStore, headerName string, logger *Logger) *AuthService {
	return &AuthService{
		jwtHelper:  jwtHelper,
		userStore:  userStore,
		headerName: headerName,
		logger:     logger,
	}
}

// Login menjalankan state machine login: validasi input, lookup user,
// verifikasi password, mint token, persist token ke user record.
// Token baru menimpa token lama, jadi login kedua mencabut sesi pertama.
//
// Kegagalan input/kredensial dikembalikan sebagai *LoginErrors dengan pesan
// ber-kategori email atau password. Kegagalan infrastruktur (store, signing)
// dikembalikan sebagai error dan dipetakan ke 500 oleh handler.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - creds: UserCreds dari request body, nil jika body tidak bisa di-parse
//
// Returns:
//   - *Login: response sukses berisi token, nil jika gagal
//   - *LoginErrors: error ber-kategori jika kredensial ditolak, nil jika sukses
//   - error: error infrastruktur
//
// Example:
//
//	login, loginErrs, err := authService.Login(ctx, &creds)
func (s *AuthService) Login(ctx context.Context, creds *UserCreds) (*Login, *LoginErrors, error) {
	loginErrs := NewLoginErrors()

	if creds == nil {
		s.logger.Info("invalid credentials: nil")
		return nil, loginErrs.AddEmailMsg("Invalid credentials"), nil
	}

	if isBlank(creds.Login) {
		s.logger.Info("user email not provided")
		return nil, loginErrs.AddEmailMsg("Email required"), nil
	}

	if isBlank(creds.Password) {
		s.logger.Info("user password not provided")
		return nil, loginErrs.AddPasswordMsg("Password required"), nil
	}

	user, err := s.userStore.FindByUsername(ctx, creds.Login)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Info("incorrect email", "login", creds.Login)
			return nil, loginErrs.AddEmailMsg("Incorrect email"), nil
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := VerifyPassword(user.Password, creds.Password); err != nil {
		s.logger.Info("incorrect password", "login", creds.Login)
		return nil, loginErrs.AddPasswordMsg("Incorrect password"), nil
	}

	token, err := s.jwtHelper.CreateToken(user.Username, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create token: %w", err)
	}

	// Overwriting the stored token is the single-active-token revocation point.
	user.Token = token
	if err := s.userStore.Save(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to persist token: %w", err)
	}

	s.logger.Info("user authenticated", "login", creds.Login)
	return &Login{Token: token}, nil, nil
}

// Logout mencabut token user dengan menghapus token yang tersimpan.
// Idempotent: logout dengan token yang sudah tidak valid, hilang, atau
// sudah di-logout adalah no-op. Tidak pernah mengembalikan error ke caller.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - headerValue: nilai mentah dari header pembawa token
//
// Example:
//
//	authService.Logout(ctx, r.Header.Get(headerName))
func (s *AuthService) Logout(ctx context.Context, headerValue string) {
	token, ok := lastSegment(headerValue)
	if !ok {
		return
	}

	username, err := s.jwtHelper.ExtractUsername(token)
	if err != nil {
		return
	}

	user, err := s.userStore.FindByUsername(ctx, username)
	if err != nil {
		return
	}

	user.Token = ""
	if err := s.userStore.Save(ctx, user); err != nil {
		s.logger.Error("failed to clear token on logout", "username", username, "error", err)
		return
	}

	s.logger.Info("user logged out", "username", username)
}
