package berkas

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTHelper handles JWT token operations
type JWTHelper struct {
	key           []byte
	tokenValidity time.Duration
}

// NewJWTHelper membuat JWT helper baru dari konfigurasi auth.
// Secret key di-decode dari base64 saat konstruksi, bukan saat signing,
// sehingga secret yang salah format langsung terdeteksi saat startup.
//
// Parameters:
//   - config: AuthConfig berisi secret key base64 dan token validity
//
// Returns:
//   - *JWTHelper: instance helper yang siap mint dan verify token
//   - error: error jika secret key bukan base64 yang valid
//
// Example:
//
//	helper, err := NewJWTHelper(config.Auth)
//	if err != nil {
//	  log.Fatal(err)
//	}
func NewJWTHelper(config AuthConfig) (*JWTHelper, error) {
	key, err := base64.StdEncoding.DecodeString(config.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode secret key: %w", err)
	}

	return &JWTHelper{
		key:           key,
		tokenValidity: config.TokenValidity,
	}, nil
}

// CreateToken membuat signed JWT token baru untuk username yang diberikan.
// Token berisi subject (username), issued-at, dan expiry sesuai token validity.
//
// Parameters:
//   - username: username pengguna yang menjadi subject token
//   - extraClaims: claims tambahan yang ingin disertakan (opsional)
//
// Returns:
//   - string: signed JWT token
//   - error: error jika gagal sign token
//
// Example:
//
//	token, err := helper.CreateToken("alice", nil)
func (h *JWTHelper) CreateToken(username string, extraClaims map[string]interface{}) (string, error) {
	now := time.Now()
	expiresAt := now.Add(h.tokenValidity)

	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	for k, v := range extraClaims {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ExtractUsername memverifikasi token dan mengembalikan username dari subject claim.
// Signature diverifikasi dulu sebelum claims dipercaya. Token expired juga ditolak.
//
// Parameters:
//   - tokenString: JWT token string yang akan diverifikasi
//
// Returns:
//   - string: username dari subject claim
//   - error: error jika token tidak valid, expired, atau signature tidak cocok
//
// Example:
//
//	username, err := helper.ExtractUsername(tokenString)
//	if err != nil {
//	  return err
//	}
func (h *JWTHelper) ExtractUsername(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return h.key, nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	return claims.Subject, nil
}

// ExtractExpiry mengembalikan waktu expiry dari token.
//
// Parameters:
//   - tokenString: JWT token string
//
// Returns:
//   - time.Time: waktu expiry dari token
//   - error: error jika token tidak valid atau tidak memiliki expiry
//
// Example:
//
//	expiry, err := helper.ExtractExpiry(tokenString)
func (h *JWTHelper) ExtractExpiry(tokenString string) (time.Time, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return h.key, nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return time.Time{}, fmt.Errorf("invalid token")
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token has no expiry")
	}

	return claims.ExpiresAt.Time, nil
}

// ValidateToken mengecek apakah token valid untuk user yang diberikan.
// Token dianggap valid jika subject cocok dengan username dan belum expired.
//
// Parameters:
//   - tokenString: JWT token string yang akan divalidasi
//   - username: username yang diharapkan sebagai subject token
//
// Returns:
//   - bool: true jika token milik user tersebut dan belum expired
//
// Example:
//
//	if helper.ValidateToken(tokenString, user.Username) {
//	  // token valid
//	}
func (h *JWTHelper) ValidateToken(tokenString string, username string) bool {
	subject, err := h.ExtractUsername(tokenString)
	if err != nil {
		return false
	}

	return subject == username
}
