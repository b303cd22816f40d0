package berkas

import (
	"net/http"
)

// TokenFilter adalah middleware global yang mencoba membangun identitas
// terautentikasi dari token di header, sekali per request.
//
// Urutan langkah eksplisit, short-circuit pada kegagalan pertama:
//  1. Baca header yang dikonfigurasi; ambil segmen whitespace terakhir
//     (prefix skema seperti "Bearer" ditoleransi).
//  2. Cari user yang token tersimpannya sama persis dengan token yang
//     dibawa. Kecocokan stored-token adalah gerbang utama: token yang
//     sudah dicabut gagal di sini walaupun signature-nya masih valid.
//  3. Decode subject dari token.
//  4. Re-resolve user berdasarkan subject.
//  5. Validasi token terhadap username (subject cocok dan belum expired).
//  6. Pasang identitas ke request context.
//
// Setiap kegagalan jatuh ke unauthenticated dan request tetap diteruskan —
// tidak ada 401 di layer ini; penolakan adalah urusan Authorize.
//
// Parameters:
//   - jwtHelper: *JWTHelper untuk decode dan validasi token
//   - userStore: UserStore untuk lookup by token dan by username
//   - headerName: nama header pembawa token
//
// Returns:
//   - MiddlewareFunc: middleware function yang memasang identitas jika ada
//
// Example:
//
//	router.Use(TokenFilter(jwtHelper, userStore, config.Auth.HeaderName))
func TokenFilter(jwtHelper *JWTHelper, userStore UserStore, headerName string) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if user, ok := identify(r, jwtHelper, userStore, headerName); ok {
				r = SetUser(r, user)
			}

			next(w, r)
		}
	}
}

// identify menjalankan langkah-langkah autentikasi dan mengembalikan
// identitas jika semua langkah sukses, atau false jika ada yang gagal.
func identify(r *http.Request, jwtHelper *JWTHelper, userStore UserStore, headerName string) (*User, bool) {
	token, ok := ExtractToken(r, headerName)
	if !ok {
		return nil, false
	}

	if _, err := userStore.FindByToken(r.Context(), token); err != nil {
		return nil, false
	}

	username, err := jwtHelper.ExtractUsername(token)
	if err != nil {
		return nil, false
	}

	user, err := userStore.FindByUsername(r.Context(), username)
	if err != nil {
		return nil, false
	}

	if !jwtHelper.ValidateToken(token, user.Username) {
		return nil, false
	}

	return user, true
}

// Authorize adalah middleware yang menolak request tanpa identitas
// terautentikasi dengan 401, kecuali path-nya ada di permit list.
// Dipasang setelah TokenFilter dalam global chain.
//
// Parameters:
//   - permitPaths: daftar path yang bebas dari autentikasi (exact match)
//
// Returns:
//   - MiddlewareFunc: middleware function yang enforce autentikasi
//
// Example:
//
//	router.Use(Authorize(config.Auth.PermitPaths))
func Authorize(permitPaths []string) MiddlewareFunc {
	permitted := make(map[string]bool, len(permitPaths))
	for _, path := range permitPaths {
		permitted[path] = true
	}

	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if permitted[r.URL.Path] {
				next(w, r)
				return
			}

			if _, ok := GetUser(r); !ok {
				Unauthorized(w, "Unauthorized")
				return
			}

			next(w, r)
		}
	}
}
