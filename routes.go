package berkas

import "fmt"

// NewAppRouter merakit seluruh aplikasi: stores, services, handlers,
// middleware chain global, dan route registration.
//
// Urutan global middleware: Recovery -> Logger -> CORS -> TokenFilter ->
// Authorize. TokenFilter memasang identitas jika token valid; Authorize
// menolak request tanpa identitas di luar permit list.
//
// Parameters:
//   - config: konfigurasi aplikasi
//   - db: Database yang sudah terkoneksi dan ter-migrate
//   - logger: Logger aplikasi
//
// Returns:
//   - *Router: router siap pakai (sudah di-Build)
//   - error: error jika secret key tidak valid
//
// Example:
//
//	router, err := NewAppRouter(config, db, logger)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	StartServer(ctx, config.Server, router)
func NewAppRouter(config *Config, db Database, logger *Logger) (*Router, error) {
	jwtHelper, err := NewJWTHelper(config.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to build jwt helper: %w", err)
	}

	userStore := NewDatabaseUserStore(db)
	fileStore := NewDatabaseFileStore(db)

	authService := NewAuthService(jwtHelper, userStore, config.Auth.HeaderName, logger)
	authHandler := NewAuthHandler(authService, config.Auth.HeaderName, logger)
	fileHandler := NewFileHandler(fileStore, logger)

	router := NewRouter()
	router.Use(
		Recovery(logger),
		LoggerMiddleware(logger),
		CORS(config.CORS),
		TokenFilter(jwtHelper, userStore, config.Auth.HeaderName),
		Authorize(config.Auth.PermitPaths),
	)

	RegisterRoutes(router, authHandler, fileHandler)

	router.Build()
	return router, nil
}

// RegisterRoutes mendaftarkan semua endpoint aplikasi ke router.
func RegisterRoutes(router *Router, authHandler *AuthHandler, fileHandler *FileHandler) {
	router.Post("/login", authHandler.Login)
	router.Post("/logout", authHandler.Logout)

	router.Post("/file", fileHandler.Upload)
	router.Get("/file", fileHandler.Download)
	router.Put("/file", fileHandler.Rename)
	router.Delete("/file", fileHandler.Delete)
	router.Get("/list", fileHandler.List)
}
