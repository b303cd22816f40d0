package berkas

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/atfromhome/goreus/pkg/cache"
)

// RouteInfo menyimpan informasi metadata tentang route yang terdaftar
type RouteInfo struct {
	Method string // HTTP method (GET, POST, dll)
	Path   string // URL path pattern
}

// Router adalah router HTTP di atas stdlib http.ServeMux dengan dukungan middleware.
type Router struct {
	mux           *http.ServeMux
	middleware    []MiddlewareFunc
	cachedHandler http.Handler
	initialized   bool
	lock          sync.RWMutex
	routes        []RouteInfo
	routeCache    *cache.InMemoryCache[string, []RouteInfo]
}

// NewRouter membuat instance router baru menggunakan stdlib http.ServeMux.
// Mendukung pencocokan pola Go 1.22+ (method pattern, path parameter).
//
// Mengembalikan:
//   - *Router: instance router yang siap digunakan
//
// Contoh:
//
//	router := NewRouter()
//	router.Post("/login", loginHandler)
//	http.ListenAndServe(":8080", router)
func NewRouter() *Router {
	return &Router{
		mux: http.NewServeMux(),
	}
}

// Use menambahkan middleware global yang akan diterapkan ke semua route.
// Middleware diterapkan dalam urutan penambahan dan sebelum middleware spesifik route.
// Thread-safe: dilindungi dengan mutex untuk akses konkuren.
//
// Contoh:
//
//	router.Use(RecoveryMiddleware(logger), LoggerMiddleware(logger))
func (r *Router) Use(middleware ...MiddlewareFunc) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.middleware = append(r.middleware, middleware...)
	// Invalidate cached handler
	r.cachedHandler = nil
	r.initialized = false
}

// Build membuild handler chain secara eksplisit.
// Disarankan dipanggil di main() sebelum StartServer agar request pertama
// tidak menanggung overhead locking.
func (r *Router) Build() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.cachedHandler = r.buildHandler()
	r.initialized = true

	if r.routeCache == nil {
		r.routeCache = cache.NewInMemoryCache[string, []RouteInfo](10, 5*time.Minute)
	}
	routesCopy := make([]RouteInfo, len(r.routes))
	copy(routesCopy, r.routes)
	r.routeCache.Set(context.Background(), "all_routes", routesCopy)
}

// Get mendaftarkan route GET dengan middleware spesifik route opsional.
func (r *Router) Get(path string, handler HandlerFunc, middleware ...MiddlewareFunc) {
	r.Register("GET", path, handler, middleware)
}

// Post mendaftarkan route POST dengan middleware spesifik route opsional.
func (r *Router) Post(path string, handler HandlerFunc, middleware ...MiddlewareFunc) {
	r.Register("POST", path, handler, middleware)
}

// Put mendaftarkan route PUT dengan middleware spesifik route opsional.
func (r *Router) Put(path string, handler HandlerFunc, middleware ...MiddlewareFunc) {
	r.Register("PUT", path, handler, middleware)
}

// Delete mendaftarkan route DELETE dengan middleware spesifik route opsional.
func (r *Router) Delete(path string, handler HandlerFunc, middleware ...MiddlewareFunc) {
	r.Register("DELETE", path, handler, middleware)
}

// Options mendaftarkan route OPTIONS dengan middleware spesifik route opsional.
func (r *Router) Options(path string, handler HandlerFunc, middleware ...MiddlewareFunc) {
	r.Register("OPTIONS", path, handler, middleware)
}

// Register mendaftarkan route dengan metode HTTP, path, handler, dan middleware opsional.
// Menggunakan stdlib http.ServeMux untuk pencocokan pola.
// Thread-safe: dilindungi dengan mutex untuk pendaftaran route konkuren.
//
// Contoh:
//
//	router.Register("GET", "/list", listHandler, nil)
func (r *Router) Register(method, path string, handler HandlerFunc, middleware []MiddlewareFunc) {
	r.lock.Lock()
	defer r.lock.Unlock()

	method = strings.ToUpper(method)
	pattern := method + " " + path

	// Wrap handler with route-specific middleware
	finalHandler := handler
	if len(middleware) > 0 {
		finalHandler = Chain(handler, middleware...)
	}

	r.mux.HandleFunc(pattern, finalHandler)

	r.routes = append(r.routes, RouteInfo{
		Method: method,
		Path:   path,
	})

	// Invalidate route cache
	if r.routeCache != nil {
		r.routeCache.Delete(context.Background(), "all_routes")
	}
}

// ServeHTTP mengimplementasikan antarmuka http.Handler.
// Menerapkan middleware global dan menggunakan cached handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Fast path tanpa lock jika Build sudah dipanggil
	if r.initialized {
		r.cachedHandler.ServeHTTP(w, req)
		return
	}

	r.lock.RLock()
	handler := r.cachedHandler
	r.lock.RUnlock()

	if handler == nil {
		r.lock.Lock()
		// Double-checked locking untuk memastikan tidak dibangun dua kali
		if r.cachedHandler == nil {
			r.cachedHandler = r.buildHandler()
		}
		handler = r.cachedHandler
		r.lock.Unlock()
	}

	handler.ServeHTTP(w, req)
}

// buildHandler membuat handler chain dengan middleware global
func (r *Router) buildHandler() http.Handler {
	base := HandlerFunc(r.mux.ServeHTTP)

	if len(r.middleware) > 0 {
		return Chain(base, r.middleware...)
	}
	return base
}

// GetRoutes mengembalikan semua route yang terdaftar dengan caching.
//
// Contoh:
//
//	for _, route := range router.GetRoutes() {
//	    fmt.Printf("%s %s\n", route.Method, route.Path)
//	}
func (r *Router) GetRoutes() []RouteInfo {
	r.lock.RLock()

	if r.routeCache != nil {
		if cached, found := r.routeCache.Get(context.Background(), "all_routes"); found {
			cachedCopy := make([]RouteInfo, len(cached))
			copy(cachedCopy, cached)
			r.lock.RUnlock()
			return cachedCopy
		}
	}
	r.lock.RUnlock()

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.routeCache == nil {
		r.routeCache = cache.NewInMemoryCache[string, []RouteInfo](10, 5*time.Minute)
	}

	routesCopy := make([]RouteInfo, len(r.routes))
	copy(routesCopy, r.routes)
	r.routeCache.Set(context.Background(), "all_routes", routesCopy)

	return routesCopy
}
