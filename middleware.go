package berkas

import "net/http"

// HandlerFunc is the standard HTTP handler function signature
type HandlerFunc func(http.ResponseWriter, *http.Request)

// MiddlewareFunc is a function that wraps a handler with middleware
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// Chain membungkus handler dengan multiple middleware functions secara beruntun.
// Middleware diterapkan dalam urutan maju (pertama di list dijalankan pertama).
// Contoh: Chain(handler, m1, m2, m3) menghasilkan execution order: m1 -> m2 -> m3 -> handler.
//
// Parameters:
//   - handler: HandlerFunc yang akan dibungkus dengan middleware
//   - middleware: variadic list dari MiddlewareFunc yang diterapkan berurutan
//
// Returns:
//   - HandlerFunc: handler baru dengan middleware chain diterapkan
//
// Example:
//
//	finalHandler := Chain(myHandler, RecoveryMiddleware(logger), LoggerMiddleware(logger))
func Chain(handler HandlerFunc, middleware ...MiddlewareFunc) HandlerFunc {
	// Apply middleware in reverse order so the first one in the slice is the outermost
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	return handler
}

// ChainMiddleware membuat MiddlewareFunc dari multiple middleware tanpa final handler.
// Berguna untuk membuat reusable middleware chain yang bisa diterapkan ke multiple routes.
//
// Parameters:
//   - middleware: variadic list dari MiddlewareFunc yang akan di-chain
//
// Returns:
//   - MiddlewareFunc: middleware function yang combine semua middleware
//
// Example:
//
//	authChain := ChainMiddleware(TokenFilter(...), Authorize(...))
func ChainMiddleware(middleware ...MiddlewareFunc) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return Chain(next, middleware...)
	}
}

// ToHandler mengkonversi HandlerFunc menjadi http.Handler interface.
func (h HandlerFunc) ToHandler() http.Handler {
	return http.HandlerFunc(h)
}

// ServeHTTP mengimplementasikan http.Handler interface untuk HandlerFunc.
func (h HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h(w, r)
}
