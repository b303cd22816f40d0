package berkas

// AppError merepresentasikan error aplikasi yang dikirim ke client sebagai JSON.
// Bentuknya mengikuti kontrak API: {"code": 400, "message": "Error input data"}.
// Code sekaligus dipakai sebagai HTTP status saat error di-return ke client.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error mengimplementasikan error interface.
func (e *AppError) Error() string {
	return e.Message
}

// NewAppError membuat AppError baru dengan HTTP status code dan message.
//
// Example:
//
//	return NewAppError(400, "Error input data")
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Common error instances
var (
	ErrInputData = NewAppError(400, "Error input data")
	ErrServer    = NewAppError(500, "Server Error")
)

// IsAppError mengecek apakah error adalah AppError instance.
// Gunakan sebelum AsAppError untuk type assertion yang aman.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError mengkonversi error menjadi AppError jika possible.
// Returns nil dan false jika error bukan AppError type.
func AsAppError(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}
