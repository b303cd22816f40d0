package berkas

import (
	"encoding/json"
	"net/http"
)

// Json menulis JSON response dengan status code dan data yang diberikan.
// Content-Type header otomatis di-set ke "application/json".
//
// Example:
//
//	Json(w, 200, Login{Token: token})
func Json(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

// JsonAppError menulis AppError sebagai JSON response.
// Status code HTTP diambil dari field Code.
//
// Example:
//
//	JsonAppError(w, ErrInputData)
func JsonAppError(w http.ResponseWriter, appErr *AppError) error {
	return Json(w, appErr.Code, appErr)
}

// OK menulis 200 OK response dengan data.
func OK(w http.ResponseWriter, data interface{}) error {
	return Json(w, http.StatusOK, data)
}

// OKEmpty menulis 200 OK response tanpa body.
// Dipakai oleh endpoint yang hanya melaporkan keberhasilan (rename, delete, upload, logout).
func OKEmpty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

// BadRequest menulis 400 Bad Request response dengan body JSON yang diberikan.
// Body biasanya LoginErrors atau AppError tergantung endpoint.
func BadRequest(w http.ResponseWriter, data interface{}) error {
	return Json(w, http.StatusBadRequest, data)
}

// Unauthorized menulis 401 Unauthorized error response.
func Unauthorized(w http.ResponseWriter, message string) error {
	return Json(w, http.StatusUnauthorized, NewAppError(http.StatusUnauthorized, message))
}

// InternalServerError menulis 500 Internal Server Error response.
// Jangan expose detailed error information ke client untuk security.
func InternalServerError(w http.ResponseWriter, message string) error {
	return Json(w, http.StatusInternalServerError, NewAppError(http.StatusInternalServerError, message))
}
