package berkas

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
)

// maxUploadMemory adalah batas memory untuk parsing multipart form (32 MB)
const maxUploadMemory = 32 << 20

// NewFilename is the rename request body
type NewFilename struct {
	Filename string `json:"filename"`
}

// FileHandler exposes the file CRUD endpoints
type FileHandler struct {
	fileStore FileStore
	logger    *Logger
}

// NewFileHandler membuat file handler baru.
//
// Parameters:
//   - fileStore: FileStore untuk operasi file
//   - logger: Logger untuk mencatat handler events
//
// Returns:
//   - *FileHandler: handler instance
//
// Example:
//
//	fileHandler := NewFileHandler(fileStore, logger)
//	router.Get("/list", fileHandler.List)
func NewFileHandler(fileStore FileStore, logger *Logger) *FileHandler {
	return &FileHandler{
		fileStore: fileStore,
		logger:    logger,
	}
}

// Upload menangani POST /file?filename= dengan multipart field "file".
// Metadata dan isi file disimpan terpisah. Nama file boleh duplikat.
//
// Responses:
//   - 200 tanpa body pada sukses
//   - 400 {"code":400,"message":"Error input data"} pada input tidak valid
//     atau kegagalan penyimpanan
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if isBlank(filename) {
		h.logger.Error("file has no name")
		JsonAppError(w, ErrInputData)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.logger.Error("failed to parse multipart form", "filename", filename, "error", err)
		JsonAppError(w, ErrInputData)
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Error("multipart file field missing", "filename", filename, "error", err)
		JsonAppError(w, ErrInputData)
		return
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		h.logger.Error("failed to read upload", "filename", filename, "error", err)
		JsonAppError(w, ErrInputData)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = DetectContentType(filename)
	}

	file := &File{
		Name:        filename,
		ContentType: contentType,
		Size:        int64(len(content)),
	}

	if err := h.fileStore.Save(r.Context(), file); err != nil {
		h.logger.Error("file cannot be saved", "filename", filename, "error", err)
		JsonAppError(w, ErrInputData)
		return
	}

	if err := h.fileStore.SaveContent(r.Context(), file.ID, content); err != nil {
		h.logger.Error("file content cannot be saved", "filename", filename, "error", err)
		JsonAppError(w, ErrInputData)
		return
	}

	h.logger.Info("file created", "filename", filename, "size", file.Size)
	OKEmpty(w)
}

// Download menangani GET /file?filename=.
// Mengirim isi file dengan Content-Type yang tersimpan.
//
// Responses:
//   - 200 dengan isi file pada sukses
//   - 400 pada filename kosong
//   - 500 jika file tidak ditemukan atau tidak punya content
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if isBlank(filename) {
		h.logger.Error("nameless file requested")
		JsonAppError(w, ErrInputData)
		return
	}

	file, err := h.fileStore.FindByName(r.Context(), filename)
	if err != nil {
		h.logger.Error("no file found", "filename", filename)
		JsonAppError(w, ErrServer)
		return
	}

	content, err := h.fileStore.FindContent(r.Context(), file.ID)
	if err != nil {
		h.logger.Error("file has no content", "filename", filename)
		JsonAppError(w, ErrServer)
		return
	}

	h.logger.Info("file sent", "filename", filename)
	w.Header().Set("Content-Type", file.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

// Rename menangani PUT /file?filename= dengan body {"filename": "<baru>"}.
// Hanya satu file (yang tertua dengan nama tersebut) yang di-rename.
//
// Responses:
//   - 200 tanpa body pada sukses
//   - 400 pada nama kosong atau file tidak ditemukan
//   - 500 pada kegagalan penyimpanan
func (h *FileHandler) Rename(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")

	var newFilename NewFilename
	if err := json.NewDecoder(r.Body).Decode(&newFilename); err != nil {
		h.logger.Error("error renaming file", "filename", filename, "error", err)
		JsonAppError(w, ErrInputData)
		return
	}

	if isBlank(filename) || isBlank(newFilename.Filename) {
		h.logger.Error("error renaming file", "filename", filename)
		JsonAppError(w, ErrInputData)
		return
	}

	file, err := h.fileStore.FindByName(r.Context(), filename)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.logger.Error("cannot rename missing file", "filename", filename)
			JsonAppError(w, ErrInputData)
			return
		}
		h.logger.Error("error renaming file", "filename", filename, "error", err)
		JsonAppError(w, ErrServer)
		return
	}

	if err := h.fileStore.Rename(r.Context(), file.ID, newFilename.Filename); err != nil {
		h.logger.Error("error renaming file", "filename", filename, "error", err)
		JsonAppError(w, ErrServer)
		return
	}

	h.logger.Info("file renamed", "filename", filename, "new_filename", newFilename.Filename)
	OKEmpty(w)
}

// Delete menangani DELETE /file?filename=.
// Semua file dengan nama yang sama dihapus beserta isinya.
// Menghapus nama yang tidak ada bukan error.
//
// Responses:
//   - 200 tanpa body pada sukses
//   - 400 pada filename kosong
//   - 500 pada kegagalan penyimpanan
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if isBlank(filename) {
		h.logger.Error("file has no name")
		JsonAppError(w, ErrInputData)
		return
	}

	count, err := h.fileStore.DeleteByName(r.Context(), filename)
	if err != nil {
		h.logger.Error("error while deleting file", "filename", filename, "error", err)
		JsonAppError(w, ErrServer)
		return
	}

	h.logger.Info("file has been deleted", "filename", filename, "count", count)
	OKEmpty(w)
}

// List menangani GET /list?limit=.
// Tanpa limit mengembalikan semua file; dengan limit mengembalikan sebanyak
// limit file terurut by name ascending.
//
// Responses:
//   - 200 dengan JSON array metadata file
//   - 400 pada limit yang bukan angka
//   - 500 pada kegagalan penyimpanan
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.logger.Error("invalid list limit", "limit", raw)
			JsonAppError(w, ErrInputData)
			return
		}
		limit = parsed
	}

	files, err := h.fileStore.FindAll(r.Context(), limit)
	if err != nil {
		h.logger.Error("error getting file list", "limit", limit, "error", err)
		JsonAppError(w, ErrServer)
		return
	}

	h.logger.Info("file list sent", "count", len(files))
	OK(w, files)
}
