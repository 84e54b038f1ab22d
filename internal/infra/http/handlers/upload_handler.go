package handlers

import (
	"net/http"

	"github.com/casemark/lead-intake/internal/infra/upload"
)

type UploadHandler struct {
	Store *upload.Store
}

func NewUploadHandler(store *upload.Store) *UploadHandler {
	return &UploadHandler{Store: store}
}

// HandleResume (POST /leads/resume) accepts one multipart "resume" file,
// pdf/doc/docx up to 5 MB, and returns the URL to submit with the lead.
func (h *UploadHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxFileSize)

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "A resume file is required and must not exceed 5 MB")
		return
	}
	defer file.Close()

	if !upload.AllowedFile(header.Filename) {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_FILE_TYPE", "Resume must be a PDF or Word document")
		return
	}

	url, err := h.Store.Save(header.Filename, file)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store resume")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
