package handlers

import (
	"fmt"
	"log"
	"net/http"

	"portfolio-website/internal/storage"
)

// Upload accepts a single file under the "file" form field. Images are
// capped at 5MB, PDFs at 10MB; anything outside the MIME whitelist is
// rejected before the uploader is touched.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(storage.MaxPDFSize + 1024*1024); err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}

	_, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !storage.AllowedTypes[contentType] {
		writeError(w, http.StatusBadRequest, "Invalid file type. Only Images and PDFs are allowed.")
		return
	}

	maxSize := storage.MaxSizeFor(contentType)
	if header.Size > maxSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("File too large. Max %dMB", maxSize/(1024*1024)))
		return
	}

	url, err := h.Uploads.Save(header)
	if err != nil {
		log.Printf("handlers: saving upload: %v", err)
		writeError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
