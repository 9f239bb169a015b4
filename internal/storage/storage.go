// Package storage stores uploaded files, either on local disk under
// the public uploads directory or in a remote blob store when a write
// token is configured.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	MaxImageSize = 5 * 1024 * 1024
	MaxPDFSize   = 10 * 1024 * 1024
)

// AllowedTypes is the MIME whitelist for uploads.
var AllowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// MaxSizeFor returns the size cap for a MIME type: 5MB for images,
// 10MB for everything else on the whitelist (PDFs).
func MaxSizeFor(contentType string) int64 {
	if strings.HasPrefix(contentType, "image/") {
		return MaxImageSize
	}
	return MaxPDFSize
}

type Uploader struct {
	dir       string
	blobURL   string
	blobToken string
	http      *http.Client
}

func NewUploader(dir, blobURL, blobToken string) *Uploader {
	return &Uploader{
		dir:       dir,
		blobURL:   blobURL,
		blobToken: blobToken,
		http:      http.DefaultClient,
	}
}

// Save stores the file and returns its public URL. With a blob token
// configured the file goes to the blob store and provider errors
// propagate; otherwise it lands on local disk, which does not survive
// redeploys on ephemeral hosts but works for local dev and VPS use.
func (u *Uploader) Save(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("storage: opening upload: %w", err)
	}
	defer file.Close()

	if u.blobToken != "" {
		return u.saveBlob(fileHeader.Filename, file)
	}
	return u.saveLocal(fileHeader.Filename, file)
}

func (u *Uploader) saveLocal(filename string, file io.Reader) (string, error) {
	if err := os.MkdirAll(u.dir, 0755); err != nil {
		return "", fmt.Errorf("storage: creating upload dir: %w", err)
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	unique := fmt.Sprintf("%s-%d-%d%s", base, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	dst, err := os.Create(filepath.Join(u.dir, unique))
	if err != nil {
		return "", fmt.Errorf("storage: creating file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("storage: writing file: %w", err)
	}
	return "/uploads/" + unique, nil
}

func (u *Uploader) saveBlob(filename string, file io.Reader) (string, error) {
	req, err := http.NewRequest(http.MethodPut, u.blobURL+"/"+filename, file)
	if err != nil {
		return "", fmt.Errorf("storage: building blob request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+u.blobToken)
	req.Header.Set("X-Add-Random-Suffix", "1")

	resp, err := u.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: uploading to blob store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("storage: blob store returned %d: %s", resp.StatusCode, detail)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("storage: decoding blob response: %w", err)
	}
	return result.URL, nil
}
