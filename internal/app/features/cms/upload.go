package cms

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/stratatour/internal/app/system/jsonutil"
	"github.com/dalemusser/stratatour/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadSize = 32 << 20 // 32MB

// imageTypes maps the accepted sniffed content types to the extension
// stored objects get. SVG is not accepted because it can carry script.
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadResult is the body of a successful upload.
type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Upload handles POST /upload: a multipart form with one image in the
// "file" field. The content type is sniffed from the bytes; the client's
// filename and declared type are ignored.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.images == nil {
		jsonutil.Error(w, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			jsonutil.Error(w, http.StatusRequestEntityTooLarge, "file too large (max 32MB)")
			return
		}
		jsonutil.BadRequest(w, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonutil.BadRequest(w, "file is required")
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		jsonutil.BadRequest(w, "could not read file")
		return
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := imageTypes[contentType]
	if !ok {
		jsonutil.Error(w, http.StatusUnsupportedMediaType, "only JPEG, PNG, GIF and WebP images are accepted")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.internal(w, r, "failed to read upload", err)
		return
	}

	// cms/YYYY/MM/<uuid><ext>
	now := time.Now().UTC()
	key := fmt.Sprintf("cms/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String(), ext)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Upload(), h.logger, "store upload")
	defer cancel()

	if err := h.images.Put(ctx, key, file, &storage.PutOptions{ContentType: contentType}); err != nil {
		h.internal(w, r, "failed to store image", err)
		return
	}
	h.auditLog.ImageUploaded(ctx, r, key, contentType, header.Size)
	h.logger.Info("image uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int64("size", header.Size))

	jsonutil.Created(w, UploadResult{
		URL:         h.images.URL(key),
		Key:         key,
		ContentType: contentType,
		Size:        header.Size,
	})
}
