package handler

import (
	"github.com/labstack/echo/v4"

	"campusvoice/internal/infrastructure/storage"
	"campusvoice/pkg/errors"
	"campusvoice/pkg/response"
)

var uploadHandler *UploadHandler

// UploadHandler accepts complaint attachments and returns opaque URL
// references; complaints never carry file content, only these references.
type UploadHandler struct {
	storageClient *storage.CloudStorageClient
}

func SetupUploadHandler(storageClient *storage.CloudStorageClient) {
	uploadHandler = &UploadHandler{storageClient: storageClient}
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

var mediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var voiceTypes = map[string]bool{
	"audio/webm": true,
	"audio/mpeg": true,
	"audio/mp4":  true,
	"audio/ogg":  true,
	"audio/wav":  true,
}

func (h *UploadHandler) Upload(c echo.Context) error {
	kind := c.FormValue("kind")
	if kind == "" {
		kind = "media"
	}
	if kind != "media" && kind != "voice" {
		return response.Error(c, errors.BadRequest("Unexpected upload kind", nil))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}
	// 10MB per file, matching the submission form limit.
	if fileHeader.Size > 10*1024*1024 {
		return response.Error(c, errors.BadRequest("File exceeds the 10MB limit", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if kind == "media" && !mediaTypes[contentType] {
		return response.Error(c, errors.BadRequest("Invalid media file type", nil))
	}
	if kind == "voice" && !voiceTypes[contentType] {
		return response.Error(c, errors.BadRequest("Invalid audio type", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadAttachment(c.Request().Context(), src, contentType, kind)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store attachment", err))
	}

	return response.Created(c, map[string]string{"url": url})
}
