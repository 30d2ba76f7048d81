package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/storage"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// FilesHandler streams stored attachments.
type FilesHandler struct {
	objects storage.ObjectStore
}

// NewFilesHandler constructs handler.
func NewFilesHandler(objects storage.ObjectStore) *FilesHandler {
	return &FilesHandler{objects: objects}
}

// Serve GET /files/*.
func (h *FilesHandler) Serve(c *fiber.Ctx) error {
	key := strings.TrimPrefix(c.Params("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return apperrors.NewNotFound("File")
	}
	body, obj, err := h.objects.Get(c.UserContext(), key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return apperrors.NewNotFound("File")
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if obj.ContentType != "" {
		c.Set(fiber.HeaderContentType, obj.ContentType)
	}
	c.Set(fiber.HeaderContentDisposition, "inline")
	size := -1
	if obj.Size > 0 {
		size = int(obj.Size)
	}
	return c.SendStream(body, size)
}
