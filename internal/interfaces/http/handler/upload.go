package handler

import (
	catalogapp "github.com/dyqani/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// UploadHandler handles presigned upload and download URLs for customer
// logos and banner images
type UploadHandler struct {
	BaseHandler
	uploadService *catalogapp.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *catalogapp.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// RequestUpload issues a presigned PUT URL for a new object
func (h *UploadHandler) RequestUpload(c *gin.Context) {
	var req catalogapp.RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.uploadService.RequestUpload(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// DownloadURL issues a presigned GET URL for an existing object
func (h *UploadHandler) DownloadURL(c *gin.Context) {
	key := c.Query("key")

	url, err := h.uploadService.DownloadURL(c.Request.Context(), key)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"url": url})
}

// Delete removes an uploaded object
func (h *UploadHandler) Delete(c *gin.Context) {
	key := c.Query("key")

	if err := h.uploadService.Delete(c.Request.Context(), key); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
