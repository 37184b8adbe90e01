package handler

import (
	catalogapp "github.com/dyqani/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// BannerHandler handles homepage banner endpoints
type BannerHandler struct {
	BaseHandler
	bannerService *catalogapp.BannerService
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(bannerService *catalogapp.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// ListActive returns active banners in display order. Public endpoint.
func (h *BannerHandler) ListActive(c *gin.Context) {
	banners, err := h.bannerService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, banners)
}

// List returns all banners for the admin panel
func (h *BannerHandler) List(c *gin.Context) {
	banners, err := h.bannerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, banners)
}

// Get returns a single banner by ID
func (h *BannerHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid banner ID format")
		return
	}

	banner, err := h.bannerService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, banner)
}

// Create creates a new banner
func (h *BannerHandler) Create(c *gin.Context) {
	var req catalogapp.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	banner, err := h.bannerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, banner)
}

// Update updates a banner
func (h *BannerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid banner ID format")
		return
	}

	var req catalogapp.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	banner, err := h.bannerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, banner)
}

// Delete removes a banner
func (h *BannerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid banner ID format")
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
