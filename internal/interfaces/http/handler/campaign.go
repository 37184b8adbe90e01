package handler

import (
	catalogapp "github.com/dyqani/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CampaignHandler handles discount campaign endpoints
type CampaignHandler struct {
	BaseHandler
	campaignService *catalogapp.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService *catalogapp.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// ListRunning returns campaigns currently in their active window.
// This is the public storefront view.
func (h *CampaignHandler) ListRunning(c *gin.Context) {
	campaigns, err := h.campaignService.ListRunning(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, campaigns)
}

// List returns all campaigns for the admin panel
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.campaignService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, campaigns)
}

// Get returns a single campaign by ID
func (h *CampaignHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID format")
		return
	}

	campaign, err := h.campaignService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, campaign)
}

// Create creates a new discount campaign
func (h *CampaignHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	campaign, err := h.campaignService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, campaign)
}

// Update updates a campaign's price, window or active flag
func (h *CampaignHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID format")
		return
	}

	var req catalogapp.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	campaign, err := h.campaignService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, campaign)
}

// Delete removes a campaign
func (h *CampaignHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID format")
		return
	}

	if err := h.campaignService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
