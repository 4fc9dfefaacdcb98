package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lead-management-api/internal/models"
	"lead-management-api/internal/services"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService services.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// @Summary Create a lead
// @Description Create a lead with unique email and phone
// @Tags lead
// @Accept json
// @Produce json
// @Param lead body services.CreateLeadRequest true "Lead data"
// @Success 200 {object} models.ResponseBody
// @Failure 400 {object} models.ResponseBody
// @Failure 409 {object} models.ResponseBody
// @Router /lead/create [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req services.CreateLeadRequest
	if !bindJSON(c, &req) {
		return
	}

	leadID, err := h.leadService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, models.MsgCreateLeadFail)
		return
	}

	data := map[string]interface{}{"leadId": leadID}
	respond(c, models.NewResponse(data, http.StatusOK, models.MsgCreateLeadSuccess))
}

// @Summary Get a lead
// @Description Get a lead with its interests attached
// @Tags lead
// @Accept json
// @Produce json
// @Param leadId query string false "Lead ID (GET form)"
// @Success 200 {object} models.ResponseBody
// @Failure 404 {object} models.ResponseBody
// @Router /lead [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	var req services.GetLeadRequest
	if c.Request.Method == http.MethodGet {
		req.LeadID = c.Query("leadId")
	} else if !bindJSON(c, &req) {
		return
	}

	lead, err := h.leadService.Get(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, models.MsgGetLeadFail)
		return
	}

	respond(c, models.NewResponse(lead, http.StatusOK, models.MsgGetLeadSuccess))
}

// @Summary List leads
// @Description List every lead (full table scan)
// @Tags lead
// @Produce json
// @Success 200 {object} models.ResponseBody
// @Router /lead/list [post]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.leadService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, models.MsgListLeadFail)
		return
	}

	respond(c, models.NewResponse(leads, http.StatusOK, models.MsgListLeadSuccess))
}

// @Summary Update a lead
// @Description Update a lead's contact attributes
// @Tags lead
// @Accept json
// @Produce json
// @Param lead body services.UpdateLeadRequest true "Updated lead data"
// @Success 200 {object} models.ResponseBody
// @Failure 400 {object} models.ResponseBody
// @Failure 404 {object} models.ResponseBody
// @Router /lead/update [post]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var req services.UpdateLeadRequest
	if !bindJSON(c, &req) {
		return
	}

	attrs, err := h.leadService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, models.MsgUpdateLeadFail)
		return
	}

	respond(c, models.NewResponse(attrs, http.StatusOK, models.MsgUpdateLeadSuccess))
}
