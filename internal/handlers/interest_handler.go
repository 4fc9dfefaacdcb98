package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lead-management-api/internal/models"
	"lead-management-api/internal/services"
)

// InterestHandler handles interest-related HTTP requests
type InterestHandler struct {
	interestService services.InterestService
}

// NewInterestHandler creates a new interest handler
func NewInterestHandler(interestService services.InterestService) *InterestHandler {
	return &InterestHandler{interestService: interestService}
}

// @Summary Create an interest
// @Description Attach an interest to an existing lead
// @Tags interest
// @Accept json
// @Produce json
// @Param interest body services.CreateInterestRequest true "Interest data"
// @Success 200 {object} models.ResponseBody
// @Failure 400 {object} models.ResponseBody
// @Failure 404 {object} models.ResponseBody
// @Router /interest/create [post]
func (h *InterestHandler) CreateInterest(c *gin.Context) {
	var req services.CreateInterestRequest
	if !bindJSON(c, &req) {
		return
	}

	interestID, err := h.interestService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, models.MsgCreateInterestFail)
		return
	}

	data := map[string]interface{}{"taskId": interestID}
	respond(c, models.NewResponse(data, http.StatusOK, models.MsgCreateInterestSuccess))
}

// @Summary Get an interest
// @Description Get an interest by its (interestId, leadId) composite key
// @Tags interest
// @Accept json
// @Produce json
// @Param leadId query string false "Lead ID (GET form)"
// @Param interestId query string false "Interest ID (GET form)"
// @Success 200 {object} models.ResponseBody
// @Failure 404 {object} models.ResponseBody
// @Router /interest [get]
func (h *InterestHandler) GetInterest(c *gin.Context) {
	var req services.GetInterestRequest
	if c.Request.Method == http.MethodGet {
		req.LeadID = c.Query("leadId")
		req.InterestID = c.Query("interestId")
	} else if !bindJSON(c, &req) {
		return
	}

	interest, err := h.interestService.Get(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, models.MsgGetInterestFail)
		return
	}

	respond(c, models.NewResponse(interest, http.StatusOK, models.MsgGetInterestSuccess))
}

// @Summary Update an interest
// @Description Rewrite an interest's message
// @Tags interest
// @Accept json
// @Produce json
// @Param interest body services.UpdateInterestRequest true "Updated interest data"
// @Success 200 {object} models.ResponseBody
// @Failure 400 {object} models.ResponseBody
// @Failure 404 {object} models.ResponseBody
// @Router /interest/update [post]
func (h *InterestHandler) UpdateInterest(c *gin.Context) {
	var req services.UpdateInterestRequest
	if !bindJSON(c, &req) {
		return
	}

	attrs, err := h.interestService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, models.MsgUpdateInterestFail)
		return
	}

	respond(c, models.NewResponse(attrs, http.StatusOK, models.MsgUpdateInterestSuccess))
}

// @Summary Delete an interest
// @Description Remove an interest by its composite key
// @Tags interest
// @Accept json
// @Produce json
// @Param interest body services.DeleteInterestRequest true "Interest to delete"
// @Success 200 {object} models.ResponseBody
// @Failure 404 {object} models.ResponseBody
// @Router /interest/delete [post]
func (h *InterestHandler) DeleteInterest(c *gin.Context) {
	var req services.DeleteInterestRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.interestService.Delete(c.Request.Context(), &req); err != nil {
		respondError(c, err, models.MsgDeleteInterestFail)
		return
	}

	respond(c, models.NewResponse(nil, http.StatusOK, models.MsgDeleteInterestSuccess))
}
