package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lead-management-api/internal/models"
	"lead-management-api/internal/services"
)

// FormHandler handles the public lead-capture form
type FormHandler struct {
	formService services.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formService services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// @Summary Submit the lead form
// @Description Public lead capture: reuses a lead matching the email or phone, otherwise creates one, then records the message as an interest
// @Tags forms
// @Accept json
// @Produce json
// @Param form body services.SubmitLeadFormRequest true "Form data"
// @Success 200 {object} models.ResponseBody
// @Failure 400 {object} models.ResponseBody
// @Router /form/lead-form [post]
func (h *FormHandler) SubmitLeadForm(c *gin.Context) {
	var req services.SubmitLeadFormRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.formService.Submit(c.Request.Context(), &req); err != nil {
		respondError(c, err, models.MsgLeadFormFail)
		return
	}

	respond(c, models.NewResponse(nil, http.StatusOK, models.MsgLeadFormSuccess))
}
