package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lead-management-api/internal/models"
	"lead-management-api/internal/services"
)

// errorEnvelope classifies a pipeline failure into the error envelope.
// Validation failures carry the per-field violation map, conflicts map to
// 409, missing references to 404; anything else becomes a fixed-message
// 500 so no internal detail reaches the caller.
func errorEnvelope(err error, fallback string) *models.Response {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		data := map[string]interface{}{"validation": ve.Violations}
		return models.NewResponse(data, http.StatusBadRequest, models.MsgValidationFailed)
	}

	var ce *services.ConflictError
	if errors.As(err, &ce) {
		return models.NewResponse(nil, http.StatusConflict, ce.Message)
	}

	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		data := map[string]interface{}{"id": nf.ID}
		return models.NewResponse(data, http.StatusNotFound, models.MsgItemNotFound)
	}

	logrus.WithError(err).Error("Request failed")
	return models.NewResponse(nil, http.StatusInternalServerError, fallback)
}

// respond serializes an envelope onto the gin response.
func respond(c *gin.Context, resp *models.Response) {
	c.JSON(resp.StatusCode, resp.Body())
}

// respondError classifies err and serializes the error envelope.
func respondError(c *gin.Context, err error, fallback string) {
	respond(c, errorEnvelope(err, fallback))
}

// bindJSON parses the request body into dst. A malformed body is reported
// as the invalid-request envelope and false is returned.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respond(c, models.NewResponse(nil, http.StatusBadRequest, models.MsgInvalidRequest))
		return false
	}
	return true
}
