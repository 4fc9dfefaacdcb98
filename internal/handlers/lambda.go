package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"lead-management-api/internal/models"
	"lead-management-api/internal/services"
	"lead-management-api/pkg/lambda"
)

// The Lambda handlers mirror the gin handlers for serverless deployment:
// same pipelines, same envelopes, routed by the per-entity entrypoints
// under cmd/lambda.

// LeadLambdaHandler adapts the lead service to API Gateway invocations.
type LeadLambdaHandler struct {
	leadService services.LeadService
}

// NewLeadLambdaHandler creates a new lead lambda handler
func NewLeadLambdaHandler(leadService services.LeadService) *LeadLambdaHandler {
	return &LeadLambdaHandler{leadService: leadService}
}

// HandleCreate serves POST lead/create.
func (h *LeadLambdaHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var payload services.CreateLeadRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return lambda.JSON(models.NewResponse(nil, http.StatusBadRequest, models.MsgInvalidRequest))
	}

	leadID, err := h.leadService.Create(ctx, &payload)
	if err != nil {
		return lambda.JSON(errorEnvelope(err, models.MsgCreateLeadFail))
	}

	data := map[string]interface{}{"leadId": leadID}
	return lambda.JSON(models.NewResponse(data, http.StatusOK, models.MsgCreateLeadSuccess))
}

// HandleGet serves GET/POST lead.
func (h *LeadLambdaHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	payload := services.GetLeadRequest{LeadID: req.QueryParams["leadId"]}
	if payload.LeadID == "" && len(req.Body) > 0 {
		if err := json.Unmarshal(req.Body, &payload); err != nil {
			return lambda.JSON(models.NewResponse(nil, http.StatusBadRequest, models.MsgInvalidRequest))
		}
	}

	lead, err := h.leadService.Get(ctx, &payload)
	if err != nil {
		return lambda.JSON(errorEnvelope(err, models.MsgGetLeadFail))
	}
	return lambda.JSON(models.NewResponse(lead, http.StatusOK, models.MsgGetLeadSuccess))
}

// HandleList serves POST lead/list.
func (h *LeadLambdaHandler) HandleList(ctx context.Context, _ *lambda.Request) (*lambda.Response, error) {
	leads, err := h.leadService.List(ctx)
	if err != nil {
		return lambda.JSON(errorEnvelope(err, models.MsgListLeadFail))
	}
	return lambda.JSON(models.NewResponse(leads, http.StatusOK, models.MsgListLeadSuccess))
}

// HandleUpdate serves POST lead/update.
func (h *LeadLambdaHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var payload services.UpdateLeadRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return lambda.JSON(models.NewResponse(nil, http.StatusBadRequest, models.MsgInvalidRequest))
	}

	attrs, err := h.leadService.Update(ctx, &payload)
	if err != nil {
		return lambda.JSON(errorEnvelope(err, models.MsgUpdateLeadFail))
	}
	return lambda.JSON(models.NewResponse(attrs, http.StatusOK, models.MsgUpdateLeadSuccess))
}

// InterestLambdaHandler adapts the interest service to API Gateway invocations.
type InterestLambdaHandler struct {
	interestService services.InterestService
}

// NewInterestLambdaHandler creates a new interest lambda handler
func NewInterestLambdaHandler(interestService services.InterestService) *InterestLambdaHandler {
	return &InterestLambdaHandler{interestService: interestService}
}

// HandleCreate serves POST interest/create.
func (h *InterestLambdaHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var payload services.CreateInterestRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return lambda.JSON(models.NewResponse(nil, http.StatusBadRequest, models.MsgInvalidRequest))
	}

	interestID, err := h.interestService.Create(ctx, &payload)
	if err != nil {
		return lambda.JSON(errorEnvelope(err, models.MsgCreateInterestFail))
	}

	data := map[string]interface{}{"taskId": interestID}
	return lambda.JSON(models.NewResponse(data, http.StatusOK, models.MsgCreateInterestSuccess))
}

// HandleGet serves GET/POST interest.
func (h *InterestLambdaHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	payload := services.GetInterestRequest{
		LeadID:     req.QueryParams["leadId"],
		InterestID: req.QueryParams["interestId"],
	}
	if payload.InterestID == "" && len(req.Body) > 0 {
		if err := json.Unmarshal(req.Body, &payload); err != nil {
			return lambda.JSON(models.NewResponse(nil, http.StatusBadRequest, models.MsgInvalidRequest))
		}
	}

	interest, err := h.interestService.Get(ctx, &payload)
	if err != nil {
		return lambda.JSON(errorEnvelope(err, models.MsgGetInterestFail))
	}
	return lambda.JSON(models.NewResponse(interest, http.StatusOK, models.MsgGetInterestSuccess))
}

// HandleUpdate serves POST interest/update.
func (h *InterestLambdaHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var payload services.UpdateInterestRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return lambda.JSON(models.NewResponse(nil, http.StatusBadRequest, models.MsgInvalidRequest))
	}

	attrs, err := h.interestService.Update(ctx, &payload)
	if err != nil {
		return lambda.JSON(errorEnvelope(err, models.MsgUpdateInterestFail))
	}
	return lambda.JSON(models.NewResponse(attrs, http.StatusOK, models.MsgUpdateInterestSuccess))
}

// HandleDelete serves POST interest/delete.
func (h *InterestLambdaHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var payload services.DeleteInterestRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return lambda.JSON(models.NewResponse(nil, http.StatusBadRequest, models.MsgInvalidRequest))
	}

	if err := h.interestService.Delete(ctx, &payload); err != nil {
		return lambda.JSON(errorEnvelope(err, models.MsgDeleteInterestFail))
	}
	return lambda.JSON(models.NewResponse(nil, http.StatusOK, models.MsgDeleteInterestSuccess))
}

// FormLambdaHandler adapts the form service to API Gateway invocations.
type FormLambdaHandler struct {
	formService services.FormService
}

// NewFormLambdaHandler creates a new form lambda handler
func NewFormLambdaHandler(formService services.FormService) *FormLambdaHandler {
	return &FormLambdaHandler{formService: formService}
}

// HandleSubmit serves POST form/lead-form.
func (h *FormLambdaHandler) HandleSubmit(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var payload services.SubmitLeadFormRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return lambda.JSON(models.NewResponse(nil, http.StatusBadRequest, models.MsgInvalidRequest))
	}

	if err := h.formService.Submit(ctx, &payload); err != nil {
		return lambda.JSON(errorEnvelope(err, models.MsgLeadFormFail))
	}
	return lambda.JSON(models.NewResponse(nil, http.StatusOK, models.MsgLeadFormSuccess))
}
