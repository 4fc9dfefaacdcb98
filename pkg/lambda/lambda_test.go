package lambda

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"lead-management-api/internal/models"
)

// TestFromAPIGateway tests the event conversion round trip
func TestFromAPIGateway(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:            "POST",
		Path:                  "/lead/create",
		Headers:               map[string]string{"Authorization": "Bearer x"},
		QueryStringParameters: map[string]string{"leadId": "lead-1"},
		Body:                  `{"email":"jane@example.com"}`,
	}

	req := FromAPIGateway(event)
	if req.Method != "POST" || req.Path != "/lead/create" {
		t.Errorf("Unexpected method/path: %s %s", req.Method, req.Path)
	}
	if req.Headers["Authorization"] != "Bearer x" {
		t.Error("Expected headers to carry over")
	}
	if req.QueryParams["leadId"] != "lead-1" {
		t.Error("Expected query parameters to carry over")
	}
	if string(req.Body) != `{"email":"jane@example.com"}` {
		t.Error("Expected the body to carry over")
	}

	out := (&Response{StatusCode: 200, Headers: map[string]string{"X": "y"}, Body: []byte("ok")}).ToAPIGateway()
	if out.StatusCode != 200 || out.Body != "ok" || out.Headers["X"] != "y" {
		t.Errorf("Unexpected proxy response: %+v", out)
	}
}

// TestJSONEnvelope tests serializing the response envelope
func TestJSONEnvelope(t *testing.T) {
	resp, err := JSON(models.NewResponse(map[string]interface{}{"leadId": "lead-1"}, http.StatusOK, models.MsgCreateLeadSuccess))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Error("Expected a JSON content type")
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != models.StatusSuccess {
		t.Errorf("Expected status '%s', got '%v'", models.StatusSuccess, body["status"])
	}
}

// TestCannedResponses tests the fallback envelopes
func TestCannedResponses(t *testing.T) {
	for _, tc := range []struct {
		resp *Response
		code int
	}{
		{NotFound(), 404},
		{Unauthorized(), 401},
	} {
		if tc.resp.StatusCode != tc.code {
			t.Errorf("Expected status %d, got %d", tc.code, tc.resp.StatusCode)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(tc.resp.Body, &body); err != nil {
			t.Errorf("Canned body must be valid JSON: %v", err)
		}
	}
}
