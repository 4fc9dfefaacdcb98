package lambda

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"

	"lead-management-api/internal/models"
)

// FromAPIGateway converts an API Gateway proxy event to the generic request.
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
	}
}

// ToAPIGateway converts the generic response to an API Gateway proxy response.
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

// JSON serializes a response envelope into the generic response shape.
func JSON(resp *models.Response) (*Response, error) {
	body, err := json.Marshal(resp.Body())
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}

// NotFound is the fallback response for unrouted paths.
func NotFound() *Response {
	return &Response{
		StatusCode: 404,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"data":{},"message":"Not found","status":"bad request"}`),
	}
}

// Unauthorized is the response for requests rejected by the authorizer.
func Unauthorized() *Response {
	return &Response{
		StatusCode: 401,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"data":{},"message":"Invalid or missing credentials","status":"bad request"}`),
	}
}
