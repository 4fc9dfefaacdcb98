package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"lead-management-api/internal/config"
	"lead-management-api/internal/handlers"
	"lead-management-api/pkg/lambda"
	"lead-management-api/pkg/server"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

// The lead form is public: no authorizer, throttling is left to the
// API Gateway stage in front of this function.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromAPIGateway(event)

	formHandler := handlers.NewFormLambdaHandler(container.FormService)

	var resp *lambda.Response
	var err error

	switch {
	case req.Method == "POST" && req.Path == "/form/lead-form":
		resp, err = formHandler.HandleSubmit(ctx, req)
	default:
		resp = lambda.NotFound()
	}

	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	return resp.ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
