package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"lead-management-api/internal/config"
	"lead-management-api/internal/handlers"
	"lead-management-api/internal/middleware"
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

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromAPIGateway(event)

	// Every lead route sits behind the configured authorizer
	if err := middleware.AuthorizeHeaders(req.Headers, container.AuthService, &container.Config.Auth); err != nil {
		return lambda.Unauthorized().ToAPIGateway(), nil
	}

	leadHandler := handlers.NewLeadLambdaHandler(container.LeadService)

	// Route the request
	var resp *lambda.Response
	var err error

	switch {
	case req.Method == "POST" && req.Path == "/lead/create":
		resp, err = leadHandler.HandleCreate(ctx, req)
	case req.Path == "/lead" && (req.Method == "GET" || req.Method == "POST"):
		resp, err = leadHandler.HandleGet(ctx, req)
	case req.Method == "POST" && req.Path == "/lead/list":
		resp, err = leadHandler.HandleList(ctx, req)
	case req.Method == "POST" && req.Path == "/lead/update":
		resp, err = leadHandler.HandleUpdate(ctx, req)
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
