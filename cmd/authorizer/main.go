// The authorizer entrypoint runs as an API Gateway TOKEN authorizer in
// front of the media routes. A missing signing secret aborts the cold
// start, which the gateway reports as a server fault rather than a 401.
package main

import (
	"log"

	"streaming-backend/internal/authorizer"
	"streaming-backend/pkg/auth"
	"streaming-backend/pkg/config"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var handler *authorizer.Handler

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	cfg, err := config.NewAuthorizer()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("failed to initialize token service: %v", err)
	}

	handler = authorizer.NewHandler(tokens, logger)
}

func main() {
	lambda.Start(handler.Handle)
}
