// The api entrypoint runs the catalog API as a plain HTTP server for local
// development. The gateway token authorizer is replaced by an in-process
// JWT middleware on the media routes; everything else is identical to the
// Lambda deployment.
package main

import (
	"context"
	"log"
	"net/http"

	"streaming-backend/internal/handlers"
	"streaming-backend/internal/middleware"
	"streaming-backend/internal/repository/ddb"
	authService "streaming-backend/internal/service/auth"
	mediaService "streaming-backend/internal/service/media"
	"streaming-backend/pkg/auth"
	"streaming-backend/pkg/config"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(), awsConfig.WithRegion(cfg.Region))
	if err != nil {
		logger.Fatal("unable to load SDK config", zap.Error(err))
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Fatal("failed to initialize token service", zap.Error(err))
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	users := ddb.NewUserRepository(dbClient, cfg.UsersTable)
	media := ddb.NewMediaRepository(dbClient, cfg.MediaTable)

	authHandler := handlers.NewAuthHandler(authService.NewService(users, tokens, logger), logger)
	mediaHandler := handlers.NewMediaHandler(mediaService.NewService(media, logger), logger)

	router := handlers.NewRouter(authHandler, mediaHandler, middleware.Authenticate(tokens, logger))

	logger.Info("listening", zap.String("address", cfg.ServerAddress))
	if err := http.ListenAndServe(cfg.ServerAddress, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
