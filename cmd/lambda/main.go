// The lambda entrypoint serves every HTTP route of the catalog API behind
// API Gateway. The media routes are protected at the gateway by the token
// authorizer (cmd/authorizer), so no in-process auth middleware is mounted.
package main

import (
	"context"
	"log"

	"streaming-backend/internal/handlers"
	"streaming-backend/internal/repository/ddb"
	authService "streaming-backend/internal/service/auth"
	mediaService "streaming-backend/internal/service/media"
	"streaming-backend/pkg/auth"
	"streaming-backend/pkg/config"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"go.uber.org/zap"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(), awsConfig.WithRegion(cfg.Region))
	if err != nil {
		log.Fatalf("unable to load SDK config: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("failed to initialize token service: %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	users := ddb.NewUserRepository(dbClient, cfg.UsersTable)
	media := ddb.NewMediaRepository(dbClient, cfg.MediaTable)

	authHandler := handlers.NewAuthHandler(authService.NewService(users, tokens, logger), logger)
	mediaHandler := handlers.NewMediaHandler(mediaService.NewService(media, logger), logger)

	chiLambda = chiadapter.New(handlers.NewRouter(authHandler, mediaHandler))

	logger.Info("service initialized",
		zap.String("usersTable", cfg.UsersTable),
		zap.String("mediaTable", cfg.MediaTable),
	)
}

// Handler proxies API Gateway events into the chi router.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(Handler)
}
