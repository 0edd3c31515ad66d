// Package authorizer implements the API Gateway TOKEN authorizer that
// guards the media routes.
package authorizer

import (
	"context"
	"errors"
	"strings"

	"streaming-backend/pkg/auth"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// ErrUnauthorized is the sentinel API Gateway maps to an HTTP 401. Any
// other error returned from the handler becomes a 500, which keeps
// configuration faults distinct from rejected requests.
var ErrUnauthorized = errors.New("Unauthorized")

// bearerPrefix is matched exactly: case sensitive, single space.
const bearerPrefix = "Bearer "

// Handler validates bearer tokens and produces gateway policy documents.
type Handler struct {
	tokens *auth.TokenService
	logger *zap.Logger
}

// NewHandler creates a new authorizer handler.
func NewHandler(tokens *auth.TokenService, logger *zap.Logger) *Handler {
	return &Handler{
		tokens: tokens,
		logger: logger,
	}
}

// Handle verifies the authorization token and returns an Allow policy for
// the whole API stage, or ErrUnauthorized. The reason a token is rejected
// (missing, malformed, expired, tampered, incomplete claims) is logged but
// never surfaced to the caller.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayCustomAuthorizerRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
	token, ok := strings.CutPrefix(event.AuthorizationToken, bearerPrefix)
	if !ok || token == "" {
		h.logger.Info("authorization token missing or malformed")
		return events.APIGatewayCustomAuthorizerResponse{}, ErrUnauthorized
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		h.logger.Info("token verification failed", zap.Error(err))
		return events.APIGatewayCustomAuthorizerResponse{}, ErrUnauthorized
	}

	return auth.GeneratePolicy(claims.Email, auth.EffectAllow, event.MethodArn), nil
}
