package auth

import (
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Effect values understood by API Gateway policy documents.
const (
	EffectAllow = "Allow"
	EffectDeny  = "Deny"
)

// GeneratePolicy builds the IAM policy document API Gateway expects from a
// TOKEN authorizer. The grant is deliberately coarse: the method ARN is cut
// down to its API id and stage (the first two '/'-separated segments) and
// re-expanded with "/*/*" so a single verification covers every method and
// path under that stage.
//
// arn:aws:execute-api:us-east-1:123:abcdef/dev/GET/media -> .../abcdef/dev/*/*
func GeneratePolicy(principalID, effect, resourceArn string) events.APIGatewayCustomAuthorizerResponse {
	parts := strings.Split(resourceArn, "/")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	resource := strings.Join(parts, "/") + "/*/*"

	return events.APIGatewayCustomAuthorizerResponse{
		PrincipalID: principalID,
		PolicyDocument: events.APIGatewayCustomAuthorizerPolicy{
			Version: "2012-10-17",
			Statement: []events.IAMPolicyStatement{
				{
					Action:   []string{"execute-api:Invoke"},
					Effect:   effect,
					Resource: []string{resource},
				},
			},
		},
	}
}
