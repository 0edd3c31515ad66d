package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePolicy(t *testing.T) {
	t.Run("WildcardExpansion", func(t *testing.T) {
		arn := "arn:aws:execute-api:us-east-1:123456789012:abcdef123/dev/GET/media"
		policy := GeneratePolicy("ana@example.com", EffectAllow, arn)

		assert.Equal(t, "ana@example.com", policy.PrincipalID)
		assert.Equal(t, "2012-10-17", policy.PolicyDocument.Version)
		require.Len(t, policy.PolicyDocument.Statement, 1)

		stmt := policy.PolicyDocument.Statement[0]
		assert.Equal(t, []string{"execute-api:Invoke"}, stmt.Action)
		assert.Equal(t, EffectAllow, stmt.Effect)
		assert.Equal(t, []string{"arn:aws:execute-api:us-east-1:123456789012:abcdef123/dev/*/*"}, stmt.Resource)
	})

	t.Run("ResourceIndependentOfPath", func(t *testing.T) {
		base := "arn:aws:execute-api:us-east-1:123456789012:abcdef123/dev"
		get := GeneratePolicy("ana@example.com", EffectAllow, base+"/GET/media/42")
		del := GeneratePolicy("ana@example.com", EffectAllow, base+"/DELETE/media")

		assert.Equal(t, get.PolicyDocument.Statement[0].Resource, del.PolicyDocument.Statement[0].Resource)
	})

	t.Run("DenyEffect", func(t *testing.T) {
		policy := GeneratePolicy("ana@example.com", EffectDeny, "arn/stage/GET/media")
		assert.Equal(t, EffectDeny, policy.PolicyDocument.Statement[0].Effect)
	})

	t.Run("ShortArn", func(t *testing.T) {
		policy := GeneratePolicy("ana@example.com", EffectAllow, "arn-without-stage")
		assert.Equal(t, []string{"arn-without-stage/*/*"}, policy.PolicyDocument.Statement[0].Resource)
	})
}
