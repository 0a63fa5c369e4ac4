/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package envgate

// Environment variables consulted by the gate.
const (
	// Provider-selection flags, mutually exclusive, exact-match "1".
	EnvUseBedrock = "CLAUDE_CODE_USE_BEDROCK"
	EnvUseVertex  = "CLAUDE_CODE_USE_VERTEX"
	EnvUseFoundry = "CLAUDE_CODE_USE_FOUNDRY"

	// Direct-provider credentials.
	EnvAPIKey     = "ANTHROPIC_API_KEY"
	EnvOAuthToken = "CLAUDE_CODE_OAUTH_TOKEN"

	// Custom-provider override pair.
	EnvBaseURL   = "ANTHROPIC_BASE_URL"
	EnvAuthToken = "ANTHROPIC_AUTH_TOKEN"

	// AWS Bedrock.
	EnvAWSRegion          = "AWS_REGION"
	EnvAWSAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvAWSSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvAWSBearerToken     = "AWS_BEARER_TOKEN_BEDROCK"

	// Google Vertex AI.
	EnvVertexProjectID = "ANTHROPIC_VERTEX_PROJECT_ID"
	EnvCloudMLRegion   = "CLOUD_ML_REGION"

	// Microsoft Foundry. Resource name and base URL are alternatives.
	EnvFoundryResource = "ANTHROPIC_FOUNDRY_RESOURCE"
	EnvFoundryBaseURL  = "ANTHROPIC_FOUNDRY_BASE_URL"
)

// Provider identifies the backend inference service supplying model
// responses.
type Provider string

const (
	// ProviderDefault is the direct Anthropic API, or a custom
	// OpenAI-compatible endpoint when ANTHROPIC_BASE_URL is set.
	ProviderDefault Provider = "default"
	ProviderBedrock Provider = "bedrock"
	ProviderVertex  Provider = "vertex"
	ProviderFoundry Provider = "foundry"
)

// Detect classifies the active provider from the selection flags. When
// multiple flags are set the highest-priority one wins (Bedrock, then
// Vertex, then Foundry); Validate separately reports the conflict, but
// checks the same branch Detect returns.
func Detect(env Environ) Provider {
	switch {
	case env.Flag(EnvUseBedrock):
		return ProviderBedrock
	case env.Flag(EnvUseVertex):
		return ProviderVertex
	case env.Flag(EnvUseFoundry):
		return ProviderFoundry
	default:
		return ProviderDefault
	}
}
