/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package clientopts

import (
	"context"
	"fmt"

	"chainguard.dev/agentgate/envgate"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/vertex"
)

// Options returns the Anthropic SDK request options for the provider
// selected in env. The environment is assumed to have passed
// envgate.Validate; Options does not re-check credential completeness.
func Options(ctx context.Context, env envgate.Environ) ([]option.RequestOption, error) {
	switch p := envgate.Detect(env); p {
	case envgate.ProviderBedrock:
		// Region and static credentials are picked up from the environment
		// by the AWS default config chain.
		return []option.RequestOption{bedrock.WithLoadDefaultConfig(ctx)}, nil

	case envgate.ProviderVertex:
		return []option.RequestOption{vertex.WithGoogleAuth(ctx,
			env.Get(envgate.EnvCloudMLRegion),
			env.Get(envgate.EnvVertexProjectID),
		)}, nil

	case envgate.ProviderFoundry:
		baseURL := env.Get(envgate.EnvFoundryBaseURL)
		if baseURL == "" {
			baseURL = FoundryBaseURL(env.Get(envgate.EnvFoundryResource))
		}
		return []option.RequestOption{option.WithBaseURL(baseURL)}, nil

	case envgate.ProviderDefault:
		var opts []option.RequestOption
		if baseURL := env.Get(envgate.EnvBaseURL); baseURL != "" {
			opts = append(opts, option.WithBaseURL(baseURL))
		}
		switch {
		case env.Present(envgate.EnvAuthToken):
			opts = append(opts, option.WithAuthToken(env.Get(envgate.EnvAuthToken)))
		case env.Present(envgate.EnvAPIKey):
			opts = append(opts, option.WithAPIKey(env.Get(envgate.EnvAPIKey)))
		case env.Present(envgate.EnvOAuthToken):
			opts = append(opts, option.WithAuthToken(env.Get(envgate.EnvOAuthToken)))
		}
		return opts, nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", p)
	}
}

// NewClient validates env and constructs a client for the selected provider.
// Validation failures surface as *envgate.ConfigurationError.
func NewClient(ctx context.Context, env envgate.Environ) (anthropic.Client, error) {
	if err := envgate.Validate(env); err != nil {
		return anthropic.Client{}, err
	}
	opts, err := Options(ctx, env)
	if err != nil {
		return anthropic.Client{}, fmt.Errorf("resolving client options: %w", err)
	}
	return anthropic.NewClient(opts...), nil
}

// FoundryBaseURL derives the endpoint URL for a Foundry resource name. Used
// when ANTHROPIC_FOUNDRY_RESOURCE is set without an explicit base URL.
func FoundryBaseURL(resource string) string {
	return fmt.Sprintf("https://%s.services.ai.azure.com", resource)
}
