/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package envgate

import "fmt"

// Validate checks that env carries a complete credential set for the
// selected provider. It returns nil on success, or a *ConfigurationError
// aggregating every violation found. Checks do not short-circuit: a single
// run surfaces everything the operator has to fix.
//
// Validate reads nothing outside env and has no side effects, so repeated
// calls over the same snapshot produce identical results.
func Validate(env Environ) error {
	var violations []string

	flags := 0
	for _, key := range []string{EnvUseBedrock, EnvUseVertex, EnvUseFoundry} {
		if env.Flag(key) {
			flags++
		}
	}
	if flags > 1 {
		violations = append(violations, fmt.Sprintf(
			"%s, %s, and %s are mutually exclusive. Set at most one provider flag.",
			EnvUseBedrock, EnvUseVertex, EnvUseFoundry))
	}

	// Even when exclusivity already failed, the highest-priority branch is
	// still checked so its credential gaps land in the same report.
	switch Detect(env) {
	case ProviderBedrock:
		if !env.Present(EnvAWSRegion) {
			violations = append(violations, fmt.Sprintf(
				"%s is required when using AWS Bedrock.", EnvAWSRegion))
		}
		keyPair := env.Present(EnvAWSAccessKeyID) && env.Present(EnvAWSSecretAccessKey)
		if !env.Present(EnvAWSBearerToken) && !keyPair {
			violations = append(violations, fmt.Sprintf(
				"Either %s or both %s and %s are required when using AWS Bedrock.",
				EnvAWSBearerToken, EnvAWSAccessKeyID, EnvAWSSecretAccessKey))
		}

	case ProviderVertex:
		for _, key := range []string{EnvVertexProjectID, EnvCloudMLRegion} {
			if !env.Present(key) {
				violations = append(violations, fmt.Sprintf(
					"%s is required when using Google Vertex AI.", key))
			}
		}

	case ProviderFoundry:
		if !env.Present(EnvFoundryResource) && !env.Present(EnvFoundryBaseURL) {
			violations = append(violations, fmt.Sprintf(
				"Either %s or %s is required when using Microsoft Foundry.",
				EnvFoundryResource, EnvFoundryBaseURL))
		}

	case ProviderDefault:
		custom := env.Present(EnvBaseURL) &&
			(env.Present(EnvAuthToken) || env.Present(EnvAPIKey))
		if !env.Present(EnvAPIKey) && !env.Present(EnvOAuthToken) && !custom {
			violations = append(violations, fmt.Sprintf(
				"Either %s, %s, or a custom provider configuration (%s with %s or %s) is required.",
				EnvAPIKey, EnvOAuthToken, EnvBaseURL, EnvAuthToken, EnvAPIKey))
		}
	}

	if len(violations) > 0 {
		return &ConfigurationError{Violations: violations}
	}
	return nil
}
