/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package envgate validates the provider environment of an AI coding-agent
action before the agent process starts.

The agent can talk to the Anthropic API directly, through AWS Bedrock,
Google Vertex AI, Microsoft Foundry, or a custom OpenAI-compatible endpoint
reached via a base-URL override. Each provider needs a different set of
credentials, and dispatching a request with an incomplete set fails in ways
that are hard to diagnose from inside the agent. envgate front-loads those
checks: it classifies the active provider from the CLAUDE_CODE_USE_* flags,
verifies the provider's required credentials, and reports every violation it
finds in a single ConfigurationError so the operator can fix the whole
environment in one edit-and-rerun cycle.

Validation is pure over an injected Environ snapshot. Nothing is read from
the ambient process environment unless the caller opts in with OSEnviron,
which keeps unit tests hermetic and repeated calls referentially transparent.

# Usage

	env := envgate.OSEnviron()
	if err := envgate.Validate(env); err != nil {
		// err.Error() is the full aggregated report:
		//
		//   Environment variable validation failed:
		//     - AWS_REGION is required when using AWS Bedrock.
		//     - ...
		log.Fatal(err)
	}

At most one of the provider flags may be set to "1". When more than one is
set, Validate reports the conflict and then checks only the highest-priority
branch (Bedrock, then Vertex, then Foundry), matching what the agent would
actually dial.
*/
package envgate
