/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package clientopts maps a validated provider environment onto Anthropic
// SDK request options, so the caller constructs a client for whichever
// backend the CLAUDE_CODE_USE_* flags selected without provider-specific
// branching of its own.
package clientopts
