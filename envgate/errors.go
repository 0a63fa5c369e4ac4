/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package envgate

import "strings"

// ConfigurationError reports an invalid or incomplete provider environment.
// Violations holds one human-readable message per failed requirement, in
// detection order.
type ConfigurationError struct {
	Violations []string
}

// Error renders the aggregated report. The header line and bullet layout are
// stable: operators and troubleshooting docs match on exact substrings.
func (e *ConfigurationError) Error() string {
	var sb strings.Builder
	sb.WriteString("Environment variable validation failed:")
	for _, v := range e.Violations {
		sb.WriteString("\n  - ")
		sb.WriteString(v)
	}
	return sb.String()
}
