/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package envgate

import (
	"os"
	"strings"
)

// Environ is a point-in-time view of the environment variables the gate
// inspects. Unset and empty values are equivalent: both count as absent.
type Environ map[string]string

// OSEnviron snapshots the process environment into an Environ.
func OSEnviron() Environ {
	env := make(Environ)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Get returns the value for key, or "" when absent.
func (e Environ) Get(key string) string {
	return e[key]
}

// Present reports whether key is set to a non-empty value.
func (e Environ) Present(key string) bool {
	return e[key] != ""
}

// Flag reports whether key is set to the literal "1". Other truthy-looking
// values ("true", "yes") do not select a provider.
func (e Environ) Flag(key string) bool {
	return e[key] == "1"
}
