/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements the preflight gate run before an AI coding-agent
// process starts. It validates the provider environment, reports every
// configuration problem in one pass, and optionally constructs the provider
// client to surface auth-chain errors early.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/agentgate/envgate"
	"chainguard.dev/agentgate/envgate/clientopts"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	// ValidateOnly skips provider client construction after validation
	// passes. Useful when the agent constructs its own client and the gate
	// should not touch the AWS/Google auth chains.
	ValidateOnly bool `env:"AGENTGATE_VALIDATE_ONLY,default=false"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	env := envgate.OSEnviron()
	if err := envgate.Validate(env); err != nil {
		// The aggregated report is the message; operators grep for it.
		clog.FatalContextf(ctx, "%s", err)
	}

	provider := envgate.Detect(env)
	clog.InfoContextf(ctx, "Environment validated for provider: %s", provider)

	if cfg.ValidateOnly {
		return
	}

	if _, err := clientopts.NewClient(ctx, env); err != nil {
		clog.FatalContextf(ctx, "configuring %s client: %v", provider, err)
	}
	clog.InfoContextf(ctx, "Provider client configured: %s", provider)
}
