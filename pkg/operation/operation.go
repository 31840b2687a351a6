// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package operation drives the rule engine over the configured target
// file set and reports outcomes.
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/decache/pkg/config"
	"github.com/walteh/decache/pkg/rules"
	"github.com/walteh/decache/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines one executable batch operation
type Operation interface {
	// Name returns the operation name for logging
	Name() string
	// Execute runs the operation over the full target file set
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies every operation needs
type Options struct {
	// Config is the decache configuration
	Config *config.Config
	// Engine applies the cache-block rules to file buffers
	Engine *rules.Engine
	// StatusMgr scopes file access to the providers directory and
	// tracks per-file results
	StatusMgr *status.Manager
	// UserLog prints the per-file and summary console lines
	UserLog *status.UserLogger
	// Logger is used for debug logging
	Logger *zerolog.Logger
}

// 🔍 validate checks that all required options are set
func (o Options) validate() error {
	if o.Config == nil {
		return errors.Errorf("config is required")
	}
	if o.Engine == nil {
		return errors.Errorf("engine is required")
	}
	if o.StatusMgr == nil {
		return errors.Errorf("status manager is required")
	}
	if o.UserLog == nil {
		return errors.Errorf("user logger is required")
	}
	if o.Logger == nil {
		return errors.Errorf("logger is required")
	}
	return nil
}

// 📦 BaseOperation holds the shared dependencies
type BaseOperation struct {
	Config    *config.Config
	Engine    *rules.Engine
	StatusMgr *status.Manager
	UserLog   *status.UserLogger
	Logger    *zerolog.Logger
}

// 🏭 NewBaseOperation creates a new base operation from options
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{
		Config:    opts.Config,
		Engine:    opts.Engine,
		StatusMgr: opts.StatusMgr,
		UserLog:   opts.UserLog,
		Logger:    opts.Logger,
	}
}
