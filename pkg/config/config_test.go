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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "valid_yaml_config",
			filename: "decache.yaml",
			config: `
providers_dir: /srv/toys_api/lib/providers
providers:
  - lego.js
  - tmdb.js
ignore_patterns:
  - "*.min.js"
backup: true
async: true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/srv/toys_api/lib/providers", cfg.ProvidersDir, "providers_dir should match")
				assert.Equal(t, []string{"lego.js", "tmdb.js"}, cfg.Providers, "providers should keep their order")
				assert.Equal(t, []string{"*.min.js"}, cfg.IgnorePatterns, "ignore patterns should match")
				assert.True(t, cfg.Backup, "backup should be true")
				assert.True(t, cfg.Async, "async should be true")
			},
		},
		{
			name:     "minimal_yaml_config",
			filename: "decache.yml",
			config: `
providers_dir: lib/providers
providers:
  - jikan.js
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "lib/providers", cfg.ProvidersDir, "providers_dir should match")
				assert.Len(t, cfg.Providers, 1, "should have one provider")
				assert.False(t, cfg.Backup, "backup should default to false")
				assert.False(t, cfg.Async, "async should default to false")
			},
		},
		{
			name:     "valid_hcl_config",
			filename: "decache.hcl",
			config: `
providers_dir = "lib/providers"
providers     = ["igdb.js", "jvc.js"]
backup        = true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "lib/providers", cfg.ProvidersDir, "providers_dir should match")
				assert.Equal(t, []string{"igdb.js", "jvc.js"}, cfg.Providers, "providers should match")
				assert.True(t, cfg.Backup, "backup should be true")
			},
		},
		{
			name:     "missing_providers_dir",
			filename: "decache.yaml",
			config: `
providers:
  - lego.js
`,
			wantErr:     true,
			errContains: "providers_dir is required",
		},
		{
			name:     "empty_provider_list",
			filename: "decache.yaml",
			config: `
providers_dir: lib/providers
providers: []
`,
			wantErr:     true,
			errContains: "at least one provider file is required",
		},
		{
			name:     "provider_with_path_separator",
			filename: "decache.yaml",
			config: `
providers_dir: lib/providers
providers:
  - ../escape.js
`,
			wantErr:     true,
			errContains: "must be a bare file name",
		},
		{
			name:        "unsupported_extension",
			filename:    "decache.toml",
			config:      `providers_dir = "lib/providers"`,
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zerolog.New(zerolog.NewTestWriter(t))
			ctx := logger.WithContext(context.Background())

			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644))

			cfg, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "lib/providers", cfg.ProvidersDir)
	assert.Len(t, cfg.Providers, 13, "built-in target set should list 13 provider files")
	assert.Equal(t, "lego.js", cfg.Providers[0], "order is part of the contract")
	assert.Equal(t, "jikan.js", cfg.Providers[12])
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{ProvidersDir: "lib/providers", Providers: []string{"a.js", "b.js"}}
	assert.Equal(t, "lib/providers (2 files)", cfg.String())
}
