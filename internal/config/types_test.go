// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErrs []error
	}{
		{"defaults", func(*Config) {}, nil},
		{"docker", func(c *Config) { c.ContainerEngine = ContainerEngineDocker }, nil},
		{"empty engine", func(c *Config) { c.ContainerEngine = "" }, []error{ErrInvalidContainerEngine}},
		{"empty image", func(c *Config) { c.Image = "" }, []error{ErrInvalidImageName}},
		{"image with tab", func(c *Config) { c.Image = "a\tb" }, []error{ErrInvalidImageName}},
		{"build file path", func(c *Config) { c.BuildFile = "../Dockerfile" }, []error{ErrInvalidBuildFileName}},
		{"build file dot", func(c *Config) { c.BuildFile = "." }, []error{ErrInvalidBuildFileName}},
		{"color scheme", func(c *Config) { c.UI.ColorScheme = "neon" }, []error{ErrInvalidColorScheme}},
		{
			"several fields",
			func(c *Config) { c.ContainerEngine = "lxc"; c.Image = "" },
			[]error{ErrInvalidContainerEngine, ErrInvalidImageName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.wantErrs) == 0 {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			var cfgErr *InvalidConfigError
			if !errors.As(err, &cfgErr) || len(cfgErr.FieldErrors) != len(tt.wantErrs) {
				t.Fatalf("Validate() field errors = %v, want %d", err, len(tt.wantErrs))
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Validate() should wrap %v, got %v", want, err)
				}
			}
		})
	}
}

func TestContainerEngine_ValidateValue(t *testing.T) {
	t.Parallel()

	err := ContainerEngine("rkt").Validate()
	var engineErr *InvalidContainerEngineError
	if !errors.As(err, &engineErr) || engineErr.Value != "rkt" {
		t.Fatalf("Validate() = %v, want *InvalidContainerEngineError carrying the value", err)
	}
}
