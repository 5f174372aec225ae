// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/podlaunch/podlaunch/internal/issue"
)

// isolatedOptions returns LoadOptions that only see files under fresh temp dirs.
func isolatedOptions(t *testing.T) LoadOptions {
	t.Helper()
	return LoadOptions{ConfigDirPath: t.TempDir(), WorkDir: t.TempDir()}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.ContainerEngine != ContainerEnginePodman {
		t.Errorf("expected default container engine to be podman, got %s", cfg.ContainerEngine)
	}
	if cfg.Image != "pycharm" {
		t.Errorf("expected default image to be pycharm, got %s", cfg.Image)
	}
	if cfg.BuildFile != "Dockerfile" {
		t.Errorf("expected default build file to be Dockerfile, got %s", cfg.BuildFile)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	loaded, err := LoadWithSource(t.Context(), isolatedOptions(t))
	if err != nil {
		t.Fatalf("LoadWithSource() error = %v", err)
	}
	if loaded.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", loaded.Path)
	}
	if *loaded.Config != *DefaultConfig() {
		t.Errorf("Config = %+v, want defaults %+v", *loaded.Config, *DefaultConfig())
	}
}

func TestLoad_ConfigDirFile(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	path := filepath.Join(opts.ConfigDirPath, "config.cue")
	writeFile(t, path, `
container_engine: "docker"
ui: verbose: true
`)

	loaded, err := LoadWithSource(t.Context(), opts)
	if err != nil {
		t.Fatalf("LoadWithSource() error = %v", err)
	}
	if loaded.Path != path {
		t.Errorf("Path = %q, want %q", loaded.Path, path)
	}

	cfg := loaded.Config
	if cfg.ContainerEngine != ContainerEngineDocker {
		t.Errorf("ContainerEngine = %q, want docker", cfg.ContainerEngine)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	// Unset fields keep their defaults.
	if cfg.Image != "pycharm" || cfg.BuildFile != "Dockerfile" || cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoad_WorkDirFallback(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	path := filepath.Join(opts.WorkDir, "config.cue")
	writeFile(t, path, `image: "ide:dev"`)

	loaded, err := LoadWithSource(t.Context(), opts)
	if err != nil {
		t.Fatalf("LoadWithSource() error = %v", err)
	}
	if loaded.Path != path || loaded.Config.Image != "ide:dev" {
		t.Errorf("got %q from %q, want ide:dev from %q", loaded.Config.Image, loaded.Path, path)
	}
}

func TestLoad_ConfigDirWinsOverWorkDir(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	writeFile(t, filepath.Join(opts.ConfigDirPath, "config.cue"), `image: "from-dir"`)
	writeFile(t, filepath.Join(opts.WorkDir, "config.cue"), `image: "from-workdir"`)

	cfg, err := NewProvider().Load(t.Context(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Image != "from-dir" {
		t.Errorf("Image = %q, want from-dir", cfg.Image)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	writeFile(t, filepath.Join(opts.ConfigDirPath, "config.cue"), `image: "from-dir"`)
	explicit := filepath.Join(t.TempDir(), "custom.cue")
	writeFile(t, explicit, `build_file: "Containerfile"`)
	opts.ConfigFilePath = explicit

	loaded, err := LoadWithSource(t.Context(), opts)
	if err != nil {
		t.Fatalf("LoadWithSource() error = %v", err)
	}
	if loaded.Path != explicit {
		t.Errorf("Path = %q, want %q", loaded.Path, explicit)
	}
	if loaded.Config.BuildFile != "Containerfile" || loaded.Config.Image != "pycharm" {
		t.Errorf("explicit file should be used exclusively, got %+v", loaded.Config)
	}
}

func TestLoad_OversizedFile(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	opts.ConfigFilePath = filepath.Join(t.TempDir(), "big.cue")
	padding := strings.Repeat("// padding\n", int(MaxConfigFileSize/11)+1)
	writeFile(t, opts.ConfigFilePath, padding+`image: "x"`)

	_, err := LoadWithSource(t.Context(), opts)
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Fatalf("LoadWithSource() error = %v, want size limit error", err)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	opts.ConfigFilePath = filepath.Join(t.TempDir(), "nope.cue")

	_, err := LoadWithSource(t.Context(), opts)
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("LoadWithSource() error = %v, want *issue.ActionableError", err)
	}
	if ae.Resource != opts.ConfigFilePath || ae.Issue != issue.ConfigLoadFailedId {
		t.Errorf("ActionableError = %+v", ae)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"unknown engine", `container_engine: "containerd"`, "container_engine"},
		{"unknown field", `engine: "podman"`, "engine"},
		{"image with space", `image: "py charm"`, "image"},
		{"build file with path", `build_file: "sub/Dockerfile"`, "build_file"},
		{"verbose wrong type", `ui: verbose: "yes"`, "verbose"},
		{"bad color scheme", `ui: color_scheme: "neon"`, "color_scheme"},
		{"syntax error", `image: "pycharm`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := isolatedOptions(t)
			writeFile(t, filepath.Join(opts.ConfigDirPath, "config.cue"), tt.content)

			_, err := LoadWithSource(t.Context(), opts)
			if err == nil {
				t.Fatal("LoadWithSource() expected error")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) || ae.Operation != "load configuration" {
				t.Fatalf("error should be a load configuration ActionableError, got %v", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := LoadWithSource(ctx, isolatedOptions(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadWithSource() = %v, want context.Canceled", err)
	}
}

// Environment tests mutate process state and cannot run in parallel.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PODLAUNCH_CONTAINER_ENGINE", "docker")
	t.Setenv("PODLAUNCH_UI_VERBOSE", "true")

	opts := isolatedOptions(t)
	writeFile(t, filepath.Join(opts.ConfigDirPath, "config.cue"), `container_engine: "podman"`)

	cfg, err := NewProvider().Load(t.Context(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ContainerEngine != ContainerEngineDocker {
		t.Errorf("ContainerEngine = %q, want the env override docker", cfg.ContainerEngine)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want the env override true")
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("PODLAUNCH_CONTAINER_ENGINE", "lxc")

	_, err := NewProvider().Load(t.Context(), isolatedOptions(t))
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrInvalidContainerEngine) {
		t.Fatalf("Load() = %v, want ErrInvalidConfig wrapping ErrInvalidContainerEngine", err)
	}
}

func TestConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if got := ConfigDir(); got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
	if got := ConfigFilePath(); got != filepath.Join(dir, "config.cue") {
		t.Errorf("ConfigFilePath() = %q", got)
	}

	Reset()
	if got := ConfigDir(); filepath.Base(got) != AppName {
		t.Errorf("ConfigDir() = %q, want a %s directory under the XDG config home", got, AppName)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "podlaunch")

	path, created, err := CreateDefaultConfig(dir)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if !created || path != filepath.Join(dir, "config.cue") {
		t.Fatalf("CreateDefaultConfig() = %q, %v", path, created)
	}

	// The generated file must round-trip through the schema to the defaults.
	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("loading generated config: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("generated config = %+v, want defaults", *cfg)
	}

	writeFile(t, path, `image: "kept"`)
	if _, created, err := CreateDefaultConfig(dir); err != nil || created {
		t.Errorf("second CreateDefaultConfig() = created %v, err %v; want existing file kept", created, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != `image: "kept"` {
		t.Errorf("existing config was overwritten: %q", data)
	}
}

func TestGenerateCUE(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ContainerEngine = ContainerEngineDocker
	cfg.UI.Verbose = true

	out := GenerateCUE(cfg)
	for _, want := range []string{
		`container_engine: "docker"`,
		`image: "pycharm"`,
		`build_file: "Dockerfile"`,
		"\tverbose: true",
		`color_scheme: "auto"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateCUE() missing %q:\n%s", want, out)
		}
	}
}
