// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ContainerEnginePodman uses Podman as the container engine.
	ContainerEnginePodman ContainerEngine = "podman"
	// ContainerEngineDocker uses Docker as the container engine.
	ContainerEngineDocker ContainerEngine = "docker"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidContainerEngine is returned when a ContainerEngine value is not recognized.
	ErrInvalidContainerEngine = errors.New("invalid container engine")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidImageName is returned when the image setting is empty or contains whitespace.
	ErrInvalidImageName = errors.New("invalid image name")
	// ErrInvalidBuildFileName is returned when the build file setting is not a plain file name.
	ErrInvalidBuildFileName = errors.New("invalid build file name")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config holds the application configuration.
	Config struct {
		// ContainerEngine selects the engine that builds and runs the image.
		ContainerEngine ContainerEngine `json:"container_engine" mapstructure:"container_engine"`
		// Image is the tag given to the built image.
		Image ImageName `json:"image" mapstructure:"image"`
		// BuildFile is the name of the generated build file.
		BuildFile BuildFileName `json:"build_file" mapstructure:"build_file"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging and extended error output.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme selects the Markdown rendering style.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// ContainerEngine specifies which container engine to use.
	ContainerEngine string

	// InvalidContainerEngineError is returned when a ContainerEngine value is not recognized.
	// It wraps ErrInvalidContainerEngine for errors.Is() compatibility.
	InvalidContainerEngineError struct {
		Value ContainerEngine
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ImageName is the image tag setting.
	ImageName string

	// InvalidImageNameError is returned when an ImageName is empty or contains whitespace.
	InvalidImageNameError struct {
		Value ImageName
	}

	// BuildFileName is the build file setting. It must be a plain file name.
	BuildFileName string

	// InvalidBuildFileNameError is returned when a BuildFileName is empty, contains
	// whitespace, or contains a path separator.
	InvalidBuildFileNameError struct {
		Value BuildFileName
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ContainerEngine: ContainerEnginePodman,
		Image:           "pycharm",
		BuildFile:       "Dockerfile",
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Validate returns an error if any field of the Config is invalid.
func (c *Config) Validate() error {
	var errs []error
	if err := c.ContainerEngine.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Image.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.BuildFile.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// String returns the string representation of the ContainerEngine.
func (e ContainerEngine) String() string { return string(e) }

// Validate returns an error if the ContainerEngine is not podman or docker.
func (e ContainerEngine) Validate() error {
	switch e {
	case ContainerEnginePodman, ContainerEngineDocker:
		return nil
	default:
		return &InvalidContainerEngineError{Value: e}
	}
}

// Error implements the error interface.
func (e *InvalidContainerEngineError) Error() string {
	return fmt.Sprintf("invalid container engine %q (valid: podman, docker)", e.Value)
}

// Unwrap returns ErrInvalidContainerEngine for errors.Is() compatibility.
func (e *InvalidContainerEngineError) Unwrap() error { return ErrInvalidContainerEngine }

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate returns an error if the ColorScheme is not auto, dark or light.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate returns an error if the ImageName is empty or contains whitespace.
func (n ImageName) Validate() error {
	if n == "" || strings.ContainsAny(string(n), " \t\r\n") {
		return &InvalidImageNameError{Value: n}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidImageNameError) Error() string {
	return fmt.Sprintf("invalid image %q: must be non-empty without whitespace", e.Value)
}

// Unwrap returns ErrInvalidImageName for errors.Is() compatibility.
func (e *InvalidImageNameError) Unwrap() error { return ErrInvalidImageName }

// Validate returns an error if the BuildFileName is not a plain file name.
func (n BuildFileName) Validate() error {
	s := string(n)
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, "/\\ \t\r\n") {
		return &InvalidBuildFileNameError{Value: n}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidBuildFileNameError) Error() string {
	return fmt.Sprintf("invalid build file %q: must be a plain file name", e.Value)
}

// Unwrap returns ErrInvalidBuildFileName for errors.Is() compatibility.
func (e *InvalidBuildFileNameError) Unwrap() error { return ErrInvalidBuildFileName }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return "invalid config: " + errors.Join(e.FieldErrors...).Error()
}

// Unwrap returns ErrInvalidConfig and every field error.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
