// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/podlaunch/podlaunch/internal/cueutil"
)

const (
	// FormatCUE covers CUE and JSON documents (JSON is valid CUE).
	FormatCUE Format = "cue"
	// FormatTOML covers TOML documents.
	FormatTOML Format = "toml"

	// EmbeddedName is the file name reported for the built-in document.
	EmbeddedName = "launch.json"
)

//go:embed launch.json
var embeddedDocument []byte

type (
	// Format identifies how a document's bytes are decoded.
	Format string

	// Source supplies the bytes of a launch document.
	Source interface {
		// Name identifies the document in error messages.
		Name() string
		// Format reports how the bytes are decoded.
		Format() Format
		// Read returns the raw document.
		Read() ([]byte, error)
	}

	bytesSource struct {
		name   string
		format Format
		data   []byte
	}

	fileSource struct {
		path string
	}
)

// Embedded returns the launch document compiled into the binary.
func Embedded() Source {
	return &bytesSource{name: EmbeddedName, format: FormatCUE, data: embeddedDocument}
}

// FromBytes returns a Source serving data. The format is derived from name's extension.
func FromBytes(name string, data []byte) Source {
	return &bytesSource{name: name, format: FormatFromPath(name), data: data}
}

// FromFile returns a Source that reads the document at path when loaded.
func FromFile(path string) Source {
	return &fileSource{path: path}
}

// FormatFromPath picks the decoder for a document by file extension.
// Anything other than .toml is handed to the CUE decoder.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatCUE
}

func (s *bytesSource) Name() string          { return s.name }
func (s *bytesSource) Format() Format        { return s.format }
func (s *bytesSource) Read() ([]byte, error) { return s.data, nil }

func (s *fileSource) Name() string   { return s.path }
func (s *fileSource) Format() Format { return FormatFromPath(s.path) }

// Read reads at most one byte past cueutil.DefaultMaxFileSize, so an oversized
// document is rejected without being loaded whole.
func (s *fileSource) Read() ([]byte, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read launch document: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, cueutil.DefaultMaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read launch document: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, s.path); err != nil {
		return nil, err
	}
	return data, nil
}
