// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/podlaunch/podlaunch/internal/cueutil"

	"github.com/pelletier/go-toml/v2"
)

const schemaPath = "#Launch"

//go:embed launchfile_schema.cue
var launchSchema []byte

// Load reads the document from src and decodes it into a RawConfiguration.
// Any read, syntax, or schema failure is returned as a *ParseError.
func Load(ctx context.Context, src Source) (*RawConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load launch document canceled: %w", err)
	}

	data, err := src.Read()
	if err != nil {
		return nil, &ParseError{Filename: src.Name(), Err: err}
	}

	var result *cueutil.ParseResult[RawConfiguration]
	switch src.Format() {
	case FormatTOML:
		result, err = decodeTOML(src.Name(), data)
	default:
		result, err = cueutil.ParseAndDecode[RawConfiguration](launchSchema, data, schemaPath,
			cueutil.WithFilename(src.Name()))
	}
	if err != nil {
		return nil, &ParseError{Filename: src.Name(), Err: err}
	}

	return result.Value, nil
}

// decodeTOML decodes a TOML document into a generic map and then runs it
// through the same schema as CUE/JSON documents.
func decodeTOML(name string, data []byte) (*cueutil.ParseResult[RawConfiguration], error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, name); err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return cueutil.ValidateAndDecode[RawConfiguration](launchSchema, doc, schemaPath,
		cueutil.WithFilename(name))
}
