// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Both the launch document and the user settings file are checked against an
// embedded CUE schema before being decoded into Go structs:
//
//  1. Compile the embedded schema
//  2. Compile (or encode) user data and unify with schema
//  3. Validate and decode to Go struct
//
// # Usage
//
//	//go:embed launchfile_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[RawConfiguration](
//	    schemaBytes,
//	    documentBytes,
//	    "#Launch",
//	    cueutil.WithFilename("launch.json"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes CUE path for debugging
//	}
//	return result.Value, nil
package cueutil
