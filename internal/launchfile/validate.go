// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	"net/url"
	"path"
	"slices"
	"strings"
)

type (
	validateOptions struct {
		untrusted bool
	}

	// ValidateOption configures Validate.
	ValidateOption func(*validateOptions)
)

// WithUntrustedSource enables allow-listing of every value that is interpolated
// into the build script. Use it for any document that is not compiled into the binary.
func WithUntrustedSource() ValidateOption {
	return func(o *validateOptions) {
		o.untrusted = true
	}
}

// Validate converts a RawConfiguration into a ValidatedConfiguration.
//
// The URL must be absolute (*InvalidURLError otherwise). The entry must be
// relative, and is held to more than that: an entry that is blank, cleans to "."
// or climbs out with ".." is rejected too (*InvalidEntryError), so the default
// command always names a file below the installation root. Hash and packages are copied verbatim; no digest
// format or non-empty package list is required unless WithUntrustedSource is set.
func Validate(raw *RawConfiguration, opts ...ValidateOption) (*ValidatedConfiguration, error) {
	var options validateOptions
	for _, opt := range opts {
		opt(&options)
	}

	if raw == nil {
		return nil, &ParseError{Filename: "<nil>", Err: ErrParse}
	}

	u, err := parseURL(raw.URL)
	if err != nil {
		return nil, err
	}

	if err := checkEntry(raw.Entry); err != nil {
		return nil, err
	}

	cfg := &ValidatedConfiguration{
		URL:   u,
		Hash:  raw.Hash,
		Entry: raw.Entry,
		Pkgs:  slices.Clone(raw.Pkgs),
	}

	if options.untrusted {
		if err := checkUntrusted(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// parseURL accepts only URLs a downloader can fetch: a scheme is required, opaque
// forms such as "mailto:x" are rejected, and a host is required except for file URLs.
func parseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &InvalidURLError{Value: raw, Reason: "not a valid URL", Err: err}
	}

	switch {
	case !u.IsAbs():
		return nil, &InvalidURLError{Value: raw, Reason: "missing scheme"}
	case u.Opaque != "":
		return nil, &InvalidURLError{Value: raw, Reason: "opaque URLs are not supported"}
	case u.Host == "" && u.Scheme != "file":
		return nil, &InvalidURLError{Value: raw, Reason: "missing host"}
	}

	return u, nil
}

// checkEntry accepts a strict subset of relative paths: blank entries, entries that
// clean to "." and entries that escape with ".." fail even though they are relative.
func checkEntry(entry string) error {
	if strings.TrimSpace(entry) == "" {
		return &InvalidEntryError{Value: entry, Reason: "must not be empty"}
	}
	if path.IsAbs(entry) {
		return &InvalidEntryError{Value: entry, Reason: "must be a relative path"}
	}

	cleaned := path.Clean(entry)
	switch {
	case cleaned == ".":
		return &InvalidEntryError{Value: entry, Reason: "must name a file below the installation root"}
	case cleaned == ".." || strings.HasPrefix(cleaned, "../"):
		return &InvalidEntryError{Value: entry, Reason: "escapes the installation root"}
	}

	return nil
}
