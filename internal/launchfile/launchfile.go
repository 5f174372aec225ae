// SPDX-License-Identifier: MPL-2.0

package launchfile

import "net/url"

type (
	// RawConfiguration is the launch document as decoded, before any semantic check.
	RawConfiguration struct {
		URL   string   `json:"url"`
		Hash  string   `json:"hash"`
		Entry string   `json:"entry"`
		Pkgs  []string `json:"pkgs"`
	}

	// ValidatedConfiguration is a launch document that passed Validate.
	// URL is absolute and Entry is a relative path that does not leave the
	// installation root. Values are never mutated after validation.
	ValidatedConfiguration struct {
		URL   *url.URL
		Hash  string
		Entry string
		Pkgs  []string
	}
)
