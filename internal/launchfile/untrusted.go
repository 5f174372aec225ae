// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	"fmt"
	"strings"

	"github.com/opencontainers/go-digest"
	"mvdan.cc/sh/v3/syntax"
)

// shellSpecial lists characters that the shell parser keeps inside a literal word
// but that still expand (globs, braces, tilde) or continue a Dockerfile line.
const shellSpecial = "*?[]{}~\\"

func checkUntrusted(cfg *ValidatedConfiguration) error {
	if err := digest.NewDigestFromEncoded(digest.SHA256, cfg.Hash).Validate(); err != nil {
		return &UnsafeValueError{Field: "hash", Value: cfg.Hash, Reason: err.Error()}
	}

	if err := checkShellWord("url", cfg.URL.String()); err != nil {
		return err
	}

	if err := checkShellWord("entry", cfg.Entry); err != nil {
		return err
	}

	for i, pkg := range cfg.Pkgs {
		if err := checkShellWord(fmt.Sprintf("pkgs[%d]", i), pkg); err != nil {
			return err
		}
	}

	return nil
}

// checkShellWord verifies that value parses as exactly one literal shell word,
// so it cannot add commands, redirections, substitutions, or extra arguments.
func checkShellWord(field, value string) error {
	if value == "" {
		return &UnsafeValueError{Field: field, Value: value, Reason: "must not be empty"}
	}
	if strings.ContainsAny(value, shellSpecial) {
		return &UnsafeValueError{Field: field, Value: value, Reason: "contains shell expansion characters"}
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(value), field)
	if err != nil {
		return &UnsafeValueError{Field: field, Value: value, Reason: "not valid shell syntax"}
	}
	if len(file.Stmts) != 1 {
		return &UnsafeValueError{Field: field, Value: value, Reason: "must be a single shell word"}
	}

	stmt := file.Stmts[0]
	if stmt.Negated || stmt.Background || stmt.Coprocess || len(stmt.Redirs) > 0 {
		return &UnsafeValueError{Field: field, Value: value, Reason: "must be a single shell word"}
	}

	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(call.Assigns) > 0 || len(call.Args) != 1 {
		return &UnsafeValueError{Field: field, Value: value, Reason: "must be a single shell word"}
	}

	if call.Args[0].Lit() != value {
		return &UnsafeValueError{Field: field, Value: value, Reason: "must not contain quotes or substitutions"}
	}

	return nil
}
