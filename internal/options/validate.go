// Package options provides shared utilities for validating mutually
// exclusive settings across packages.
package options

import "github.com/erraggy/docctx/docerrors"

// ValidateSingleSource ensures at most one of sources is set. When required
// is true, exactly one must be set. option names the setting in the
// returned *docerrors.ConfigError.
func ValidateSingleSource(option string, required bool, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	if count == 0 && required {
		return &docerrors.ConfigError{Option: option, Message: "no source specified"}
	}
	if count > 1 {
		return &docerrors.ConfigError{Option: option, Message: "multiple sources specified"}
	}

	return nil
}
