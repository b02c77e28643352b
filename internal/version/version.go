// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the addrconv utility provided in the qtumaddr repository.
package version

import (
	"fmt"
	"strings"
)

const (
	// semanticAlphabet defines the allowed characters for the pre-release and
	// build metadata portions of a semantic version string.
	semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz-"

	// These constants define the application version and follow the semantic
	// versioning 2.0.0 spec (https://semver.org/).
	major = 1
	minor = 0
	patch = 0
)

var (
	// preRelease contains the prerelease name of the application.  It is a
	// variable so it can be modified at link time (e.g.
	// `-ldflags "-X github.com/qtumsuite/qtumaddr/internal/version.preRelease=rc1"`).
	// It must only contain characters from the semantic version alphabet.
	preRelease = "pre"

	// buildMetadata defines additional build metadata.  It is modifiable at
	// link time in the same manner as preRelease and must also only contain
	// characters from the semantic version alphabet.
	buildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	// Start with the major, minor, and patch versions.
	version := fmt.Sprintf("%d.%d.%d", major, minor, patch)

	// Append pre-release version if there is one.  The hyphen called for by
	// the semantic versioning spec is automatically appended and should not
	// be contained in the pre-release string.
	if preRelease != "" {
		version = fmt.Sprintf("%s-%s", version, normalizeVerString(preRelease))
	}

	// Append build metadata if there is any.  The plus called for by the
	// semantic versioning spec is automatically appended and should not be
	// contained in the build metadata string.
	if buildMetadata != "" {
		version = fmt.Sprintf("%s+%s", version,
			normalizeVerString(buildMetadata))
	}

	return version
}

// normalizeVerString returns the passed string stripped of all characters
// which are not valid according to the semantic versioning guidelines for
// pre-release and build metadata strings.  In particular they MUST only
// contain characters in semanticAlphabet.
func normalizeVerString(str string) string {
	var result strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
