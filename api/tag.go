package api

import (
	"fmt"
)

const revisionAbbrevLength = 7

// GenerateVersionTag derives the image tag for a run from the configured
// semantic version and the source revision: v{version}-{revision[0:7]}.
// It is deterministic for the same inputs; revisions shorter than 7
// characters are used in full.
func GenerateVersionTag(version, revision string) string {

	abbreviated := revision
	if len(revision) > revisionAbbrevLength {
		abbreviated = revision[:revisionAbbrevLength]
	}

	return fmt.Sprintf("v%v-%v", version, abbreviated)
}
