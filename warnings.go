package inkwill

import (
	"strings"

	"github.com/tsawler/inkwill/willdoc"
)

// Warning reports a recoverable problem encountered while decoding, such
// as a malformed stroke dropped in lenient mode.
type Warning = willdoc.Warning

// FormatWarnings renders a warning list as a single human-readable
// string, one warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
