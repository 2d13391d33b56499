package format

import (
	"strings"
)

// flagPrefix marks arguments that are formatter options rather than files.
const flagPrefix = "--"

// FilterFlags returns args with formatter options removed, preserving
// order. The fixup pass must only ever see real file paths: an invocation
// like "gjf --help" reaches the formatter but leaves nothing to fix up.
// Filtering an already-filtered list yields the same list.
func FilterFlags(args []string) []string {
	files := make([]string, 0, len(args))
	for _, a := range args {
		if !strings.HasPrefix(a, flagPrefix) {
			files = append(files, a)
		}
	}
	return files
}
