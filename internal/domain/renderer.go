package domain

import (
	"strings"

	m "github.com/docweld/docweld/internal/model"
)

// RenderBlock converts the selected target lines into doc-comment lines for
// the pair's kind. Content is copied verbatim behind the prefix; an empty
// input line becomes the bare prefix with no trailing whitespace, so
// paragraph breaks survive without inventing any text.
func RenderBlock(lines []string, kind m.MarkerKind) []string {
	prefix := kind.DocPrefix()
	bare := strings.TrimRight(prefix, " ")

	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			out[i] = bare
		} else {
			out[i] = prefix + line
		}
	}

	return out
}
