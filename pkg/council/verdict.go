package council

import (
	"regexp"
	"strings"
)

// The verdict protocol is deliberately textual and tiny: judges reply with
// free text, and the only authoritative part of the reply is the last
// double-bracketed token. A and B are positional — A is always the pair's
// lower-index candidate — so the five tokens are a closed set regardless of
// anonymization.
//
// Both the Unicode much-greater-than (U+226B) and the ASCII digraph ">>"
// are accepted; emitted prompts use the Unicode form. Whitespace inside the
// brackets is tolerated.

// verdictPattern matches one verdict token. Order matters: the digraph
// alternatives must precede the single ">" so "A>>B" is not consumed as
// "A>B" plus a stray ">".
var verdictPattern = regexp.MustCompile(`\[\[\s*(A\s*(?:≫|>>)\s*B|B\s*(?:≫|>>)\s*A|A\s*>\s*B|B\s*>\s*A|A\s*=\s*B)\s*\]\]`)

// parseVerdict extracts the margin from a judge's reply: +2 for A≫B, +1 for
// A>B, 0 for A=B, -1 for B>A, -2 for B≫A, positive favoring the pair's
// lower-index candidate. The last token in the reply wins. ok is false when
// the reply contains no recognizable token.
func parseVerdict(reply string) (margin int, ok bool) {
	matches := verdictPattern.FindAllStringSubmatch(reply, -1)
	if len(matches) == 0 {
		return 0, false
	}
	token := matches[len(matches)-1][1]

	// Collapse whitespace and the ASCII digraph so the switch below sees
	// one canonical spelling per outcome.
	token = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, token)
	token = strings.ReplaceAll(token, ">>", "≫")

	switch token {
	case "A≫B":
		return 2, true
	case "A>B":
		return 1, true
	case "A=B":
		return 0, true
	case "B>A":
		return -1, true
	case "B≫A":
		return -2, true
	}
	return 0, false
}
