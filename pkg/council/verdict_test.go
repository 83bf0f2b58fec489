package council

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantMargin int
		wantOK     bool
	}{
		{"decisive win unicode", "reasoning... [[A≫B]]", 2, true},
		{"decisive win ascii digraph", "reasoning... [[A>>B]]", 2, true},
		{"narrow win", "verdict: [[A>B]]", 1, true},
		{"tie", "[[A=B]]", 0, true},
		{"narrow loss", "clearly [[B>A]]", -1, true},
		{"decisive loss unicode", "[[B≫A]]", -2, true},
		{"decisive loss ascii digraph", "[[B>>A]]", -2, true},
		{"token embedded mid-reply", "I think [[A>B]] summarizes it. Thanks.", 1, true},
		{"last token wins", "Maybe [[A>B]]. On reflection: [[B≫A]]", -2, true},
		{"whitespace inside brackets", "[[ A > B ]]", 1, true},
		{"whitespace around digraph", "[[A >> B]]", 2, true},
		{"no token", "I'm not sure", 0, false},
		{"empty reply", "", 0, false},
		{"single brackets are not a token", "[A>B]", 0, false},
		{"unknown comparison", "[[A<B]]", 0, false},
		{"token split across labels", "A is better than B", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margin, ok := parseVerdict(tt.reply)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMargin, margin)
			}
		})
	}
}

func TestParseVerdict_RoundTripAllTokens(t *testing.T) {
	// Each of the five tokens embedded anywhere in a reply parses back to
	// exactly its margin.
	tokens := map[string]int{
		"[[A≫B]]": 2,
		"[[A>B]]": 1,
		"[[A=B]]": 0,
		"[[B>A]]": -1,
		"[[B≫A]]": -2,
	}
	surroundings := []string{
		"%s",
		"prefix %s",
		"%s suffix",
		"line one\n%s\nline three",
	}

	for token, want := range tokens {
		for _, wrap := range surroundings {
			reply := fmt.Sprintf(wrap, token)
			margin, ok := parseVerdict(reply)
			assert.True(t, ok, "token %s in %q", token, reply)
			assert.Equal(t, want, margin, "token %s in %q", token, reply)
		}
	}
}
