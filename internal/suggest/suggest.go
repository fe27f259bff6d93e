// Package suggest proposes a "did you mean" fix when a parse error's
// offending token is almost a reserved keyword. It never changes an
// error's kind or whether the tree gets an Error node — it only sharpens
// the message text.
package suggest

import "github.com/lithammer/fuzzysearch/fuzzy"

// keywords mirrors the scanner's reserved-word set (see internal/lexer).
var keywords = []string{"if", "then", "else", "repeat", "end", "until", "read", "write"}

// maxDistance bounds how far a misspelling may be from a keyword before the
// engine gives up rather than propose a misleading fix.
const maxDistance = 2

// Keyword returns the closest reserved keyword to got and true, or ("",
// false) when nothing in the keyword set is close enough to be a useful
// suggestion.
//
// fuzzy.RankFind's subsequence match is directional (it only finds source
// within target), so a dropped letter (got shorter than the keyword) and an
// inserted letter (got longer than the keyword) need got and the keyword on
// opposite sides of the call. We try both directions and keep whichever
// rank reports the smaller edit distance.
func Keyword(got string) (string, bool) {
	if got == "" {
		return "", false
	}

	bestTarget := ""
	bestDistance := maxDistance + 1

	if ranks, found := fuzzy.RankFind(got, keywords); found {
		for _, r := range ranks {
			if r.Target != got && r.Distance < bestDistance {
				bestDistance = r.Distance
				bestTarget = r.Target
			}
		}
	}
	for _, kw := range keywords {
		if kw == got {
			continue
		}
		if ranks, found := fuzzy.RankFind(kw, []string{got}); found {
			for _, r := range ranks {
				if r.Distance < bestDistance {
					bestDistance = r.Distance
					bestTarget = kw
				}
			}
		}
	}

	if bestTarget == "" || bestDistance > maxDistance {
		return "", false
	}
	return bestTarget, true
}
