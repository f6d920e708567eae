package match

import "strings"

const minOverlapWordLength = 4

// FuzzyLabelMatch reports whether two free-text labels refer to the same
// skill. Labels match when they are equal after case folding, when one
// contains the other, or when any sufficiently long word of one label is a
// substring of a word of the other (so "Machine Learning" matches
// "deep learning engineer"). Empty labels never match anything.
func FuzzyLabelMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == "" || b == "" {
		return false
	}

	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	return wordsOverlap(a, b)
}

func wordsOverlap(a, b string) bool {
	for _, wordA := range strings.Fields(a) {
		if len(wordA) < minOverlapWordLength {
			continue
		}
		for _, wordB := range strings.Fields(b) {
			if len(wordB) < minOverlapWordLength {
				continue
			}
			if strings.Contains(wordA, wordB) || strings.Contains(wordB, wordA) {
				return true
			}
		}
	}
	return false
}

func anyLabelMatches(labels []string, target string) bool {
	for _, label := range labels {
		if FuzzyLabelMatch(label, target) {
			return true
		}
	}
	return false
}
