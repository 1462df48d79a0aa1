// Package textproc cleans captured selection text and classifies which
// captures qualify as reviewable vocabulary words.
package textproc

import (
	"fmt"
	"regexp"
	"strings"
)

const maxCaptureLength = 600

var (
	nonASCII    = regexp.MustCompile(`[^\x00-\x7F]+`)
	wordPattern = regexp.MustCompile(`^[a-zA-Z]+(['-][a-zA-Z]+)*$`)
)

// Clean strips non-ASCII runs from a captured selection. Dictionary and TTS
// tools frequently prepend CJK annotations to the copied text.
func Clean(text string) string {
	return nonASCII.ReplaceAllString(text, "")
}

// Prepare validates and cleans a raw capture. An empty result means the
// capture must be aborted.
func Prepare(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("empty capture")
	}
	if len(text) > maxCaptureLength {
		return "", fmt.Errorf("capture length %d exceeds %d", len(text), maxCaptureLength)
	}
	cleaned := strings.TrimSpace(Clean(text))
	if cleaned == "" {
		return "", fmt.Errorf("capture empty after cleaning")
	}
	return cleaned, nil
}

// WordPredicate decides whether a piece of content is a single reviewable
// word, as opposed to sentence-like content that is stored but never
// scheduled for review.
type WordPredicate struct {
	maxLength int
}

func NewWordPredicate(maxLength int) WordPredicate {
	return WordPredicate{maxLength: maxLength}
}

// IsReviewable reports whether content is a word: letters only, with
// optional internal hyphens or apostrophes, within the configured length.
func (p WordPredicate) IsReviewable(content string) bool {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > p.maxLength {
		return false
	}
	return wordPattern.MatchString(content)
}
