package board

import (
	"strings"
)

// ValidatePostInput checks the required post fields before any remote call.
// Whitespace-only values count as missing. Markdown content is stored as-is;
// no length or character-set rules apply.
func ValidatePostInput(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return newError(KindMissingField, "title and content are required", nil)
	}
	return nil
}
