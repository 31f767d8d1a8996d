package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostInput(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		content string
		wantErr bool
	}{
		{"both present", "Hello", "World", false},
		{"empty title", "", "World", true},
		{"empty content", "Hello", "", true},
		{"whitespace title", "   ", "World", true},
		{"whitespace content", "Hello", "\t\n ", true},
		{"both empty", "", "", true},
		{"surrounding whitespace is fine", "  Hello  ", "  World  ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePostInput(tc.title, tc.content)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, KindMissingField, KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
