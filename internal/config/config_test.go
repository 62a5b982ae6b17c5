package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitPrecedence(t *testing.T) {
	os.Unsetenv("SUGGEST_LIMIT")
	assert.Equal(t, DefaultLimit, Limit(0))
	assert.Equal(t, 5, Limit(5))

	os.Setenv("SUGGEST_LIMIT", "7")
	defer os.Unsetenv("SUGGEST_LIMIT")
	assert.Equal(t, 7, Limit(0), "env should override the default")
	assert.Equal(t, 5, Limit(5), "explicit value should still win over env")
}

func TestHighlightDelimitersPrecedence(t *testing.T) {
	os.Unsetenv("SUGGEST_HIGHLIGHT_LEFT")
	os.Unsetenv("SUGGEST_HIGHLIGHT_RIGHT")

	left, right := HighlightDelimiters("", "")
	assert.Equal(t, DefaultLeft, left)
	assert.Equal(t, DefaultRight, right)

	os.Setenv("SUGGEST_HIGHLIGHT_LEFT", "<")
	os.Setenv("SUGGEST_HIGHLIGHT_RIGHT", ">")
	defer os.Unsetenv("SUGGEST_HIGHLIGHT_LEFT")
	defer os.Unsetenv("SUGGEST_HIGHLIGHT_RIGHT")

	left, right = HighlightDelimiters("", "")
	assert.Equal(t, "<", left)
	assert.Equal(t, ">", right)

	left, right = HighlightDelimiters("[[", "]]")
	assert.Equal(t, "[[", left, "explicit value should win over env")
	assert.Equal(t, "]]", right)
}
