package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple english", "Hello World", "hello-world"},
		{"persian title", "آموزش گولنگ", "آموزش-گولنگ"},
		{"mixed persian and latin", "درس Go شماره 1", "درس-go-شماره-1"},
		{"accented latin", "Café au Lait", "cafe-au-lait"},
		{"punctuation stripped", "what?! really...", "what-really"},
		{"collapses whitespace", "a   b\t\tc", "a-b-c"},
		{"trims hyphens", "  --hello--  ", "hello"},
		{"empty", "", ""},
		{"only punctuation", "!?!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, From(tt.input))
		})
	}
}

func TestWithTimestampSuffix(t *testing.T) {
	got := WithTimestampSuffix("hello")

	assert.True(t, strings.HasPrefix(got, "hello-"))

	suffix := strings.TrimPrefix(got, "hello-")
	assert.Len(t, suffix, 4)
	for _, r := range suffix {
		assert.True(t, r >= '0' && r <= '9', "suffix must be numeric")
	}
}
