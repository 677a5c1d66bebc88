package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndentExpand(t *testing.T) {
	assert.Equal(t, "", IndentExpand("  ", 0))
	assert.Equal(t, "  ", IndentExpand("  ", 1))
	assert.Equal(t, "\t\t\t", IndentExpand("\t", 3))
}
