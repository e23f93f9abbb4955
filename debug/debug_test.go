package debug_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorkit/anchor/debug"
)

func TestStack(t *testing.T) {
	assert := require.New(t)

	s := debug.Stack()
	assert.Contains(s, "TestStack")
	assert.Contains(s, "debug_test.go:")
}
