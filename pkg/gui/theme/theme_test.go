package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemFollowsBackground(t *testing.T) {
	orig := hasDarkBackground
	t.Cleanup(func() { hasDarkBackground = orig })

	hasDarkBackground = func() bool { return true }
	assert.Equal(t, Dark, System())

	hasDarkBackground = func() bool { return false }
	assert.Equal(t, Light, System())
}
