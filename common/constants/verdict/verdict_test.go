package verdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal(t *testing.T) {
	assert.False(t, WJ.Terminal())
	assert.False(t, JG.Terminal())

	for _, v := range []Verdict{AC, WA, TL, ML, RT, CE, JF, OE} {
		assert.True(t, v.Terminal(), "verdict %s", v)
	}
}
