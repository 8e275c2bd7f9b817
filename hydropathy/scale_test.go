package hydropathy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKyteDoolittleAlphabet(t *testing.T) {
	assert.Len(t, KyteDoolittle, 20)
	for _, code := range []byte("ACDEFGHIKLMNPQRSTVWY") {
		assert.True(t, KyteDoolittle.Contains(code), "missing %c", code)
	}
	for _, code := range []byte("BJOUXZ*-") {
		assert.False(t, KyteDoolittle.Contains(code), "ambiguous code %c must not be scored", code)
	}
}

func TestKyteDoolittleKnownValues(t *testing.T) {
	assert.Equal(t, -0.4, KyteDoolittle['G'])
	assert.Equal(t, 4.5, KyteDoolittle['I'])
	assert.Equal(t, -4.5, KyteDoolittle['R'])
}
