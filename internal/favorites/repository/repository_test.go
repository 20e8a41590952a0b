package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	ids, err := Parse([]byte(`[1,5,9]`))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 5, 9}, ids)
}

func TestParse_Malformed(t *testing.T) {
	for _, data := range []string{`{"a":1}`, `[1,"two"]`, `garbage`, `[1,`} {
		ids, err := Parse([]byte(data))
		assert.Error(t, err, "payload %q", data)
		assert.Nil(t, ids)
	}
}
