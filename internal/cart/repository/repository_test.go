package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	items, err := Parse([]byte(`[{"id":1,"title":"Linen Shirt","price":10.5,"image":"http://img/1.jpg","quantity":2}]`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, 10.5, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestParse_EmptyArray(t *testing.T) {
	items, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParse_MalformedData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated json", `[{"id":1,`},
		{"wrong shape", `{"id":1}`},
		{"plain text", `not json at all`},
		{"zero quantity entry", `[{"id":1,"quantity":0}]`},
		{"negative quantity entry", `[{"id":1,"quantity":-2}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Parse([]byte(tt.data))
			assert.Error(t, err)
			assert.Nil(t, items)
		})
	}
}
