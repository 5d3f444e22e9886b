package column

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"go-tuple/pkg/types"
)

func TestColumnJSON(t *testing.T) {
	payload := `[
		{"name": "id", "type": 0, "meta": {"signed": true, "byte_size": 8}},
		{"name": "name", "type": 3, "meta": {}},
		{"name": "code", "type": 2, "meta": {"cap": 16}}
	]`

	var cols []*Column
	require.NoError(t, json.Unmarshal([]byte(payload), &cols))
	require.Len(t, cols, 3)

	require.Equal(t, "id", cols[0].Name)
	require.Equal(t, types.TYPE_INTEGER, cols[0].Typ)
	require.Equal(t, 8, cols[0].Meta.Size())
	require.Equal(t, uint8(8), cols[0].Meta.Align())

	require.Equal(t, types.TYPE_STRING, cols[1].Typ)
	require.Equal(t, -1, cols[1].Meta.Size())

	require.Equal(t, types.TYPE_VARCHAR, cols[2].Typ)
	require.Equal(t, 16, cols[2].Meta.Size())
}

func TestNew(t *testing.T) {
	col := New("id", types.Meta(types.TYPE_INTEGER, true, 4))
	require.Equal(t, "id", col.Name)
	require.Equal(t, types.TYPE_INTEGER, col.Typ)
	require.Equal(t, 4, col.Meta.Size())
}
