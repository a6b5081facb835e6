package sales

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSnapshotStructured(t *testing.T) {
	raw := []byte(`[{"sku":"A-1","cantidad":2},{"sku":"B-2","cantidad":1,"nombre":"Agua"}]`)

	items, err := decodeSnapshot(raw)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, Item{SKU: "A-1", Quantity: 2}, items[0])
	require.Equal(t, "Agua", items[1].Name)
}

func TestDecodeSnapshotLegacyString(t *testing.T) {
	// Rows written by the old gateway hold a JSON string containing the
	// serialized array, with the uppercase SKU key.
	raw := []byte(`"[{\"SKU\":\"A-1\",\"cantidad\":3}]"`)

	items, err := decodeSnapshot(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "A-1", items[0].SKU)
	require.Equal(t, 3, items[0].Quantity)
}

func TestDecodeSnapshotEmpty(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte(""), []byte("null"), []byte("  null ")} {
		items, err := decodeSnapshot(raw)
		require.NoError(t, err)
		require.Nil(t, items)
	}
}

func TestDecodeSnapshotCorrupt(t *testing.T) {
	_, err := decodeSnapshot([]byte(`{"not":"a list"}`))
	require.Error(t, err)

	_, err = decodeSnapshot([]byte(`"not json inside"`))
	require.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	items := []Item{{SKU: "A-1", Quantity: 2, Name: "Coca", UnitPrice: 10.5}}

	raw, err := encodeSnapshot(items)
	require.NoError(t, err)

	decoded, err := decodeSnapshot(raw)
	require.NoError(t, err)
	require.Equal(t, items, decoded)
}
