package sales

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The item snapshot column holds either a JSONB array or, for rows written by
// the legacy gateway, a JSON string containing the serialized array. Both
// forms normalize through this codec; nothing else reads the column directly.

func encodeSnapshot(items []Item) ([]byte, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("sales: encode snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(raw []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, fmt.Errorf("sales: decode legacy snapshot: %w", err)
		}
		trimmed = []byte(inner)
	}
	var items []Item
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("sales: decode snapshot: %w", err)
	}
	return items, nil
}
