package format

import (
	"encoding/json"
	"fmt"
	"os"
)

// ItemTable maps item object IDs to display names. The table is loaded
// from a keywords dump the vendor's search endpoint returns; a missing
// table is fine — lookups then fall back to the raw ID.
type ItemTable struct {
	names map[string]string
}

type keywordsDump struct {
	Data struct {
		Keywords []struct {
			ObjectID   json.Number `json:"objectID"`
			ObjectName string      `json:"objectName"`
		} `json:"keywords"`
	} `json:"data"`
}

// LoadItemTable reads a keywords dump file.
func LoadItemTable(path string) (*ItemTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item table: %w", err)
	}
	var dump keywordsDump
	if err := json.Unmarshal(raw, &dump); err != nil {
		return nil, fmt.Errorf("parse item table: %w", err)
	}
	t := &ItemTable{names: make(map[string]string, len(dump.Data.Keywords))}
	for _, kw := range dump.Data.Keywords {
		t.names[kw.ObjectID.String()] = kw.ObjectName
	}
	return t, nil
}

// Name resolves an item ID, falling back to the ID itself. Safe on a
// nil table.
func (t *ItemTable) Name(id string) string {
	if t == nil {
		return id
	}
	if name, ok := t.names[id]; ok {
		return name
	}
	return id
}

// Len reports how many items the table knows.
func (t *ItemTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}
