package domain

import (
	"encoding/json"
	"fmt"
)

// Collection is a named grouping of items. Collections form a tree:
// each collection has at most one parent.
type Collection struct {
	Key     string         `json:"key"`
	Version int            `json:"version"`
	Data    CollectionData `json:"data"`
}

// CollectionData holds the fields of a collection.
type CollectionData struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Version int    `json:"version"`

	// ParentCollection is the key of the parent collection. The API
	// encodes "no parent" as the JSON literal false, hence the custom type.
	ParentCollection ParentKey `json:"parentCollection"`
}

// ParentKey is a collection parent reference: either a collection key
// or absent. Zotero serialises the absent case as false rather than
// null or an empty string.
type ParentKey string

// UnmarshalJSON accepts either a string key or the literal false.
func (p *ParentKey) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		*p = ParentKey(key)
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			return fmt.Errorf("parentCollection: unexpected value true")
		}
		*p = ""
		return nil
	}

	return fmt.Errorf("parentCollection: expected string or false, got %s", data)
}

// MarshalJSON emits false for the empty key, matching the API encoding.
func (p ParentKey) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("false"), nil
	}
	return json.Marshal(string(p))
}

// IsRoot reports whether the collection has no parent.
func (p ParentKey) IsRoot() bool {
	return p == ""
}
