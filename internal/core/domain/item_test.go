package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_Unmarshal(t *testing.T) {
	raw := `{
		"key": "NOTE0001",
		"version": 7,
		"data": {
			"key": "NOTE0001",
			"version": 7,
			"itemType": "note",
			"note": "<div data-schema-version=\"9\"><h1>Reading notes</h1></div>",
			"parentItem": "ITEM0001",
			"tags": [{"tag": "to-read"}]
		}
	}`

	var item Item
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, "NOTE0001", item.Key)
	assert.True(t, item.IsNote())
	assert.False(t, item.IsPDFAttachment())
	assert.Equal(t, "ITEM0001", item.Data.ParentItem)
	assert.Len(t, item.Data.Tags, 1)
}

func TestItem_IsPDFAttachment(t *testing.T) {
	item := Item{Data: ItemData{ItemType: ItemTypeAttachment, ContentType: ContentTypePDF}}
	assert.True(t, item.IsPDFAttachment())

	item.Data.ContentType = "text/html"
	assert.False(t, item.IsPDFAttachment())

	item.Data.ItemType = "journalArticle"
	assert.False(t, item.IsPDFAttachment())
}

func TestCreator_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		creator  Creator
		expected string
	}{
		{
			name:     "first and last name",
			creator:  Creator{FirstName: "Ada", LastName: "Lovelace"},
			expected: "Ada Lovelace",
		},
		{
			name:     "last name only",
			creator:  Creator{LastName: "Lovelace"},
			expected: "Lovelace",
		},
		{
			name:     "single field name wins",
			creator:  Creator{Name: "Royal Society", FirstName: "ignored"},
			expected: "Royal Society",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.creator.DisplayName())
		})
	}
}
