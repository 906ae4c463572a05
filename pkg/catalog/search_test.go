package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

func TestMatches(t *testing.T) {
	item := types.Item{
		TypeName: "Contacts",
		Data:     map[string]string{"field1": "Acme Corp"},
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "lowercase substring of a value", query: "acme", want: true},
		{name: "uppercase substring of a value", query: "CORP", want: true},
		{name: "no contiguous match", query: "acme widget", want: false},
		{name: "matches the type name", query: "contact", want: true},
		{name: "empty query matches everything", query: "", want: true},
		{name: "whitespace-only query matches everything", query: "   ", want: true},
		{name: "no match at all", query: "zebra", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(item, tt.query))
		})
	}
}

func TestSearch(t *testing.T) {
	items := []types.Item{
		{ItemID: "1", TypeName: "Contacts", Data: map[string]string{"f": "Acme Corp"}},
		{ItemID: "2", TypeName: "Products", Data: map[string]string{"f": "Widget"}},
		{ItemID: "3", TypeName: "Contacts", Data: map[string]string{"f": "Globex"}},
	}

	t.Run("preserves input order", func(t *testing.T) {
		got := Search(items, "contacts")
		if len(got) != 2 || got[0].ItemID != "1" || got[1].ItemID != "3" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, Search(items, ""), 3)
	})
}
