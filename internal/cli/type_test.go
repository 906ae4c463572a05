package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/pkg/catalog"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

func TestParseFieldSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    catalog.FieldDraft
		wantErr bool
	}{
		{
			name: "name and kind only",
			spec: "Price:number",
			want: catalog.FieldDraft{Name: "Price", Kind: "number"},
		},
		{
			name: "required marker",
			spec: "Name:text:required",
			want: catalog.FieldDraft{Name: "Name", Kind: "text", Required: true},
		},
		{
			name: "optional marker",
			spec: "Notes:text:optional",
			want: catalog.FieldDraft{Name: "Notes", Kind: "text"},
		},
		{
			name: "select with options",
			spec: "Status:select:required:todo,doing,done",
			want: catalog.FieldDraft{Name: "Status", Kind: "select", Required: true, Options: "todo,doing,done"},
		},
		{
			name: "select options keep embedded commas intact",
			spec: "Size:select:optional:small, medium ,large",
			want: catalog.FieldDraft{Name: "Size", Kind: "select", Options: "small, medium ,large"},
		},
		{
			name:    "missing kind",
			spec:    "JustAName",
			wantErr: true,
		},
		{
			name:    "unknown kind",
			spec:    "Flag:checkbox",
			wantErr: true,
		},
		{
			name:    "bad third segment",
			spec:    "Name:text:mandatory",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFieldSpec(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSetValues(t *testing.T) {
	typ := types.ItemType{
		TypeID: "t1",
		Name:   "Products",
		Fields: []types.FieldSchema{
			{FieldID: "f1", Name: "Name", Kind: types.KindText},
			{FieldID: "f2", Name: "Price", Kind: types.KindNumber},
		},
	}

	t.Run("resolves field names to ids", func(t *testing.T) {
		data, err := parseSetValues(typ, []string{"Name=Widget", "Price=9.99"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"f1": "Widget", "f2": "9.99"}, data)
	})

	t.Run("accepts field ids directly", func(t *testing.T) {
		data, err := parseSetValues(typ, []string{"f1=Widget"})
		require.NoError(t, err)
		assert.Equal(t, "Widget", data["f1"])
	})

	t.Run("value may contain equals signs", func(t *testing.T) {
		data, err := parseSetValues(typ, []string{"Name=a=b"})
		require.NoError(t, err)
		assert.Equal(t, "a=b", data["f1"])
	})

	t.Run("unknown field is an error", func(t *testing.T) {
		_, err := parseSetValues(typ, []string{"Color=red"})
		require.Error(t, err)
	})

	t.Run("missing separator is an error", func(t *testing.T) {
		_, err := parseSetValues(typ, []string{"Name"})
		require.Error(t, err)
	})
}
