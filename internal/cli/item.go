// Item commands: add, list, delete.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/catalog"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage items",
	}
	cmd.AddCommand(newItemAddCmd())
	cmd.AddCommand(newItemListCmd())
	cmd.AddCommand(newItemDeleteCmd())
	return cmd
}

func newItemAddCmd() *cobra.Command {
	var (
		typeID string
		sets   []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new item against a type",
		Long: `Add creates an item conforming to the given type. Values are supplied
with repeated --set flags keyed by field name (or field ID).

Example:
  shelf item add --type TYPE_ID --set "Name=Widget" --set "Price=9.99"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			snap, err := store.Load()
			if err != nil {
				return err
			}

			t, err := catalog.GetType(snap, typeID)
			if err != nil {
				return fmt.Errorf("type %s: %w", typeID, err)
			}

			data, err := parseSetValues(t, sets)
			if err != nil {
				return err
			}

			snap, item, err := catalog.CreateItem(snap, t, data)
			if err != nil {
				return err
			}
			if err := store.Save(snap); err != nil {
				return err
			}

			if flags.jsonMode {
				return printJSON(cmd, item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created item %s (%s)\n", item.ItemID, item.TypeName)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeID, "type", "", "ID of the item type (required)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as FIELD=VALUE (repeatable)")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newItemListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items, optionally filtered by a free-text query",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			snap, err := store.Load()
			if err != nil {
				return err
			}

			matched := catalog.Search(snap.Items, query)
			if flags.jsonMode {
				return printJSON(cmd, matched)
			}
			for _, item := range matched {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", item.ItemID, item.TypeName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "case-insensitive substring filter")
	return cmd
}

func newItemDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ITEM_ID...",
		Short: "Delete items and clean project memberships",
		Long: `Delete removes the given items and strips them from every project
that references them, in one atomic update. Unknown IDs are ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			snap, err := store.Load()
			if err != nil {
				return err
			}

			snap, removed := catalog.DeleteItems(snap, args)
			if len(removed) > 0 {
				if err := store.Save(snap); err != nil {
					return err
				}
			}

			if flags.jsonMode {
				return printJSON(cmd, removed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d item(s)\n", len(removed))
			return nil
		},
	}
}

// parseSetValues turns --set FIELD=VALUE pairs into a field-id→value map.
// FIELD may be a field name (first match wins) or a field ID.
func parseSetValues(t types.ItemType, sets []string) (map[string]string, error) {
	data := make(map[string]string, len(sets))
	for _, set := range sets {
		key, value, found := strings.Cut(set, "=")
		if !found {
			return nil, fmt.Errorf("invalid value %q: want FIELD=VALUE", set)
		}
		key = strings.TrimSpace(key)

		f, ok := t.FieldByName(key)
		if !ok {
			f, ok = t.Field(key)
		}
		if !ok {
			return nil, fmt.Errorf("type %s has no field %q", t.Name, key)
		}
		data[f.FieldID] = value
	}
	return data, nil
}
