// Item type commands: create, list, show.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/catalog"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

func newTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Manage item types",
	}
	cmd.AddCommand(newTypeCreateCmd())
	cmd.AddCommand(newTypeListCmd())
	cmd.AddCommand(newTypeShowCmd())
	return cmd
}

func newTypeCreateCmd() *cobra.Command {
	var (
		typeName   string
		fieldSpecs []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new item type",
		Long: `Create registers a new item type composed of field definitions.

Each --field takes the form NAME:KIND[:required|optional][:OPTIONS]
where KIND is one of text, number, date, select, and OPTIONS is a
comma-separated list used only by select fields.

Example:
  shelf type create --name Products --field Name:text:required --field Price:number
  shelf type create --name Tasks --field Status:select:required:todo,doing,done`,
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts := make([]catalog.FieldDraft, 0, len(fieldSpecs))
			for _, spec := range fieldSpecs {
				draft, err := parseFieldSpec(spec)
				if err != nil {
					return err
				}
				drafts = append(drafts, draft)
			}

			store, err := attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			snap, err := store.Load()
			if err != nil {
				return err
			}
			snap, created, err := catalog.CreateType(snap, typeName, drafts)
			if err != nil {
				return err
			}
			if err := store.Save(snap); err != nil {
				return err
			}

			if flags.jsonMode {
				return printJSON(cmd, created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created type %s: %s (%d fields)\n", created.TypeID, created.Name, len(created.Fields))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "name", "", "name for the type (required)")
	cmd.Flags().StringArrayVar(&fieldSpecs, "field", nil, "field definition NAME:KIND[:required|optional][:OPTIONS] (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTypeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered item types",
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

			registered := catalog.ListTypes(snap)
			if flags.jsonMode {
				return printJSON(cmd, registered)
			}
			for _, t := range registered {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d fields)\n", t.TypeID, t.Name, len(t.Fields))
			}
			return nil
		},
	}
}

func newTypeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show TYPE_ID",
		Short: "Show one item type with its fields",
		Args:  cobra.ExactArgs(1),
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

			t, err := catalog.GetType(snap, args[0])
			if err != nil {
				return fmt.Errorf("type %s: %w", args[0], err)
			}

			if flags.jsonMode {
				return printJSON(cmd, t)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", t.TypeID, t.Name)
			for _, f := range t.Fields {
				line := fmt.Sprintf("  %s  %s (%s)", f.FieldID, f.Name, f.Kind)
				if f.Required {
					line += " required"
				}
				if len(f.Options) > 0 {
					line += " [" + strings.Join(f.Options, ", ") + "]"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

// parseFieldSpec parses one --field value of the form
// NAME:KIND[:required|optional][:OPTIONS].
func parseFieldSpec(spec string) (catalog.FieldDraft, error) {
	parts := strings.SplitN(spec, ":", 4)
	if len(parts) < 2 {
		return catalog.FieldDraft{}, fmt.Errorf("invalid field spec %q: want NAME:KIND[:required|optional][:OPTIONS]", spec)
	}

	draft := catalog.FieldDraft{
		Name: strings.TrimSpace(parts[0]),
		Kind: strings.TrimSpace(parts[1]),
	}
	if len(parts) >= 3 {
		switch strings.TrimSpace(parts[2]) {
		case "required":
			draft.Required = true
		case "optional", "":
			// Optional is the default.
		default:
			return catalog.FieldDraft{}, fmt.Errorf("invalid field spec %q: third segment must be required or optional", spec)
		}
	}
	if len(parts) == 4 {
		draft.Options = parts[3]
	}
	if !types.IsValidFieldKind(draft.Kind) {
		return catalog.FieldDraft{}, fmt.Errorf("invalid field spec %q: unknown kind %q", spec, draft.Kind)
	}
	return draft, nil
}
