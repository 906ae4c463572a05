// Project commands: create, list, show, add, remove, delete.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/catalog"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(newProjectCreateCmd())
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectShowCmd())
	cmd.AddCommand(newProjectAddCmd())
	cmd.AddCommand(newProjectRemoveCmd())
	cmd.AddCommand(newProjectDeleteCmd())
	return cmd
}

func newProjectCreateCmd() *cobra.Command {
	var (
		name        string
		description string
		location    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
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
			snap, p, err := catalog.CreateProject(snap, name, description, location)
			if err != nil {
				return err
			}
			if err := store.Save(snap); err != nil {
				return err
			}

			if flags.jsonMode {
				return printJSON(cmd, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s: %s\n", p.ProjectID, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name for the project (required)")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringVar(&location, "location", "", "location of the project (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
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

			projects := catalog.ListProjects(snap)
			if flags.jsonMode {
				return printJSON(cmd, projects)
			}
			for _, p := range projects {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d items)\n", p.ProjectID, p.Name, len(p.ItemIDs))
			}
			return nil
		},
	}
}

func newProjectShowCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "show PROJECT_ID",
		Short: "Show a project and its resolved member items",
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

			p, err := catalog.GetProject(snap, args[0])
			if err != nil {
				return fmt.Errorf("project %s: %w", args[0], err)
			}

			members := catalog.Search(catalog.ProjectItems(snap, p), query)
			if flags.jsonMode {
				return printJSON(cmd, struct {
					Project any `json:"project"`
					Items   any `json:"items"`
				}{p, members})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", p.ProjectID, p.Name)
			if p.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p.Description)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  location: %s\n", p.Location)
			for _, item := range members {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", item.ItemID, item.TypeName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "case-insensitive substring filter over member items")
	return cmd
}

func newProjectAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add PROJECT_ID ITEM_ID...",
		Short: "Add items to a project",
		Long: `Add links the given item IDs into the project's membership. IDs already
present are skipped silently; the IDs are not checked against the item
collection.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMembershipUpdate(cmd, args[0], args[1:], catalog.AddProjectItems)
		},
	}
}

func newProjectRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT_ID ITEM_ID...",
		Short: "Remove items from a project",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMembershipUpdate(cmd, args[0], args[1:], catalog.RemoveProjectItems)
		},
	}
}

func newProjectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Delete removes the project. The items it referenced are not touched.",
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
			snap, err = catalog.DeleteProject(snap, args[0])
			if err != nil {
				return fmt.Errorf("project %s: %w", args[0], err)
			}
			if err := store.Save(snap); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
			return nil
		},
	}
}

// membershipOp is the shape of AddProjectItems and RemoveProjectItems.
type membershipOp func(snap types.Snapshot, projectID string, ids []string) (types.Snapshot, types.Project, error)

// runMembershipUpdate applies one membership operation and persists the
// result.
func runMembershipUpdate(cmd *cobra.Command, projectID string, itemIDs []string, op membershipOp) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	snap, err := store.Load()
	if err != nil {
		return err
	}
	snap, p, err := op(snap, projectID, itemIDs)
	if err != nil {
		return fmt.Errorf("project %s: %w", projectID, err)
	}
	if err := store.Save(snap); err != nil {
		return err
	}

	if flags.jsonMode {
		return printJSON(cmd, p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Project %s now references %d item(s)\n", p.ProjectID, len(p.ItemIDs))
	return nil
}
