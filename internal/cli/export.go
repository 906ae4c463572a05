// Export command: serialize a selection of items to a workbook file.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/catalog"
	"github.com/mesh-intelligence/shelf/pkg/export"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

func newExportCmd() *cobra.Command {
	var (
		projectID string
		query     string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export items to a multi-sheet workbook",
		Long: `Export writes one sheet per item type present in the selection. With
--project the selection is the project's resolved members and a metadata
sheet leads the workbook. An empty selection produces no file.

Example:
  shelf export
  shelf export --project PROJECT_ID --out ./exports
  shelf export --query acme`,
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

			var (
				candidates []types.Item
				project    *types.Project
				subject    string
			)
			if projectID != "" {
				p, err := catalog.GetProject(snap, projectID)
				if err != nil {
					return fmt.Errorf("project %s: %w", projectID, err)
				}
				candidates = catalog.ProjectItems(snap, p)
				project = &p
				subject = p.Name
			} else {
				candidates = snap.Items
			}

			selection := catalog.Search(candidates, query)
			workbook, err := export.BuildWorkbook(selection, snap.Types, project)
			if err != nil {
				return fmt.Errorf("build workbook: %w", err)
			}
			if workbook == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to export")
				return nil
			}

			path, err := export.Write(workbook, outDir, export.Filename(subject, time.Now()))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d item(s) to %s\n", len(selection), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "export a project's member items")
	cmd.Flags().StringVar(&query, "query", "", "case-insensitive substring filter")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}
