// Package export serializes a selection of items into a multi-sheet
// spreadsheet workbook: one sheet per item type present in the selection,
// plus a leading metadata sheet when exporting in project context.
package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// maxSheetNameLen is the hard ceiling of the xlsx format. Truncation is
// applied even when it produces duplicate sheet names.
const maxSheetNameLen = 31

// timestampFormat renders CreatedAt/UpdatedAt cells.
const timestampFormat = "1/2/2006, 3:04:05 PM"

// metadataSheetName is the leading sheet of a project export.
const metadataSheetName = "Project Info"

// Column width heuristic: content length plus padding, capped.
const (
	colWidthPadding = 2
	colWidthMax     = 50
)

// BuildWorkbook turns the selected items into a workbook. Items are grouped
// by TypeName in first-encounter order; each group's sheet is shaped by the
// first type in typeList whose name matches the group. Groups with no
// matching type are skipped. When project is non-nil a metadata sheet is
// prepended.
//
// An empty selection is a no-op: the returned file is nil and no error is
// reported.
func BuildWorkbook(items []types.Item, typeList []types.ItemType, project *types.Project) (*excelize.File, error) {
	if len(items) == 0 {
		return nil, nil
	}

	f := excelize.NewFile()
	named := false

	// addSheet renames the default sheet on first use so the workbook has
	// no leftover empty sheet.
	addSheet := func(name string) error {
		if !named {
			named = true
			return f.SetSheetName(f.GetSheetName(0), name)
		}
		_, err := f.NewSheet(name)
		return err
	}

	if project != nil {
		if err := addSheet(metadataSheetName); err != nil {
			return nil, fmt.Errorf("add metadata sheet: %w", err)
		}
		if err := writeRows(f, metadataSheetName, projectRows(project, len(items))); err != nil {
			return nil, err
		}
	}

	for _, group := range groupByTypeName(items) {
		t, ok := typeByName(typeList, group.typeName)
		if !ok {
			// No schema to shape the sheet; the group cannot be exported.
			continue
		}

		sheet := truncateSheetName(group.typeName)
		if err := addSheet(sheet); err != nil {
			return nil, fmt.Errorf("add sheet %q: %w", sheet, err)
		}

		rows := make([][]string, 0, len(group.items)+1)
		rows = append(rows, headerRow(t))
		for _, item := range group.items {
			rows = append(rows, dataRow(t, item))
		}
		if err := writeRows(f, sheet, rows); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// typeGroup is one partition of the selection, keyed by TypeName.
type typeGroup struct {
	typeName string
	items    []types.Item
}

// groupByTypeName partitions items by TypeName, preserving the order in
// which each name is first encountered.
func groupByTypeName(items []types.Item) []typeGroup {
	index := make(map[string]int)
	groups := []typeGroup{}
	for _, item := range items {
		i, ok := index[item.TypeName]
		if !ok {
			i = len(groups)
			index[item.TypeName] = i
			groups = append(groups, typeGroup{typeName: item.TypeName})
		}
		groups[i].items = append(groups[i].items, item)
	}
	return groups
}

// typeByName returns the first type with the given name. When several types
// share a name the first one wins; this is a known limitation.
func typeByName(typeList []types.ItemType, name string) (types.ItemType, bool) {
	for _, t := range typeList {
		if t.Name == name {
			return t, true
		}
	}
	return types.ItemType{}, false
}

// headerRow builds the header for a type's sheet: ID and Created At, then
// the field names in declared order.
func headerRow(t types.ItemType) []string {
	row := make([]string, 0, len(t.Fields)+2)
	row = append(row, "ID", "Created At")
	for _, f := range t.Fields {
		row = append(row, f.Name)
	}
	return row
}

// dataRow builds one record row, rendering each value through its field's
// kind rules. Missing values render as empty strings.
func dataRow(t types.ItemType, item types.Item) []string {
	row := make([]string, 0, len(t.Fields)+2)
	row = append(row, item.ItemID, item.CreatedAt.Format(timestampFormat))
	for _, f := range t.Fields {
		row = append(row, f.RenderValue(item.Data[f.FieldID]))
	}
	return row
}

// projectRows builds the key/value rows of the metadata sheet.
// resolvedCount is the number of member items that actually resolved.
func projectRows(p *types.Project, resolvedCount int) [][]string {
	return [][]string{
		{"Name", p.Name},
		{"Description", p.Description},
		{"Location", p.Location},
		{"Created At", p.CreatedAt.Format(timestampFormat)},
		{"Updated At", p.UpdatedAt.Format(timestampFormat)},
		{"Items", fmt.Sprintf("%d", resolvedCount)},
	}
}

// writeRows writes the rows to the sheet and sizes every column with the
// display-width heuristic.
func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("row %d of sheet %q: %w", i+1, sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d of sheet %q: %w", i+1, sheet, err)
		}
	}
	for i, width := range columnWidths(rows) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column %d of sheet %q: %w", i+1, sheet, err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("size column %s of sheet %q: %w", col, sheet, err)
		}
	}
	return nil
}

// columnWidths computes min(longest cell in the column + padding, cap) for
// every column. A sizing heuristic only, but it must stay deterministic so
// repeated exports of the same data are identical.
func columnWidths(rows [][]string) []float64 {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]float64, cols)
	for _, row := range rows {
		for i, cell := range row {
			if w := float64(len([]rune(cell)) + colWidthPadding); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, w := range widths {
		if w > colWidthMax {
			widths[i] = colWidthMax
		}
	}
	return widths
}

// truncateSheetName enforces the format's sheet-name ceiling.
func truncateSheetName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxSheetNameLen {
		return name
	}
	return string(runes[:maxSheetNameLen])
}

// Write saves the workbook into dir under the given filename and returns the
// full path.
func Write(f *excelize.File, dir, filename string) (string, error) {
	path := filepath.Join(dir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}
