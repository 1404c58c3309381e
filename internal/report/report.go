package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"namefold/internal/dedupe"
)

// Result is a complete deduplication run: the groups plus the metadata
// needed to reproduce them.
type Result struct {
	Source      string         `json:"source,omitempty"`
	Threshold   float64        `json:"threshold"`
	GeneratedAt time.Time      `json:"generated_at"`
	Names       int            `json:"names"`
	Groups      []dedupe.Group `json:"groups"`
	Stats       dedupe.Stats   `json:"stats"`
}

// New assembles a Result, filling in stats and timestamp.
func New(source string, threshold float64, names int, groups []dedupe.Group) Result {
	return Result{
		Source:      source,
		Threshold:   threshold,
		GeneratedAt: time.Now().UTC(),
		Names:       names,
		Groups:      groups,
		Stats:       dedupe.Summarize(groups),
	}
}

// WriteJSON writes the result as indented JSON.
func WriteJSON(w io.Writer, result Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

var csvHeader = []string{"Group", "Block Key", "Member"}

// WriteCSV writes one row per group member, tagged with the 1-based group
// index and the block key the group was found under.
func WriteCSV(w io.Writer, result Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, group := range result.Groups {
		for _, member := range group.Members {
			record := []string{strconv.Itoa(i + 1), group.Key, member}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

const xlsxSheet = "Duplicate Groups"

// WriteXLSX writes the result as an Excel workbook with one row per group
// member.
func WriteXLSX(path string, result Result) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	headers := []string{"Group", "Block Key", "Size", "Member"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(xlsxSheet, cell, header)
		f.SetCellStyle(xlsxSheet, cell, cell, headerStyle)
	}

	row := 2
	for i, group := range result.Groups {
		for _, member := range group.Members {
			f.SetCellValue(xlsxSheet, fmt.Sprintf("A%d", row), i+1)
			f.SetCellValue(xlsxSheet, fmt.Sprintf("B%d", row), group.Key)
			f.SetCellValue(xlsxSheet, fmt.Sprintf("C%d", row), group.Size())
			f.SetCellValue(xlsxSheet, fmt.Sprintf("D%d", row), member)
			row++
		}
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(xlsxSheet, col, col, 18)
	}

	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// ExportFile writes the result to path, picking the format from the file
// extension: .json, .csv, or .xlsx.
func ExportFile(path string, result Result) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return exportTo(path, result, WriteJSON)
	case ".csv":
		return exportTo(path, result, WriteCSV)
	case ".xlsx":
		return WriteXLSX(path, result)
	default:
		return fmt.Errorf("unsupported export extension %q (want .json, .csv, or .xlsx)", filepath.Ext(path))
	}
}

func exportTo(path string, result Result, write func(io.Writer, Result) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if err := write(file, result); err != nil {
		return err
	}
	return file.Close()
}
