// Package report renders and exports deduplication results.
//
// A Result bundles the groups with run metadata (source, threshold, stats)
// and can be written as JSON, CSV, or an Excel workbook. The CLI picks the
// export format from the destination file extension.
package report
