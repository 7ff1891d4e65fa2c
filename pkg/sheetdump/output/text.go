// Package output renders sheet dumps as plain text.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/models"
)

// BannerWidth is the number of '=' characters in a banner line.
const BannerWidth = 150

// Separator joins cell texts within a row.
const Separator = " | "

// Banner returns a line of width '=' characters.
func Banner(width int) string {
	return strings.Repeat("=", width)
}

// FormatRow joins the row's cell texts with Separator. Rows shorter than
// width are padded with empty cells.
func FormatRow(row models.Row, width int) string {
	texts := row.Texts()
	for len(texts) < width {
		texts = append(texts, "")
	}
	return strings.Join(texts, Separator)
}

// Write renders the dump framed by banners and flushes it to w.
func Write(w io.Writer, dump *models.SheetDump, title string) error {
	bw := bufio.NewWriter(w)
	banner := Banner(BannerWidth)

	lines := []string{banner, title, banner}
	for _, row := range dump.Rows {
		lines = append(lines, FormatRow(row, dump.Width))
	}
	lines = append(lines, banner)

	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSchema writes one CREATE TABLE script per table, separated by a
// blank line, and flushes it to w.
func WriteSchema(w io.Writer, tables []models.Table) error {
	bw := bufio.NewWriter(w)
	for i, table := range tables {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(table.CreateTableSQL()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
