package report

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"num":  formatNumber,
	"cell": escapeCell,
}

var costSheetTemplate = template.Must(
	template.New("cost_sheet.md").Funcs(funcs).ParseFS(templates, "templates/cost_sheet.md"),
)

// RenderMarkdown renders the sheet as a markdown document.
func RenderMarkdown(sheet *CostSheet) (string, error) {
	var b strings.Builder
	if err := costSheetTemplate.Execute(&b, sheet); err != nil {
		return "", fmt.Errorf("render cost sheet: %w", err)
	}
	return b.String(), nil
}

// formatNumber prints quantities without trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeCell keeps free text from breaking a table row
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
