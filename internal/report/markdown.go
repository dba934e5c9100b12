// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Markdown renders doc as a Markdown document.
func Markdown(doc Document) string {
	var b strings.Builder
	b.WriteString(RenderHeader(1, "Commit header report"))

	rows := make([][]string, 0, len(doc.Reports))
	for _, r := range doc.Reports {
		status := "ok"
		if !r.Valid {
			status = strconv.Itoa(len(r.Findings)) + " issue(s)"
		}
		rows = append(rows, []string{code(r.Source), code(r.Header), status})
	}
	b.WriteString(RenderTable([]string{"Source", "Header", "Status"}, rows))

	for _, r := range doc.Reports {
		if r.Valid {
			continue
		}
		b.WriteString("\n")
		b.WriteString(RenderHeader(2, r.Source))
		items := make([]string, 0, len(r.Findings))
		for _, f := range r.Findings {
			items = append(items, fmt.Sprintf("**%s** %s", SubjectLabel(f.Subject), f.Message))
		}
		b.WriteString(RenderList(items))
	}

	if s := doc.Summary; s != nil {
		b.WriteString("\n")
		b.WriteString(RenderHeader(2, "Summary"))
		b.WriteString(RenderList([]string{
			fmt.Sprintf("checked: %d", s.Total),
			fmt.Sprintf("clean: %d", s.Clean),
			fmt.Sprintf("with issues: %d", s.Failing),
		}))
		if len(s.BySubject) > 0 {
			b.WriteString("\n")
			rows := make([][]string, 0, len(s.BySubject))
			for _, subj := range s.Subjects() {
				rows = append(rows, []string{SubjectLabel(subj), strconv.Itoa(s.BySubject[subj])})
			}
			b.WriteString(RenderTable([]string{"Subject", "Issues"}, rows))
		}
	}
	return b.String()
}

// RenderTable renders a Markdown table.
// It assumes rows are already sorted if determinism is required.
func RenderTable(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return b.String()
}

// RenderList renders a simple unordered Markdown list.
func RenderList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

// RenderHeader renders a Markdown header.
func RenderHeader(level int, text string) string {
	return fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), text)
}

// code wraps s in an inline code span. Empty text stays empty.
func code(s string) string {
	if s == "" {
		return ""
	}
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") || strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}
