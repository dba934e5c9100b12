// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	colorOK    = lipgloss.Color("#2CD7C7")
	colorError = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#6C8A94")
)

type theme struct {
	ok      lipgloss.Style
	fail    lipgloss.Style
	source  lipgloss.Style
	subject lipgloss.Style
	muted   lipgloss.Style
}

func newTheme(w io.Writer, color bool) theme {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return theme{
		ok:      r.NewStyle().Foreground(colorOK).Bold(true),
		fail:    r.NewStyle().Foreground(colorError).Bold(true),
		source:  r.NewStyle().Bold(true),
		subject: r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

// UseColor decides whether output to w gets styled. mode is "always",
// "never" or "auto"; auto enables color for terminals unless NO_COLOR is set.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeText(w io.Writer, doc Document, color bool) error {
	th := newTheme(w, color)
	bw := bufio.NewWriter(w)

	for _, r := range doc.Reports {
		mark := th.ok.Render("✓")
		if !r.Valid {
			mark = th.fail.Render("✗")
		}
		fmt.Fprintf(bw, "%s %s %s\n", mark, th.source.Render(r.Source), r.Header)

		for _, f := range r.Findings {
			fmt.Fprintf(bw, "    %s %s %s\n",
				th.muted.Render(fmt.Sprintf("#%d", f.ID)),
				th.subject.Render(fmt.Sprintf("[%s]", f.Subject)),
				f.Message)
		}
	}

	if s := doc.Summary; s != nil {
		fmt.Fprintf(bw, "\n%d checked, %s, %s\n",
			s.Total,
			th.ok.Render(fmt.Sprintf("%d clean", s.Clean)),
			th.fail.Render(fmt.Sprintf("%d with issues", s.Failing)))
		for _, subj := range s.Subjects() {
			fmt.Fprintf(bw, "    %-14s %d\n", SubjectLabel(subj), s.BySubject[subj])
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
