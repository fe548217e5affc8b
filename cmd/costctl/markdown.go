package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// markdownWrapWidth matches a typical wide terminal
const markdownWrapWidth = 120

// printMarkdown renders md for the terminal
func printMarkdown(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrapWidth),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
