package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pescuma/strategist/lib/session"
)

type Options struct {
	// MarkdownStyle is the glamour style of the deep research tab; empty detects it.
	MarkdownStyle string
}

func Run(sess *session.Session, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}

	p := tea.NewProgram(New(sess, opts), tea.WithAltScreen())

	_, err := p.Run()
	return err
}
