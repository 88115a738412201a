// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tabular/cmd/tabular/cli"
	"github.com/bureau-foundation/tabular/lib/record"
	"github.com/bureau-foundation/tabular/lib/style"
	"github.com/bureau-foundation/tabular/lib/table"
)

type viewParams struct {
	Format    string `flag:"format,f" desc:"input format: auto, csv, json, yaml, cbor, markdown" default:"auto"`
	Style     string `flag:"style,s" desc:"table style (see 'tabular styles')"`
	Width     string `flag:"width,w" desc:"column width: 0 for automatic, one number for every column, or a comma-separated per-column list"`
	Precision int    `flag:"precision,p" desc:"significant digits for float cells"`
	Align     string `flag:"align" desc:"string cell alignment: left, right, center"`
	Color     string `flag:"color" desc:"color output: auto, always, never"`
}

func viewCommand() *cli.Command {
	var params viewParams
	return &cli.Command{
		Name:    "view",
		Summary: "Page through a table full-screen",
		Description: `Render records and open the result in a full-screen scrollable
viewer. Navigation follows the usual pager conventions: j/k or the
arrow keys move by line, Ctrl-U/Ctrl-D by half a page, g and G jump to
the top and bottom, and q quits. The title bar shows the source, the
table dimensions, and the active style.

Tables wider than the terminal are not squeezed here the way
'render --max-width' squeezes them; the viewer is for reading a table
at its natural width.`,
		Usage: "tabular view [file] [flags]",
		Examples: []cli.Example{
			{
				Description: "View a compressed CSV at full width",
				Command:     "tabular view measurements.csv.gz",
			},
			{
				Description: "View query results piped from another tool",
				Command:     "dbquery --json | tabular view --format json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("view", &params)
		},
		Run: func(args []string) error {
			return runView(&params, args)
		},
	}
}

func runView(params *viewParams, args []string) error {
	if len(args) > 1 {
		return cli.Usagef("view takes at most one file argument, got %d", len(args))
	}
	format, err := record.ParseFormat(params.Format)
	if err != nil {
		return err
	}
	set, source, err := readInput(args, format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := tableOptions(cfg, params.Style, params.Width, params.Align, params.Precision)
	if err != nil {
		return err
	}
	mode, err := colorMode(cfg, params.Color)
	if err != nil {
		return err
	}
	theme := newTheme(mode)

	layout, err := table.NewLayout(set.Headers, set.Rows, opts)
	if err != nil {
		return err
	}
	lines, err := themedLines(layout, set.Headers, set.Rows, theme)
	if err != nil {
		return err
	}

	styleName := opts.Style
	if styleName == "" {
		styleName = style.DefaultName
	}
	model := viewModel{
		keys:      viewKeys,
		theme:     theme,
		source:    source,
		rows:      len(set.Rows),
		columns:   len(set.Headers),
		styleName: styleName,
	}
	model.viewport.SetContent(strings.Join(lines, "\n"))

	options := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if source == "stdin" {
		// The data arrived through stdin, so key input has to come
		// from the terminal directly.
		options = append(options, tea.WithInputTTY())
	}
	program := tea.NewProgram(model, options...)
	_, err = program.Run()
	return err
}

// viewKeyMap defines the key bindings for the table viewer.
type viewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Quit     key.Binding
}

// viewKeys is the built-in binding set. Vim-style navigation (j/k)
// alongside standard arrow keys and page up/down.
var viewKeys = viewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// viewModel is the bubbletea model for the table viewer: a viewport
// holding the pre-rendered table, a one-line title bar above it, and a
// one-line key help footer below.
type viewModel struct {
	viewport  viewport.Model
	keys      viewKeyMap
	theme     Theme
	source    string
	rows      int
	columns   int
	styleName string

	width  int
	height int
	ready  bool
}

func (model viewModel) Init() tea.Cmd {
	return nil
}

func (model viewModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.Up):
			model.viewport.LineUp(1)
		case key.Matches(message, model.keys.Down):
			model.viewport.LineDown(1)
		case key.Matches(message, model.keys.PageUp):
			model.viewport.HalfViewUp()
		case key.Matches(message, model.keys.PageDown):
			model.viewport.HalfViewDown()
		case key.Matches(message, model.keys.Home):
			model.viewport.GotoTop()
		case key.Matches(message, model.keys.End):
			model.viewport.GotoBottom()
		}

	case tea.MouseMsg:
		switch message.Button {
		case tea.MouseButtonWheelUp:
			model.viewport.LineUp(3)
		case tea.MouseButtonWheelDown:
			model.viewport.LineDown(3)
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.viewport.Width = message.Width
		model.viewport.Height = message.Height - 2
		if model.viewport.Height < 1 {
			model.viewport.Height = 1
		}
		model.ready = true
	}
	return model, nil
}

func (model viewModel) View() string {
	if !model.ready {
		return "Loading..."
	}
	title := fmt.Sprintf(" %s  %d rows × %d columns  %s",
		model.source, model.rows, model.columns, model.styleName)
	help := fmt.Sprintf(" j/k scroll  C-u/C-d page  g/G top/bottom  q quit  %3.0f%%",
		model.viewport.ScrollPercent()*100)
	return model.theme.Title.Width(model.width).Render(title) + "\n" +
		model.viewport.View() + "\n" +
		model.theme.Help.Render(help)
}
