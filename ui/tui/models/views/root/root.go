// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/navinput/buildvars"
	"github.com/toeirei/navinput/control"
	"github.com/toeirei/navinput/internal/i18n"
	"github.com/toeirei/navinput/internal/journal"
	"github.com/toeirei/navinput/internal/layout"
	"github.com/toeirei/navinput/internal/logging"
	"github.com/toeirei/navinput/ui/tui/models/components/header"
	"github.com/toeirei/navinput/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/navinput/ui/tui/models/helpers/form/input"
	windowtitle "github.com/toeirei/navinput/ui/tui/models/helpers/title"
	"github.com/toeirei/navinput/ui/tui/models/views/footer"
	"github.com/toeirei/navinput/ui/tui/util"
	"github.com/toeirei/navinput/util/slicest"
)

const title string = "navinput"

// Recorder stores control events. *journal.Journal implements it.
type Recorder interface {
	Record(ctx context.Context, e *journal.Event) error
}

// Config tunes the demo program.
type Config struct {
	// Focused and Blurred are lipgloss colors.
	Focused      string
	Blurred      string
	ShowTabIndex bool
	// Recorder is optional.
	Recorder Recorder
}

type statusMsg string

func statusCmd(status string) tea.Cmd {
	return func() tea.Msg { return statusMsg(status) }
}

type Model struct {
	ctx      context.Context
	keyMap   KeyMap
	header   *header.Model
	form     form.Form[map[string]any]
	footer   *footer.Model
	recorder Recorder
	kinds    map[string]control.Kind
	activeID string

	titleHandler *windowtitle.TitleHandler
}

// New builds a form from spec. Each control is rendered with a focus
// provider backed by the form, so the control holding focus gets tab
// index 0 and every other one -1 unless the layout pins a value.
func New(ctx context.Context, spec *layout.Spec, cfg Config) (*Model, error) {
	m := &Model{
		ctx:          ctx,
		keyMap:       BaseKeyMap(),
		header:       header.New(spec.Title, buildvars.VersionOrDefault("dev")),
		recorder:     cfg.Recorder,
		kinds:        make(map[string]control.Kind, len(spec.Controls)),
		titleHandler: windowtitle.NewHandler(title, " | "),
	}
	m.footer = footer.New(m.keyMap)

	styles := forminput.DefaultStyles()
	if cfg.Focused != "" && cfg.Blurred != "" {
		styles = forminput.ThemedStyles(lipgloss.Color(cfg.Focused), lipgloss.Color(cfg.Blurred))
	}

	opts := []form.NewOpt[map[string]any]{
		form.WithTop[map[string]any](m.header.Height()),
		form.WithOnEvent[map[string]any](m.onEvent),
		form.WithOnSubmit(m.onSubmit),
	}
	for _, row := range spec.Rows() {
		items := make([]form.RowItem, 0, len(row))
		for _, index := range row {
			entry := spec.Controls[index]
			label := entry.Label
			if label == "" {
				label = entry.ID
			}
			input, err := forminput.NewControl(label, entry.Props())
			if err != nil {
				return nil, fmt.Errorf("control %q: %w", entry.ID, err)
			}
			input.Styles = styles
			input.ShowTabIndex = cfg.ShowTabIndex
			m.kinds[entry.ID] = entry.Kind()
			items = append(items, form.RowItem{ID: entry.ID, Input: input})
		}
		opts = append(opts, form.WithRow[map[string]any](items...))
	}
	m.form = form.New(opts...)

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.form.Init()
	focusCmd, keyMap := m.form.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd, m.syncTitle())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.header.Update(msg)
		footerCmd := m.footer.Update(msg)
		var formCmd tea.Cmd
		m.form, formCmd = m.form.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: max(msg.Height-m.header.Height()-m.footer.Height(), 0),
		})
		return m, tea.Batch(footerCmd, formCmd)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.footer.ToggleExpanded()
			return m, nil
		}
	case util.AnnounceKeyMapMsg:
		return m, m.footer.Update(msg)
	case statusMsg:
		m.footer.SetStatus(string(msg))
		return m, nil
	}

	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, tea.Batch(cmd, m.syncTitle())
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.form.View(),
		m.footer.View(),
	)
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

// ActiveID returns the id of the control holding focus.
func (m *Model) ActiveID() string {
	return m.form.ActiveID()
}

// Status returns the current status line.
func (m *Model) Status() string {
	return m.footer.Status()
}

func (m *Model) syncTitle() tea.Cmd {
	id := m.form.ActiveID()
	if id == m.activeID {
		return nil
	}
	m.activeID = id
	return windowtitle.Set(id)
}

func (m *Model) onEvent(id string, action form.Action) tea.Cmd {
	var status tea.Cmd
	switch action {
	case form.ActionSubmit:
		// onSubmit reports the submitted values
	case form.ActionBlur:
		status = statusCmd(i18n.T("demo.focus_dropped"))
	default:
		status = statusCmd(i18n.T("demo.event", id, action))
	}

	kind := m.kinds[id]
	name, ok := journalAction(kind, action)
	if !ok || m.recorder == nil {
		return status
	}

	ctx, recorder := m.ctx, m.recorder
	event := &journal.Event{ControlID: id, Kind: kind.String(), Action: name}
	return tea.Batch(status, func() tea.Msg {
		if err := recorder.Record(ctx, event); err != nil {
			logging.Warnf("journal: %v", err)
			return statusMsg(i18n.T("demo.journal_error", err))
		}
		return nil
	})
}

func (m *Model) onSubmit(values map[string]any, err error) tea.Cmd {
	if err != nil {
		logging.Errorf("decode form values: %v", err)
		return statusCmd(err.Error())
	}

	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	filled := slicest.Filter(ids, func(id string) bool {
		switch v := values[id].(type) {
		case string:
			return v != ""
		case bool:
			return v
		}
		return false
	})
	logging.Infof("form submitted with %d values", len(filled))
	return statusCmd(i18n.T("demo.submitted", strings.Join(filled, ", ")))
}

// journalAction names the journal action for what a control of kind
// reported. Only clicks, submits, blurs and toggles are recorded.
func journalAction(kind control.Kind, action form.Action) (string, bool) {
	switch action {
	case form.ActionSubmit:
		if kind.Group() == control.TextLike {
			return journal.ActionSubmit, true
		}
		return journal.ActionClick, true
	case form.ActionActivate:
		return journal.ActionClick, true
	case form.ActionChange:
		return journal.ActionToggle, true
	case form.ActionBlur:
		return journal.ActionBlur, true
	}
	return "", false
}
