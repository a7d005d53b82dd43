// Package tui implements the interactive mapping browser.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/themebind/internal/config"
	"github.com/jmylchreest/themebind/internal/mapping"
	"github.com/jmylchreest/themebind/internal/output"
)

// Mode represents the current view mode.
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
	ModeSearch
	ModeHelp
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Padding(0, 1)

	statusInfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	searchBarStyle = lipgloss.NewStyle().Padding(0, 1)

	barKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	barDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	detailLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(11)
	detailNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errTextStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	label string
	err   error
}

func showStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Model is the top-level BubbleTea model for the browser.
type Model struct {
	cfg     *config.Config
	mapping *mapping.Mapping

	mode     Mode
	prevMode Mode

	list        list.Model
	viewport    viewport.Model
	searchInput textinput.Model
	help        help.Model
	keys        KeyMap

	colors       []entry
	bindings     []entry
	showBindings bool
	searchQuery  string
	selected     *entry

	width  int
	height int
	ready  bool

	status    string
	statusErr bool
}

// New creates a browser over the given mapping.
func New(cfg *config.Config, m *mapping.Mapping) Model {
	colors := buildColorEntries(m)
	bindings := buildBindingEntries(m)

	l := list.New(toItems(colors), newEntryDelegate(), 0, 0)
	l.Title = "Colors"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	ti := textinput.New()
	ti.Placeholder = "name, target or value"
	ti.Prompt = "/ "

	return Model{
		cfg:         cfg,
		mapping:     m,
		mode:        ModeList,
		list:        l,
		searchInput: ti,
		help:        help.New(),
		keys:        DefaultKeyMap(),
		colors:      colors,
		bindings:    bindings,
	}
}

func toItems(entries []entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	return items
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, msg.Height-3)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		return m, nil

	case statusMsg:
		m.status = msg.text
		m.statusErr = msg.isErr
		return m, clearStatusAfter(3 * time.Second)

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, showStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		}
		return m, showStatus(fmt.Sprintf("copied %s", msg.label), false)

	case tea.KeyMsg:
		switch m.mode {
		case ModeDetail:
			return m.handleDetailKey(msg)
		case ModeSearch:
			return m.handleSearchKey(msg)
		case ModeHelp:
			return m.handleHelpKey(msg)
		default:
			return m.handleListKey(msg)
		}
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.prevMode = m.mode
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.searchQuery)
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.ToggleView):
		m.showBindings = !m.showBindings
		if m.showBindings {
			m.list.Title = "Bindings"
		} else {
			m.list.Title = "Colors"
		}
		return m, m.refreshItems()

	case key.Matches(msg, m.keys.Enter):
		if e, ok := m.list.SelectedItem().(entry); ok {
			m.selected = &e
			m.mode = ModeDetail
			m.viewport.SetContent(m.renderDetail(e))
			m.viewport.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if e, ok := m.list.SelectedItem().(entry); ok {
			return m, m.copyEntry(e, false)
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyRef):
		if e, ok := m.list.SelectedItem().(entry); ok {
			return m, m.copyEntry(e, true)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.searchInput.SetValue("")
			return m, m.refreshItems()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Enter):
		m.mode = ModeList
		m.selected = nil
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.prevMode = m.mode
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.selected != nil {
			return m, m.copyEntry(*m.selected, false)
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyRef):
		if m.selected != nil {
			return m, m.copyEntry(*m.selected, true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchQuery = m.searchInput.Value()
		m.searchInput.Blur()
		m.mode = ModeList
		return m, m.refreshItems()

	case "esc":
		m.searchQuery = ""
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.mode = ModeList
		return m, m.refreshItems()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = m.searchInput.Value()
	return m, tea.Batch(cmd, m.refreshItems())
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back),
		key.Matches(msg, m.keys.Help),
		key.Matches(msg, m.keys.Quit):
		m.mode = m.prevMode
	}
	return m, nil
}

// refreshItems reloads the list from the active dataset and search query.
func (m *Model) refreshItems() tea.Cmd {
	entries := m.colors
	if m.showBindings {
		entries = m.bindings
	}
	return m.list.SetItems(toItems(filterEntries(entries, m.searchQuery)))
}

// copyEntry copies the entry's literal value or, with ref set, its
// qualified reference.
func (m Model) copyEntry(e entry, ref bool) tea.Cmd {
	text := e.value
	if ref {
		text = e.ref()
	} else if e.value == "" {
		return showStatus("nothing to copy: "+e.err, true)
	}
	cfg := m.cfg
	return func() tea.Msg {
		return copyResultMsg{label: text, err: copyText(text, cfg)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	switch m.mode {
	case ModeDetail:
		b.WriteString(m.viewport.View())
	case ModeHelp:
		b.WriteString(m.renderHelp())
	case ModeSearch:
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(searchBarStyle.Render(m.searchInput.View()))
	default:
		b.WriteString(m.list.View())
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())

	if m.cfg.TUI.ShowHelp && m.mode != ModeHelp && m.mode != ModeSearch {
		b.WriteString("\n")
		b.WriteString(m.keybindBar())
	}

	return b.String()
}

func (m Model) statusLine() string {
	if m.status != "" {
		style := statusInfoStyle
		if m.statusErr {
			style = statusErrStyle
		}
		return style.Render(" " + m.status)
	}

	total, label := len(m.colors), "colors"
	if m.showBindings {
		total, label = len(m.bindings), "bindings"
	}
	s := fmt.Sprintf(" %d/%d %s", len(m.list.Items()), total, label)
	if m.searchQuery != "" {
		s += fmt.Sprintf("  query %q", m.searchQuery)
	}
	return barDescStyle.Render(s)
}

// keybindBar renders the bottom key hint bar for the active mode,
// dropping trailing hints that do not fit the terminal width.
func (m Model) keybindBar() string {
	var binds []key.Binding
	switch m.mode {
	case ModeDetail:
		binds = []key.Binding{m.keys.Copy, m.keys.CopyRef, m.keys.Back, m.keys.Quit}
	default:
		binds = []key.Binding{
			m.keys.Enter, m.keys.Copy, m.keys.CopyRef,
			m.keys.ToggleView, m.keys.Search, m.keys.Help, m.keys.Quit,
		}
	}

	parts := make([]string, 0, len(binds))
	for _, b := range binds {
		h := b.Help()
		parts = append(parts, barKeyStyle.Render(h.Key)+" "+barDescStyle.Render(h.Desc))
	}
	for len(parts) > 1 && m.width > 0 && lipgloss.Width(" "+strings.Join(parts, "  ")) > m.width {
		parts = parts[:len(parts)-1]
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) renderHelp() string {
	m.help.ShowAll = true
	content := titleStyle.Render("Keys") + "\n\n" + m.help.View(m.keys)
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// renderDetail renders the detail pane for an entry, including the full
// resolution chain for bindings and shadowing info for colors.
func (m Model) renderDetail(e entry) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(e.ref()))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(detailLabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	if e.kind == kindBinding {
		row("category", e.group)
		row("element", e.name)
		row("target", e.target)
		if e.err != "" {
			row("error", errTextStyle.Render(e.err))
		} else {
			row("value", output.Swatch(e.value)+" "+e.value)
			b.WriteString("\n")
			b.WriteString(detailNoteStyle.Render(fmt.Sprintf("%s -> %s -> %s", e.ref(), e.target, e.value)))
			b.WriteString("\n")
		}
	} else {
		row("group", e.group)
		row("name", e.name)
		row("value", output.Swatch(e.value)+" "+e.value)
		if owners := m.mapping.Colors.Shadowed()[e.name]; len(owners) > 1 {
			b.WriteString("\n")
			row("defined in", strings.Join(owners, ", "))
			b.WriteString(detailNoteStyle.Render(fmt.Sprintf("unqualified %q resolves via group %q", e.name, owners[0])))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// entryDelegate renders entries with a leading swatch, a shadowing
// marker and error highlighting.
type entryDelegate struct {
	list.DefaultDelegate
}

func newEntryDelegate() entryDelegate {
	d := entryDelegate{DefaultDelegate: list.NewDefaultDelegate()}
	d.ShowDescription = true
	return d
}

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(entry)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	titleStyle := d.Styles.NormalTitle
	descStyle := d.Styles.NormalDesc
	if index == m.Index() {
		titleStyle = d.Styles.SelectedTitle
		descStyle = d.Styles.SelectedDesc
	}

	title := e.Title()
	if e.shadowed {
		title += " *"
	}
	desc := e.Description()
	if e.err != "" {
		desc = errTextStyle.Render(desc)
	} else {
		desc = descStyle.Render(desc)
	}

	fmt.Fprintf(w, "%s %s\n   %s", output.Swatch(e.value), titleStyle.Render(title), desc)
}

// RunOptions configures a browser run.
type RunOptions struct {
	Config  *config.Config
	Mapping *mapping.Mapping
}

// Run starts the interactive browser and blocks until it exits.
func Run(opts RunOptions) error {
	p := tea.NewProgram(New(opts.Config, opts.Mapping), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
