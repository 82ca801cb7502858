package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	scheduledto "dayplanner/internal/modules/schedule/dto"
	"dayplanner/internal/ui/components"
	"dayplanner/internal/ui/theme"
)

// savedFor is how long the "saved" indicator stays up after the last save.
const savedFor = time.Second

// ─── port ────────────────────────────────────────────────────────────────────

type plannerPort interface {
	Board(ctx context.Context) (scheduledto.BoardOutput, error)
	OnSave(ctx context.Context, slotKey, text string) (scheduledto.SaveOutput, error)
	Reset(ctx context.Context) (scheduledto.BoardOutput, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

type boardLoadedMsg struct {
	board scheduledto.BoardOutput
	err   error
}

type savedMsg struct {
	out  scheduledto.SaveOutput
	text string
	err  error
}

type hideSavedMsg struct{ seq int }

type externalChangeMsg struct{}

type watchClosedMsg struct{}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Edit  key.Binding
	Clear key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous hour")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next hour")),
		Edit:  key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Clear: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear slot")),
		Reset: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset day")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit},
		{k.Clear, k.Reset},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It renders one row per hour of the board,
// routes edits through the slot editor and hands saves to the planner port.
type Model struct {
	planner plannerPort
	changes <-chan struct{}

	board  scheduledto.BoardOutput
	loaded bool
	cursor int

	editor    components.SlotEditor
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	savedSeq  int
	showSaved bool
	width     int
	height    int
}

// NewModel builds the planner UI. changes may be nil; when set, each receive reloads the board.
func NewModel(planner plannerPort, changes <-chan struct{}) Model {
	return Model{
		planner: planner,
		changes: changes,
		editor:  components.NewSlotEditor(),
		keys:    defaultKeys(),
		help:    help.New(),
		status:  "loading…",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoardCmd(), m.waitForChangeCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.editor.SetWidth(min(m.width-4, 80))
		return m, nil

	case boardLoadedMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		if !m.loaded {
			m.status = "ready"
		}
		m.board = msg.board
		m.loaded = true
		if m.cursor >= len(m.board.Slots) {
			m.cursor = max(len(m.board.Slots)-1, 0)
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("%s %s", msg.out.SlotKey, msg.out.Change)
		m.savedSeq++
		m.showSaved = true
		seq := m.savedSeq
		hide := tea.Tick(savedFor, func(time.Time) tea.Msg { return hideSavedMsg{seq: seq} })
		if m.rolledOver(msg.out.LastUpdated) {
			// The store started a new day before writing; drop yesterday's rows and reclassify.
			m.clearSlots()
			m.applySave(msg.out.SlotKey, msg.text)
			m.status = "new day: " + m.status
			return m, tea.Batch(m.loadBoardCmd(), hide)
		}
		m.applySave(msg.out.SlotKey, msg.text)
		return m, hide

	case hideSavedMsg:
		if msg.seq == m.savedSeq {
			m.showSaved = false
		}
		return m, nil

	case externalChangeMsg:
		return m, tea.Batch(m.loadBoardCmd(), m.waitForChangeCmd())

	case watchClosedMsg:
		m.changes = nil
		return m, nil

	case components.EditorSubmitMsg:
		return m, m.saveCmd(msg.SlotKey, msg.Text)

	case components.EditorCancelMsg:
		m.status = "edit cancelled"
		return m, nil
	}

	// The editor takes every other message while it is open.
	if m.editor.Visible() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.showHelp {
		if keyMsg.String() == "?" || keyMsg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = true
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.board.Slots)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Edit):
		if slot, ok := m.selected(); ok {
			return m, m.editor.Open(slot.Key, slot.Label, slot.Text)
		}
	case key.Matches(keyMsg, m.keys.Clear):
		if slot, ok := m.selected(); ok && slot.HasText {
			return m, m.saveCmd(slot.Key, "")
		}
	case key.Matches(keyMsg, m.keys.Reset):
		m.status = "day reset"
		return m, m.resetCmd()
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var sb strings.Builder
	heading := m.board.Heading
	if heading == "" {
		heading = "Day Planner"
	}
	sb.WriteString(theme.Title.Render(heading))
	if m.showSaved {
		sb.WriteString("  " + theme.Hot.Render("saved ✓"))
	}
	sb.WriteString("\n\n")

	if !m.loaded {
		sb.WriteString(theme.Muted.Render(m.status) + "\n")
		return theme.App.Render(sb.String())
	}

	textW := m.width - 16
	if textW < 20 {
		textW = 48
	}
	for i, slot := range m.board.Slots {
		marker := "  "
		if i == m.cursor {
			marker = theme.Cursor.Render("▸ ")
		}
		text := slot.Text
		if !slot.HasText {
			text = " "
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			marker,
			theme.Hour.Render(slot.Label),
			theme.Phase(slot.Phase).Width(textW).Render(text),
		)
		sb.WriteString(row + "\n")
	}

	if m.editor.Visible() {
		sb.WriteString("\n" + m.editor.View() + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(m.status) + "\n")
	if m.showHelp {
		sb.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return theme.App.Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) selected() (scheduledto.SlotOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.board.Slots) {
		return scheduledto.SlotOutput{}, false
	}
	return m.board.Slots[m.cursor], true
}

// applySave updates the rendered slot without reclassifying the board.
func (m *Model) applySave(slotKey, text string) {
	for i := range m.board.Slots {
		if m.board.Slots[i].Key != slotKey {
			continue
		}
		if strings.TrimSpace(text) == "" {
			m.board.Slots[i].Text = ""
			m.board.Slots[i].HasText = false
		} else {
			m.board.Slots[i].Text = text
			m.board.Slots[i].HasText = true
		}
	}
}

func (m *Model) clearSlots() {
	for i := range m.board.Slots {
		m.board.Slots[i].Text = ""
		m.board.Slots[i].HasText = false
	}
}

// rolledOver reports whether a save landed on a later calendar day than the rendered board.
func (m Model) rolledOver(saved time.Time) bool {
	if saved.IsZero() || m.board.Day.IsZero() {
		return false
	}
	sy, sm, sd := saved.In(m.board.Day.Location()).Date()
	by, bm, bd := m.board.Day.Date()
	return sy != by || sm != bm || sd != bd
}

func (m Model) loadBoardCmd() tea.Cmd {
	return func() tea.Msg {
		board, err := m.planner.Board(context.Background())
		return boardLoadedMsg{board: board, err: err}
	}
}

func (m Model) saveCmd(slotKey, text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.planner.OnSave(context.Background(), slotKey, text)
		return savedMsg{out: out, text: text, err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		board, err := m.planner.Reset(context.Background())
		return boardLoadedMsg{board: board, err: err}
	}
}

func (m Model) waitForChangeCmd() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return watchClosedMsg{}
		}
		return externalChangeMsg{}
	}
}
