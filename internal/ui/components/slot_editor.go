package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dayplanner/internal/ui/theme"
)

// EditorSubmitMsg is emitted when the user saves the slot being edited.
type EditorSubmitMsg struct {
	SlotKey string
	Text    string
}

// EditorCancelMsg is emitted when the user presses esc.
type EditorCancelMsg struct{}

var editorStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Peach).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(0, 1)

// SlotEditor is an overlay for editing one slot's note, backed by bubbles/textarea.
// Notes are free text: no length limit, newlines kept. enter inserts a newline, ctrl+s saves.
type SlotEditor struct {
	input   textarea.Model
	visible bool
	width   int
	slotKey string
	label   string

	// original is submitted verbatim when the text was not edited, since the
	// textarea normalises some runes (tabs, carriage returns) on load.
	original string
	loaded   string
}

func NewSlotEditor() SlotEditor {
	ta := textarea.New()
	ta.Placeholder = "what's happening this hour…"
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	return SlotEditor{input: ta}
}

func (e SlotEditor) Visible() bool { return e.visible }

// Open shows the editor pre-filled with the slot's current text.
func (e *SlotEditor) Open(slotKey, label, text string) tea.Cmd {
	e.visible = true
	e.slotKey = slotKey
	e.label = label
	e.input.SetValue(text)
	e.original = text
	e.loaded = e.input.Value()
	return e.input.Focus()
}

func (e *SlotEditor) SetWidth(w int) {
	e.width = w
	if w > 6 {
		e.input.SetWidth(w - 6)
	}
}

func (e SlotEditor) Update(msg tea.Msg) (SlotEditor, tea.Cmd) {
	if !e.visible {
		return e, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			e.visible = false
			e.input.Blur()
			return e, func() tea.Msg { return EditorCancelMsg{} }
		case "ctrl+s":
			submit := EditorSubmitMsg{SlotKey: e.slotKey, Text: e.input.Value()}
			if submit.Text == e.loaded {
				submit.Text = e.original
			}
			e.visible = false
			e.input.Blur()
			return e, func() tea.Msg { return submit }
		}
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

func (e SlotEditor) View() string {
	if !e.visible {
		return ""
	}
	body := theme.Title.Render("Edit "+e.label) + "\n" +
		e.input.View() + "\n" +
		theme.Muted.Render("ctrl+s: save  esc: cancel  enter: new line  (empty clears the slot)")
	w := e.width
	if w < 20 {
		w = 64
	}
	return editorStyle.Width(w - 2).Render(body)
}
