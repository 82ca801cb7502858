package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var saveKey = tea.KeyMsg{Type: tea.KeyCtrlS}

func TestSlotEditorSubmitsEditedText(t *testing.T) {
	t.Parallel()
	e := NewSlotEditor()
	e.Open("hour-14", "2PM", "call")
	require.True(t, e.Visible())
	require.Contains(t, e.View(), "Edit 2PM")

	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" mom")})
	e, cmd := e.Update(saveKey)
	require.False(t, e.Visible())
	require.Equal(t, EditorSubmitMsg{SlotKey: "hour-14", Text: "call mom"}, cmd())
	require.Empty(t, e.View())
}

func TestSlotEditorEnterInsertsNewline(t *testing.T) {
	t.Parallel()
	e := NewSlotEditor()
	e.Open("hour-9", "9AM", "first")
	e, cmd := e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, e.Visible(), "enter does not save")
	if cmd != nil {
		_, isSubmit := cmd().(EditorSubmitMsg)
		require.False(t, isSubmit)
	}
	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("second")})
	_, cmd = e.Update(saveKey)
	require.Equal(t, EditorSubmitMsg{SlotKey: "hour-9", Text: "first\nsecond"}, cmd())
}

func TestSlotEditorUneditedNoteIsSubmittedVerbatim(t *testing.T) {
	t.Parallel()
	notes := []string{
		strings.Repeat("a", 600),
		"line one\nline two",
		"col\tumns",
		"windows\r\nline",
		strings.Repeat("line\n", 150),
	}
	for _, note := range notes {
		e := NewSlotEditor()
		e.SetWidth(40)
		e.Open("hour-10", "10AM", note)
		_, cmd := e.Update(saveKey)
		msg, ok := cmd().(EditorSubmitMsg)
		require.True(t, ok)
		require.Equal(t, note, msg.Text)
	}
}

func TestSlotEditorKeepsLongNotesWhenEditing(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("b", 600)
	e := NewSlotEditor()
	e.Open("hour-10", "10AM", long)
	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	_, cmd := e.Update(saveKey)
	require.Equal(t, long+"!", cmd().(EditorSubmitMsg).Text)
}

func TestSlotEditorEscCancels(t *testing.T) {
	t.Parallel()
	e := NewSlotEditor()
	e.Open("hour-9", "9AM", "")
	e, cmd := e.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, e.Visible())
	require.Equal(t, EditorCancelMsg{}, cmd())
}

func TestClosedSlotEditorIgnoresKeys(t *testing.T) {
	t.Parallel()
	e := NewSlotEditor()
	e, cmd := e.Update(saveKey)
	require.Nil(t, cmd)
	require.False(t, e.Visible())
}
