package handlers

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"autokeys/internal/components"
	"autokeys/internal/keystroke"
)

func TestHotkeysRunOutsideModal(t *testing.T) {
	hotkeys := components.NewHotkeys()
	var helps int
	hotkeys.Register(keystroke.MustParse("F1"), "Help", func() { helps++ })

	ih := NewInputHandler(hotkeys)

	assert.Nil(t, ih.HandleKeyEvent(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)))
	assert.Equal(t, 1, helps)

	other := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	assert.Same(t, other, ih.HandleKeyEvent(other))
}

func TestModalInput(t *testing.T) {
	hotkeys := components.NewHotkeys()
	var helps, closes int
	hotkeys.Register(keystroke.MustParse("F1"), "Help", func() { helps++ })

	ih := NewInputHandler(hotkeys)
	ih.SetCallbacks(func() { closes++ })
	ih.SetModalVisible(true)
	assert.True(t, ih.ModalVisible())

	f1 := tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)
	assert.Same(t, f1, ih.HandleKeyEvent(f1))
	assert.Zero(t, helps)

	assert.Nil(t, ih.HandleKeyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, 1, closes)
}
