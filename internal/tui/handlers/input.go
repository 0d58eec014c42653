package handlers

import (
	"github.com/gdamore/tcell/v2"

	"autokeys/internal/components"
	"autokeys/internal/keystroke"
	"autokeys/internal/log"
)

// InputHandler is the application's base input capture. The shortcut
// dispatcher is installed on top of it and passes through every keystroke
// it has no entry for.
type InputHandler struct {
	hotkeys      *components.Hotkeys
	modalVisible bool

	// Callbacks
	onCloseModal func()
}

// NewInputHandler creates a new input handler
func NewInputHandler(hotkeys *components.Hotkeys) *InputHandler {
	return &InputHandler{hotkeys: hotkeys}
}

// SetCallbacks sets the callback functions
func (ih *InputHandler) SetCallbacks(onCloseModal func()) {
	ih.onCloseModal = onCloseModal
}

// SetModalVisible sets the modal visibility state
func (ih *InputHandler) SetModalVisible(visible bool) {
	ih.modalVisible = visible
}

// ModalVisible reports whether a modal currently owns the keyboard.
func (ih *InputHandler) ModalVisible() bool {
	return ih.modalVisible
}

// HandleKeyEvent handles key events based on the modal state
func (ih *InputHandler) HandleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	log.Debug("key event", "keystroke", keystroke.FromEvent(event).String(), "modal", ih.modalVisible)

	if ih.modalVisible {
		return ih.handleModalInput(event)
	}
	if ih.hotkeys != nil && ih.hotkeys.HandleKeyEvent(event) {
		return nil
	}
	return event
}

// handleModalInput handles input when a modal is visible
func (ih *InputHandler) handleModalInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if ih.onCloseModal != nil {
			ih.onCloseModal()
		}
		return nil
	}
	return event
}
