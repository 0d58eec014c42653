package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	sc := NewStatusComponent()
	assert.Equal(t, " Shortcuts: suspended | F1=Help", sc.Text())

	sc.SetLayout("demo")
	sc.SetBinding(14, 1)
	assert.Equal(t, " Layout: demo | Shortcuts: 14 bound, 1 unassigned | F1=Help", sc.Text())

	sc.SetLastDispatch("Ctrl+S Save")
	sc.SetMessage("saved buffer")
	assert.Equal(t, " Layout: demo | Shortcuts: 14 bound, 1 unassigned | Last: Ctrl+S Save | saved buffer | F1=Help", sc.Text())

	sc.SetBinding(3, 0)
	assert.NotContains(t, sc.Text(), "unassigned")

	sc.ClearBinding()
	assert.Contains(t, sc.Text(), "Shortcuts: suspended")
}
