package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/hclview/internal/cell"
)

// The variant set is closed; these assignments pin the interface surface of
// every member.
var (
	_ Node = (*TextInput)(nil)
	_ Node = (*NumberInput)(nil)
	_ Node = (*Toggle)(nil)
	_ Node = (*Slider)(nil)
	_ Node = (*DatePicker)(nil)
	_ Node = (*Label)(nil)

	_ Container      = (*Column)(nil)
	_ Container      = (*Row)(nil)
	_ Container      = (*Group)(nil)
	_ ControllerHost = (*Column)(nil)
	_ ControllerHost = (*Row)(nil)
	_ ControllerHost = (*Group)(nil)
)

func TestKind_BlockTypeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text_input", KindTextInput.String())
	assert.Equal(t, "date_picker", KindDatePicker.String())
	assert.Equal(t, "column", KindColumn.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestLeafConstructors_SeedTypedCells(t *testing.T) {
	t.Parallel()

	text := NewTextInput("name_field")
	assert.Equal(t, "name_field", text.NodeID())
	assert.Equal(t, KindTextInput, text.Kind())
	assert.Equal(t, cell.KindString, text.Value.Kind())

	num := NewNumberInput("")
	assert.Empty(t, num.NodeID())
	assert.Equal(t, cell.KindInt, num.Value.Kind())

	assert.Equal(t, cell.KindBool, NewToggle("t").Value.Kind())
	assert.Equal(t, cell.KindFloat, NewSlider("s").Value.Kind())
	assert.True(t, NewDatePicker("d").Value.Value().IsZero())
}

func TestContainer_ChildManagement(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	col := NewColumn("root")
	first := NewTextInput("a")
	second := NewToggle("b")

	// --- Act ---
	col.SetChildren([]Node{first, second})

	// --- Assert ---
	children := col.Children()
	require.Len(t, children, 2)
	assert.Same(t, first, children[0])
	assert.Same(t, second, children[1])

	// Replacing children drops the previous set, as nested-view splicing
	// relies on.
	col.SetChildren([]Node{second})
	require.Len(t, col.Children(), 1)
}

func TestContainer_ControllerAttachment(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	group := NewGroup("g")
	group.ControllerName = "form"
	type formController struct{ ready bool }
	instance := &formController{ready: true}

	// --- Act ---
	group.AttachController(instance)

	// --- Assert ---
	require.NotNil(t, group.Controller)
	assert.Same(t, instance, group.Controller)
	assert.Equal(t, "form", group.ControllerName)
}
