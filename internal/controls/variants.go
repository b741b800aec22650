package controls

import (
	"time"

	"github.com/vk/hclview/internal/cell"
)

// TextInput is an editable single-line text control.
type TextInput struct {
	base
	Value *cell.Cell[string]
}

// NewTextInput returns a text input with an empty value cell.
func NewTextInput(id string) *TextInput {
	return &TextInput{base: base{id: id}, Value: cell.New("")}
}

// Kind implements Node.
func (*TextInput) Kind() Kind { return KindTextInput }

// Label is a read-only text control; its value stays bindable so the model
// can drive it.
type Label struct {
	base
	Value *cell.Cell[string]
}

// NewLabel returns a label with an empty value cell.
func NewLabel(id string) *Label {
	return &Label{base: base{id: id}, Value: cell.New("")}
}

// Kind implements Node.
func (*Label) Kind() Kind { return KindLabel }

// NumberInput is an editable integer control.
type NumberInput struct {
	base
	Value *cell.Cell[int]
}

// NewNumberInput returns a number input seeded with zero.
func NewNumberInput(id string) *NumberInput {
	return &NumberInput{base: base{id: id}, Value: cell.New(0)}
}

// Kind implements Node.
func (*NumberInput) Kind() Kind { return KindNumberInput }

// Toggle is a two-state control.
type Toggle struct {
	base
	Value *cell.Cell[bool]
}

// NewToggle returns a toggle that starts off.
func NewToggle(id string) *Toggle {
	return &Toggle{base: base{id: id}, Value: cell.New(false)}
}

// Kind implements Node.
func (*Toggle) Kind() Kind { return KindToggle }

// Slider is a numeric control constrained to the [Min, Max] range by the
// rendering layer; the engine only carries the declared bounds.
type Slider struct {
	base
	Value *cell.Cell[float64]
	Min   float64
	Max   float64
}

// NewSlider returns a slider seeded with zero and no declared bounds.
func NewSlider(id string) *Slider {
	return &Slider{base: base{id: id}, Value: cell.New(0.0)}
}

// Kind implements Node.
func (*Slider) Kind() Kind { return KindSlider }

// DatePicker selects a point in time.
type DatePicker struct {
	base
	Value *cell.Cell[time.Time]
}

// NewDatePicker returns a date picker seeded with the zero time.
func NewDatePicker(id string) *DatePicker {
	return &DatePicker{base: base{id: id}, Value: cell.New(time.Time{})}
}

// Kind implements Node.
func (*DatePicker) Kind() Kind { return KindDatePicker }

// Column stacks its children vertically.
type Column struct {
	Box
}

// NewColumn returns an empty column.
func NewColumn(id string) *Column {
	return &Column{Box: Box{base: base{id: id}}}
}

// Kind implements Node.
func (*Column) Kind() Kind { return KindColumn }

// Row lays its children out horizontally.
type Row struct {
	Box
}

// NewRow returns an empty row.
func NewRow(id string) *Row {
	return &Row{Box: Box{base: base{id: id}}}
}

// Kind implements Node.
func (*Row) Kind() Kind { return KindRow }

// Group is a plain grouping container with no layout semantics of its own.
// Nested views load into groups.
type Group struct {
	Box
}

// NewGroup returns an empty group.
func NewGroup(id string) *Group {
	return &Group{Box: Box{base: base{id: id}}}
}

// Kind implements Node.
func (*Group) Kind() Kind { return KindGroup }
