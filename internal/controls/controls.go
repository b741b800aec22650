// Package controls defines the closed set of UI node variants a view
// document can produce.
//
// Every variant carries a kind tag, so the binding resolver dispatches on
// the tag instead of open-ended type inspection. Leaf variants own a typed
// value cell matching their natural kind; container variants hold children
// and may own a controller object built by the dependency registry.
package controls

// Kind tags a node variant with the block type it decodes from.
type Kind int

const (
	KindTextInput Kind = iota
	KindNumberInput
	KindToggle
	KindSlider
	KindDatePicker
	KindLabel
	KindColumn
	KindRow
	KindGroup
)

// String returns the markup block type for the kind.
func (k Kind) String() string {
	switch k {
	case KindTextInput:
		return "text_input"
	case KindNumberInput:
		return "number_input"
	case KindToggle:
		return "toggle"
	case KindSlider:
		return "slider"
	case KindDatePicker:
		return "date_picker"
	case KindLabel:
		return "label"
	case KindColumn:
		return "column"
	case KindRow:
		return "row"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Node is one element of a loaded view tree. NodeID is empty for nodes the
// markup left unlabeled.
type Node interface {
	NodeID() string
	Kind() Kind
}

// Container is a node that holds an ordered list of child nodes.
type Container interface {
	Node
	Children() []Node
	SetChildren([]Node)
}

// ControllerHost is a node that can own a controller object.
type ControllerHost interface {
	Node
	AttachController(any)
}

// base carries the identity every variant shares.
type base struct {
	id string
}

// NodeID returns the node's stable identifier.
func (b base) NodeID() string { return b.id }

// Box is the common body of the container variants.
type Box struct {
	base
	children []Node

	// ControllerName is the constructor name the markup's controller
	// attribute referenced, or empty. Controller holds the built instance.
	ControllerName string
	Controller     any
}

// Children returns the node's children in document order.
func (b *Box) Children() []Node { return b.children }

// SetChildren replaces the node's children. Nested-view resolution uses
// this to splice a loaded sub-tree into its host container.
func (b *Box) SetChildren(nodes []Node) { b.children = nodes }

// AttachController stores the built controller instance on the node.
func (b *Box) AttachController(v any) { b.Controller = v }
