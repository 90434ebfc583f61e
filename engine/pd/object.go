package pd

// AtomFlavor discriminates the sub-kind of an otherwise ambiguous atom
// object ("gatom"): a float box, a symbol box, or a list box.
type AtomFlavor int

const (
	FlavorNull AtomFlavor = iota
	FlavorFloat
	FlavorSymbol
)

// TextType discriminates what a "text" class node actually is on the patch.
type TextType int

const (
	TextComment TextType = iota
	TextObject
	TextMessage
)

// Object is one node of the live object graph. The interpreter context owns
// it; GUI code never touches fields directly and goes through Instance and
// Patch queries instead. The struct pointer doubles as the opaque handle the
// listener table is keyed by.
type Object struct {
	Class    string
	SendText string // creation text, e.g. "osc~ 440"

	Flavor    AtomFlavor
	Type      TextType
	Patchable bool

	// Canvas sub-kinds: a "canvas"/"graph" node is an array holder, a
	// graph-on-parent, or a plain subpatch.
	IsGraph  bool
	HasArray bool

	// Reserved entries are interpreter bookkeeping nodes pinned to the
	// head of the display list; z-order moves never cross them.
	Reserved bool

	X, Y, Width, Height int

	// Scalar state, read and written only on the interpreter context.
	value    float32
	min, max float32
}

// Value reports the authoritative scalar. Interpreter context only.
func (o *Object) Value() float32 { return o.value }

// SetValue stores the authoritative scalar. Interpreter context only.
func (o *Object) SetValue(v float32) { o.value = v }

// Range reports the configured bounds. Both zero means "not configured".
func (o *Object) Range() (min, max float32) { return o.min, o.max }

func (o *Object) SetRange(min, max float32) { o.min, o.max = min, max }
