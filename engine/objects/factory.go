package objects

import (
	"github.com/weftworks/weft/engine/pd"
	"github.com/weftworks/weft/engine/ui"
)

// constructor builds one widget variant for an interpreter object.
type constructor func(*pd.Patch, *pd.Object, *Arena) Widget

// constructors is the closed class-name dispatch table, built once at
// startup. Ambiguous classes resolve by sub-kind inside their entry, using
// only data available at construction time.
var constructors map[string]constructor

func init() {
	constructors = map[string]constructor{
		"bng":      newBang,
		"button":   newButton,
		"tgl":      newToggle,
		"hsl":      newSliderH,
		"vsl":      newSliderV,
		"slider":   newSlider,
		"hradio":   newRadioH,
		"vradio":   newRadioV,
		"nbx":      newNumberBox,
		"numbox~":  newSignalNumberBox,
		"cnv":      newCanvasWidget,
		"vu":       newVUMeter,
		"message":  newMessageBox,
		"pic":      newPicture,
		"scope~":   newScope,
		"function": newFunctionWidget,

		// "text" is an object box only when the node's text type says so;
		// otherwise it is a free-standing comment.
		"text": func(p *pd.Patch, o *pd.Object, a *Arena) Widget {
			if o.Type == pd.TextObject {
				return newTextObject(p, o, a)
			}
			return newComment(p, o, a)
		},

		// "gatom" splits on the atom flavor.
		"gatom": func(p *pd.Patch, o *pd.Object, a *Arena) Widget {
			switch o.Flavor {
			case pd.FlavorFloat:
				return newFloatAtom(p, o, a)
			case pd.FlavorSymbol:
				return newSymbolAtom(p, o, a)
			default:
				return newListAtom(p, o, a)
			}
		},

		// A nested canvas is an array holder, a graph-on-parent, or a plain
		// subpatch.
		"canvas": newNestedCanvas,
		"graph":  newNestedCanvas,
	}
}

func newNestedCanvas(p *pd.Patch, o *pd.Object, a *Arena) Widget {
	switch {
	case o.HasArray:
		return newArrayWidget(p, o, a)
	case o.IsGraph:
		return newGraphOnParent(p, o, a)
	default:
		return newSubpatch(p, o, a)
	}
}

// CreateGUI maps an interpreter object to exactly one widget variant and
// attaches it under parent. Unknown patchable classes fall back to the
// generic text box; non-patchable objects get an invisible placeholder.
// The mapping is total and deterministic.
func CreateGUI(patch *pd.Patch, obj *pd.Object, parent ui.Element, arena *Arena) Widget {
	if obj == nil {
		return nil
	}
	var w Widget
	if ctor, ok := constructors[patch.Instance().ObjectClassName(obj)]; ok {
		w = ctor(patch, obj, arena)
	} else if !obj.Patchable {
		w = newNonPatchable(patch, obj, arena)
	} else {
		w = newTextObject(patch, obj, arena)
	}
	if parent != nil {
		parent.Base().AddChild(w)
	}
	return w
}
