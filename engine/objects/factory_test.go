package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/engine/pd"
)

func build(t *testing.T, f *fixture, obj *pd.Object) Widget {
	t.Helper()
	f.patch.AddObject(obj)
	w := CreateGUI(f.patch, obj, nil, f.arena)
	require.NotNil(t, w)
	t.Cleanup(w.Close)
	return w
}

func TestCreateGUIClassMapping(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name string
		obj  *pd.Object
		kind Kind
	}{
		{"tgl", &pd.Object{Class: "tgl", Patchable: true}, KindToggle},
		{"bng", &pd.Object{Class: "bng", Patchable: true}, KindBang},
		{"button", &pd.Object{Class: "button", Patchable: true}, KindButton},
		{"hsl", &pd.Object{Class: "hsl", Patchable: true}, KindSliderH},
		{"vsl", &pd.Object{Class: "vsl", Patchable: true}, KindSliderV},
		{"wide slider", &pd.Object{Class: "slider", Patchable: true, Width: 128, Height: 16}, KindSliderH},
		{"tall slider", &pd.Object{Class: "slider", Patchable: true, Width: 16, Height: 128}, KindSliderV},
		{"hradio", &pd.Object{Class: "hradio", Patchable: true, Width: 120, Height: 15}, KindRadioH},
		{"vradio", &pd.Object{Class: "vradio", Patchable: true, Width: 15, Height: 120}, KindRadioV},
		{"nbx", &pd.Object{Class: "nbx", Patchable: true}, KindNumber},
		{"numbox~", &pd.Object{Class: "numbox~", Patchable: true}, KindSignalNumber},
		{"cnv", &pd.Object{Class: "cnv", Patchable: true}, KindCanvas},
		{"vu", &pd.Object{Class: "vu", Patchable: true}, KindVU},
		{"message", &pd.Object{Class: "message", Patchable: true}, KindMessage},
		{"pic", &pd.Object{Class: "pic", Patchable: true}, KindPicture},
		{"scope~", &pd.Object{Class: "scope~", Patchable: true}, KindScope},
		{"function", &pd.Object{Class: "function", Patchable: true}, KindFunction},

		{"text as object", &pd.Object{Class: "text", Patchable: true, Type: pd.TextObject}, KindTextObject},
		{"text as comment", &pd.Object{Class: "text", Patchable: true, Type: pd.TextComment}, KindComment},

		{"gatom float", &pd.Object{Class: "gatom", Patchable: true, Flavor: pd.FlavorFloat}, KindFloatAtom},
		{"gatom symbol", &pd.Object{Class: "gatom", Patchable: true, Flavor: pd.FlavorSymbol}, KindSymbolAtom},
		{"gatom null", &pd.Object{Class: "gatom", Patchable: true, Flavor: pd.FlavorNull}, KindListAtom},

		{"canvas with array", &pd.Object{Class: "canvas", Patchable: true, HasArray: true}, KindArray},
		{"canvas as graph", &pd.Object{Class: "canvas", Patchable: true, IsGraph: true}, KindGraphOnParent},
		{"plain subpatch", &pd.Object{Class: "canvas", Patchable: true}, KindSubpatch},
		{"graph alias", &pd.Object{Class: "graph", Patchable: true, IsGraph: true}, KindGraphOnParent},

		{"unknown class", &pd.Object{Class: "osc~", Patchable: true}, KindTextObject},
		{"not patchable", &pd.Object{Class: "midiclock", Patchable: false}, KindNonPatchable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, build(t, f, tc.obj).Kind())
		})
	}
}

func TestCreateGUIIsDeterministic(t *testing.T) {
	f := newFixture(t)

	for class := range constructors {
		a := build(t, f, &pd.Object{Class: class, Patchable: true, Width: 60, Height: 20})
		b := build(t, f, &pd.Object{Class: class, Patchable: true, Width: 60, Height: 20})
		assert.Equal(t, a.Kind(), b.Kind(), "class %q must map stably", class)
	}
}

func TestNonPatchablePlaceholderIsInvisible(t *testing.T) {
	f := newFixture(t)
	w := build(t, f, &pd.Object{Class: "midirealtime", Patchable: false})
	assert.False(t, w.Base().Visible())
}

func TestCreateGUIAttachesUnderParent(t *testing.T) {
	f := newFixture(t)
	obj := f.patch.CreateObject("tgl", 30, 40)

	parent := &Comment{} // any element works as a parent container
	parent.Init(parent)

	w := CreateGUI(f.patch, obj, parent, f.arena)
	defer w.Close()
	require.Len(t, parent.Base().Children(), 1)
	assert.Equal(t, obj.X, w.Base().Bounds().X)
	assert.Equal(t, obj.Y, w.Base().Bounds().Y)
}

func TestCreateGUINilObject(t *testing.T) {
	f := newFixture(t)
	assert.Nil(t, CreateGUI(f.patch, nil, nil, f.arena))
}
