package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/weftworks/weft/engine/core"
)

func TestModsFromKeys(t *testing.T) {
	assert.Equal(t, core.ModNone, modsFromKeys(false, false, false, false))
	assert.Equal(t, core.ModCtrl, modsFromKeys(false, true, false, false))
	assert.Equal(t, core.ModShift|core.ModCtrl, modsFromKeys(true, true, false, false))
	assert.Equal(t, core.ModShift|core.ModCtrl|core.ModAlt|core.ModSuper,
		modsFromKeys(true, true, true, true))
}

func TestTranslateMods(t *testing.T) {
	assert.Equal(t, core.ModNone, translateMods(0))
	assert.Equal(t, core.ModCtrl, translateMods(glfw.ModControl))
	assert.Equal(t, core.ModShift|core.ModAlt, translateMods(glfw.ModShift|glfw.ModAlt))
}

func TestTranslateButton(t *testing.T) {
	assert.Equal(t, 0, translateButton(glfw.MouseButtonLeft))
	assert.Equal(t, 1, translateButton(glfw.MouseButtonRight))
	assert.Equal(t, 2, translateButton(glfw.MouseButtonMiddle))
	assert.Equal(t, 0, translateButton(glfw.MouseButton4))
}

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, core.KeyEscape, translateKey(glfw.KeyEscape))
	assert.Equal(t, core.KeyDelete, translateKey(glfw.KeyBackspace))
	assert.Equal(t, core.Key0, translateKey(glfw.Key0))
	assert.Equal(t, core.KeyUnknown, translateKey(glfw.KeyF12))
}
