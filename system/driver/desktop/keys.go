// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"bzflag.org/platform/events"
	"bzflag.org/platform/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// keyCodes maps GLFW keys to platform key codes.
// Keys missing from the table are [key.CodeUnknown].
var keyCodes = map[glfw.Key]key.Codes{
	glfw.KeySpace:        key.CodeSpace,
	glfw.KeyApostrophe:   key.CodeApostrophe,
	glfw.KeyComma:        key.CodeComma,
	glfw.KeyMinus:        key.CodeMinus,
	glfw.KeyPeriod:       key.CodePeriod,
	glfw.KeySlash:        key.CodeSlash,
	glfw.Key0:            key.Code0,
	glfw.Key1:            key.Code1,
	glfw.Key2:            key.Code2,
	glfw.Key3:            key.Code3,
	glfw.Key4:            key.Code4,
	glfw.Key5:            key.Code5,
	glfw.Key6:            key.Code6,
	glfw.Key7:            key.Code7,
	glfw.Key8:            key.Code8,
	glfw.Key9:            key.Code9,
	glfw.KeySemicolon:    key.CodeSemicolon,
	glfw.KeyEqual:        key.CodeEqual,
	glfw.KeyA:            key.CodeA,
	glfw.KeyB:            key.CodeB,
	glfw.KeyC:            key.CodeC,
	glfw.KeyD:            key.CodeD,
	glfw.KeyE:            key.CodeE,
	glfw.KeyF:            key.CodeF,
	glfw.KeyG:            key.CodeG,
	glfw.KeyH:            key.CodeH,
	glfw.KeyI:            key.CodeI,
	glfw.KeyJ:            key.CodeJ,
	glfw.KeyK:            key.CodeK,
	glfw.KeyL:            key.CodeL,
	glfw.KeyM:            key.CodeM,
	glfw.KeyN:            key.CodeN,
	glfw.KeyO:            key.CodeO,
	glfw.KeyP:            key.CodeP,
	glfw.KeyQ:            key.CodeQ,
	glfw.KeyR:            key.CodeR,
	glfw.KeyS:            key.CodeS,
	glfw.KeyT:            key.CodeT,
	glfw.KeyU:            key.CodeU,
	glfw.KeyV:            key.CodeV,
	glfw.KeyW:            key.CodeW,
	glfw.KeyX:            key.CodeX,
	glfw.KeyY:            key.CodeY,
	glfw.KeyZ:            key.CodeZ,
	glfw.KeyLeftBracket:  key.CodeLeftBracket,
	glfw.KeyBackslash:    key.CodeBackslash,
	glfw.KeyRightBracket: key.CodeRightBracket,
	glfw.KeyGraveAccent:  key.CodeGraveAccent,
	glfw.KeyWorld1:       key.CodeWorld1,
	glfw.KeyWorld2:       key.CodeWorld2,
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyEnter:        key.CodeEnter,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeyBackspace:    key.CodeBackspace,
	glfw.KeyInsert:       key.CodeInsert,
	glfw.KeyDelete:       key.CodeDelete,
	glfw.KeyRight:        key.CodeRight,
	glfw.KeyLeft:         key.CodeLeft,
	glfw.KeyDown:         key.CodeDown,
	glfw.KeyUp:           key.CodeUp,
	glfw.KeyPageUp:       key.CodePageUp,
	glfw.KeyPageDown:     key.CodePageDown,
	glfw.KeyHome:         key.CodeHome,
	glfw.KeyEnd:          key.CodeEnd,
	glfw.KeyCapsLock:     key.CodeCapsLock,
	glfw.KeyScrollLock:   key.CodeScrollLock,
	glfw.KeyNumLock:      key.CodeNumLock,
	glfw.KeyPrintScreen:  key.CodePrintScreen,
	glfw.KeyPause:        key.CodePause,
	glfw.KeyF1:           key.CodeF1,
	glfw.KeyF2:           key.CodeF2,
	glfw.KeyF3:           key.CodeF3,
	glfw.KeyF4:           key.CodeF4,
	glfw.KeyF5:           key.CodeF5,
	glfw.KeyF6:           key.CodeF6,
	glfw.KeyF7:           key.CodeF7,
	glfw.KeyF8:           key.CodeF8,
	glfw.KeyF9:           key.CodeF9,
	glfw.KeyF10:          key.CodeF10,
	glfw.KeyF11:          key.CodeF11,
	glfw.KeyF12:          key.CodeF12,
	glfw.KeyF13:          key.CodeF13,
	glfw.KeyF14:          key.CodeF14,
	glfw.KeyF15:          key.CodeF15,
	glfw.KeyF16:          key.CodeF16,
	glfw.KeyF17:          key.CodeF17,
	glfw.KeyF18:          key.CodeF18,
	glfw.KeyF19:          key.CodeF19,
	glfw.KeyF20:          key.CodeF20,
	glfw.KeyF21:          key.CodeF21,
	glfw.KeyF22:          key.CodeF22,
	glfw.KeyF23:          key.CodeF23,
	glfw.KeyF24:          key.CodeF24,
	glfw.KeyF25:          key.CodeF25,
	glfw.KeyKP0:          key.CodeKeypad0,
	glfw.KeyKP1:          key.CodeKeypad1,
	glfw.KeyKP2:          key.CodeKeypad2,
	glfw.KeyKP3:          key.CodeKeypad3,
	glfw.KeyKP4:          key.CodeKeypad4,
	glfw.KeyKP5:          key.CodeKeypad5,
	glfw.KeyKP6:          key.CodeKeypad6,
	glfw.KeyKP7:          key.CodeKeypad7,
	glfw.KeyKP8:          key.CodeKeypad8,
	glfw.KeyKP9:          key.CodeKeypad9,
	glfw.KeyKPDecimal:    key.CodeKeypadDecimal,
	glfw.KeyKPDivide:     key.CodeKeypadDivide,
	glfw.KeyKPMultiply:   key.CodeKeypadMultiply,
	glfw.KeyKPSubtract:   key.CodeKeypadSubtract,
	glfw.KeyKPAdd:        key.CodeKeypadAdd,
	glfw.KeyKPEnter:      key.CodeKeypadEnter,
	glfw.KeyKPEqual:      key.CodeKeypadEqual,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyLeftSuper:    key.CodeLeftSuper,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyRightSuper:   key.CodeRightSuper,
	glfw.KeyMenu:         key.CodeMenu,
}

// KeyCode returns the key code for the given GLFW key.
func KeyCode(k glfw.Key) key.Codes {
	if c, ok := keyCodes[k]; ok {
		return c
	}
	return key.CodeUnknown
}

// GlfwMods returns the modifiers for the given GLFW modifier bits.
func GlfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mod&glfw.ModShift != 0 {
		m.SetFlag(true, key.Shift)
	}
	if mod&glfw.ModControl != 0 {
		m.SetFlag(true, key.Control)
	}
	if mod&glfw.ModAlt != 0 {
		m.SetFlag(true, key.Alt)
	}
	if mod&glfw.ModSuper != 0 {
		m.SetFlag(true, key.Super)
	}
	if mod&glfw.ModCapsLock != 0 {
		m.SetFlag(true, key.CapsLock)
	}
	if mod&glfw.ModNumLock != 0 {
		m.SetFlag(true, key.NumLock)
	}
	return m
}

// KeyAction returns the key action for the given GLFW action.
func KeyAction(action glfw.Action) key.Actions {
	switch action {
	case glfw.Press:
		return key.Press
	case glfw.Repeat:
		return key.Repeat
	}
	return key.Release
}

// ButtonAction returns the button action for the given GLFW action.
func ButtonAction(action glfw.Action) events.ButtonActions {
	if action == glfw.Press {
		return events.Press
	}
	return events.Release
}

// mouseButtons maps GLFW mouse buttons, which number right before
// middle, to platform mouse buttons.
var mouseButtons = map[glfw.MouseButton]events.Buttons{
	glfw.MouseButtonLeft:   events.Left,
	glfw.MouseButtonRight:  events.Right,
	glfw.MouseButtonMiddle: events.Middle,
	glfw.MouseButton4:      events.Button4,
	glfw.MouseButton5:      events.Button5,
	glfw.MouseButton6:      events.Button6,
	glfw.MouseButton7:      events.Button7,
	glfw.MouseButton8:      events.Button8,
}

// MouseButton returns the mouse button for the given GLFW button.
func MouseButton(b glfw.MouseButton) events.Buttons {
	if mb, ok := mouseButtons[b]; ok {
		return mb
	}
	return events.ButtonUnknown
}

var hatDirections = map[glfw.JoystickHatState]events.HatDirections{
	glfw.HatCentered:  events.HatCentered,
	glfw.HatUp:        events.HatUp,
	glfw.HatRightUp:   events.HatRightUp,
	glfw.HatRight:     events.HatRight,
	glfw.HatRightDown: events.HatRightDown,
	glfw.HatDown:      events.HatDown,
	glfw.HatLeftDown:  events.HatLeftDown,
	glfw.HatLeft:      events.HatLeft,
	glfw.HatLeftUp:    events.HatLeftUp,
}

// HatDirection returns the hat direction for the given GLFW hat state.
// Impossible combinations, such as up and down at once, are centered.
func HatDirection(h glfw.JoystickHatState) events.HatDirections {
	return hatDirections[h]
}
