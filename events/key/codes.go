// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the platform-independent keyboard vocabulary:
// key codes, modifier flags and key actions.
package key

import "strconv"

// Codes are the physical key codes reported by key events. They
// name the key position on a US layout, independent of the
// character the key produces; text comes through text input events.
type Codes int32

const (
	// CodeUnknown is reported for keys the platform cannot identify.
	CodeUnknown Codes = iota
	CodeSpace
	CodeApostrophe
	CodeComma
	CodeMinus
	CodePeriod
	CodeSlash
	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	CodeSemicolon
	CodeEqual
	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ
	CodeLeftBracket
	CodeBackslash
	CodeRightBracket
	CodeGraveAccent
	CodeWorld1
	CodeWorld2
	CodeEscape
	CodeEnter
	CodeTab
	CodeBackspace
	CodeInsert
	CodeDelete
	CodeRight
	CodeLeft
	CodeDown
	CodeUp
	CodePageUp
	CodePageDown
	CodeHome
	CodeEnd
	CodeCapsLock
	CodeScrollLock
	CodeNumLock
	CodePrintScreen
	CodePause
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeF13
	CodeF14
	CodeF15
	CodeF16
	CodeF17
	CodeF18
	CodeF19
	CodeF20
	CodeF21
	CodeF22
	CodeF23
	CodeF24
	CodeF25
	CodeKeypad0
	CodeKeypad1
	CodeKeypad2
	CodeKeypad3
	CodeKeypad4
	CodeKeypad5
	CodeKeypad6
	CodeKeypad7
	CodeKeypad8
	CodeKeypad9
	CodeKeypadDecimal
	CodeKeypadDivide
	CodeKeypadMultiply
	CodeKeypadSubtract
	CodeKeypadAdd
	CodeKeypadEnter
	CodeKeypadEqual
	CodeLeftShift
	CodeLeftControl
	CodeLeftAlt
	CodeLeftSuper
	CodeRightShift
	CodeRightControl
	CodeRightAlt
	CodeRightSuper
	CodeMenu

	// CodesN is the number of key codes.
	CodesN
)

var codeNames = [...]string{
	CodeUnknown: "Unknown",
	CodeSpace: "Space",
	CodeApostrophe: "Apostrophe",
	CodeComma: "Comma",
	CodeMinus: "Minus",
	CodePeriod: "Period",
	CodeSlash: "Slash",
	Code0: "0",
	Code1: "1",
	Code2: "2",
	Code3: "3",
	Code4: "4",
	Code5: "5",
	Code6: "6",
	Code7: "7",
	Code8: "8",
	Code9: "9",
	CodeSemicolon: "Semicolon",
	CodeEqual: "Equal",
	CodeA: "A",
	CodeB: "B",
	CodeC: "C",
	CodeD: "D",
	CodeE: "E",
	CodeF: "F",
	CodeG: "G",
	CodeH: "H",
	CodeI: "I",
	CodeJ: "J",
	CodeK: "K",
	CodeL: "L",
	CodeM: "M",
	CodeN: "N",
	CodeO: "O",
	CodeP: "P",
	CodeQ: "Q",
	CodeR: "R",
	CodeS: "S",
	CodeT: "T",
	CodeU: "U",
	CodeV: "V",
	CodeW: "W",
	CodeX: "X",
	CodeY: "Y",
	CodeZ: "Z",
	CodeLeftBracket: "LeftBracket",
	CodeBackslash: "Backslash",
	CodeRightBracket: "RightBracket",
	CodeGraveAccent: "GraveAccent",
	CodeWorld1: "World1",
	CodeWorld2: "World2",
	CodeEscape: "Escape",
	CodeEnter: "Enter",
	CodeTab: "Tab",
	CodeBackspace: "Backspace",
	CodeInsert: "Insert",
	CodeDelete: "Delete",
	CodeRight: "Right",
	CodeLeft: "Left",
	CodeDown: "Down",
	CodeUp: "Up",
	CodePageUp: "PageUp",
	CodePageDown: "PageDown",
	CodeHome: "Home",
	CodeEnd: "End",
	CodeCapsLock: "CapsLock",
	CodeScrollLock: "ScrollLock",
	CodeNumLock: "NumLock",
	CodePrintScreen: "PrintScreen",
	CodePause: "Pause",
	CodeF1: "F1",
	CodeF2: "F2",
	CodeF3: "F3",
	CodeF4: "F4",
	CodeF5: "F5",
	CodeF6: "F6",
	CodeF7: "F7",
	CodeF8: "F8",
	CodeF9: "F9",
	CodeF10: "F10",
	CodeF11: "F11",
	CodeF12: "F12",
	CodeF13: "F13",
	CodeF14: "F14",
	CodeF15: "F15",
	CodeF16: "F16",
	CodeF17: "F17",
	CodeF18: "F18",
	CodeF19: "F19",
	CodeF20: "F20",
	CodeF21: "F21",
	CodeF22: "F22",
	CodeF23: "F23",
	CodeF24: "F24",
	CodeF25: "F25",
	CodeKeypad0: "Keypad0",
	CodeKeypad1: "Keypad1",
	CodeKeypad2: "Keypad2",
	CodeKeypad3: "Keypad3",
	CodeKeypad4: "Keypad4",
	CodeKeypad5: "Keypad5",
	CodeKeypad6: "Keypad6",
	CodeKeypad7: "Keypad7",
	CodeKeypad8: "Keypad8",
	CodeKeypad9: "Keypad9",
	CodeKeypadDecimal: "KeypadDecimal",
	CodeKeypadDivide: "KeypadDivide",
	CodeKeypadMultiply: "KeypadMultiply",
	CodeKeypadSubtract: "KeypadSubtract",
	CodeKeypadAdd: "KeypadAdd",
	CodeKeypadEnter: "KeypadEnter",
	CodeKeypadEqual: "KeypadEqual",
	CodeLeftShift: "LeftShift",
	CodeLeftControl: "LeftControl",
	CodeLeftAlt: "LeftAlt",
	CodeLeftSuper: "LeftSuper",
	CodeRightShift: "RightShift",
	CodeRightControl: "RightControl",
	CodeRightAlt: "RightAlt",
	CodeRightSuper: "RightSuper",
	CodeMenu: "Menu",
}

// String returns the name of the key, for example "A", "F12" or "KeypadEnter".
func (c Codes) String() string {
	if c < 0 || c >= CodesN {
		return "Codes(" + strconv.Itoa(int(c)) + ")"
	}
	return codeNames[c]
}

// CodeFromString returns the key code with the given name,
// and whether it was found.
func CodeFromString(s string) (Codes, bool) {
	for c, n := range codeNames {
		if n == s {
			return Codes(c), true
		}
	}
	return CodeUnknown, false
}

// IsModifier returns whether the key is one of the shift,
// control, alt or super keys.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftShift && c <= CodeRightSuper
}

// IsFunction returns whether the key is one of F1 to F25.
func (c Codes) IsFunction() bool {
	return c >= CodeF1 && c <= CodeF25
}

// IsKeypad returns whether the key is on the numeric keypad.
func (c Codes) IsKeypad() bool {
	return c >= CodeKeypad0 && c <= CodeKeypadEqual
}
