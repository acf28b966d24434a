// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package key

// LayerIndex identifies a keymap layer. Layers are totally ordered by
// declaration: Base is always 0, and the active layer is the greatest
// LayerIndex whose LayerModifier is currently held (§3). A concrete
// keymap package declares its own named constants of this type; the
// mapper only ever compares them as plain integers.
type LayerIndex int

// Base is the layer every board starts on and falls through to.
const Base LayerIndex = 0

// ActionKind discriminates the tagged Action variant. Go has no sum
// types, so Action carries a Kind plus whichever payload field is valid
// for that kind; the rest are zero.
type ActionKind uint8

const (
	// ActionPass is the pass-through action. The mapper emits it as is;
	// it is not resolved to a lower layer's action.
	ActionPass ActionKind = iota
	// ActionNone is an explicit no-op, distinct from Pass.
	ActionNone
	ActionKey
	ActionModifiedKey
	ActionControl
	ActionLayerModifier
)

// Action is the tagged variant a keymap cell or rotary direction
// produces. The zero value is ActionPass, matching the Rust default.
type Action struct {
	Kind        ActionKind
	Key         Key
	ModifiedKey ModifiedKey
	Control     Control
	Layer       LayerIndex
}

// Pass returns the pass-through action.
func Pass() Action { return Action{Kind: ActionPass} }

// None returns the explicit no-op action.
func None() Action { return Action{Kind: ActionNone} }

// OfKey returns an Action that emits k.
func OfKey(k Key) Action { return Action{Kind: ActionKey, Key: k} }

// OfModifiedKey returns an Action that expands to modifier + key events.
func OfModifiedKey(mk ModifiedKey) Action { return Action{Kind: ActionModifiedKey, ModifiedKey: mk} }

// OfControl returns an Action that drives a firmware-internal command.
func OfControl(c Control) Action { return Action{Kind: ActionControl, Control: c} }

// OfLayerModifier returns an Action that, while held, proposes layer l
// as the active layer.
func OfLayerModifier(l LayerIndex) Action { return Action{Kind: ActionLayerModifier, Layer: l} }

func (a Action) String() string {
	switch a.Kind {
	case ActionPass:
		return "Pass"
	case ActionNone:
		return "None"
	case ActionKey:
		return "Key(" + a.Key.String() + ")"
	case ActionModifiedKey:
		return "ModifiedKey(" + a.ModifiedKey.Key().String() + ")"
	case ActionControl:
		return "Control(" + a.Control.String() + ")"
	case ActionLayerModifier:
		return "LayerModifier"
	default:
		return "Unknown"
	}
}
