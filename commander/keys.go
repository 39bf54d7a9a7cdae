//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	gott "github.com/timburks/jot/types"
)

// An Action is a command that can be bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionSave
	ActionFind
	ActionFindNext
	ActionFindPrevious
	ActionExit
	ActionAbout
	ActionSelectAll
	ActionCopy
	ActionCut
	ActionPaste
	ActionEval
)

type binding struct {
	key gott.Key
	mod gott.Modifier
}

var bindings = map[binding]Action{
	{gott.KeyCtrlO, 0}:          ActionOpen,
	{gott.KeyCtrlS, 0}:          ActionSave,
	{gott.KeyCtrlF, 0}:          ActionFind,
	{gott.KeyF3, 0}:             ActionFindNext,
	{gott.KeyCtrlN, 0}:          ActionFindNext,
	{gott.KeyF3, gott.ModShift}: ActionFindPrevious,
	{gott.KeyCtrlP, 0}:          ActionFindPrevious,
	{gott.KeyCtrlQ, 0}:          ActionExit,
	{gott.KeyF1, 0}:             ActionAbout,
	{gott.KeyCtrlA, 0}:          ActionSelectAll,
	{gott.KeyCtrlC, 0}:          ActionCopy,
	{gott.KeyCtrlX, 0}:          ActionCut,
	{gott.KeyCtrlV, 0}:          ActionPaste,
	{gott.KeyCtrlR, 0}:          ActionEval,
}

const hints = "^O Open  ^S Save  ^F Find  F3/^N Next  S-F3/^P Previous  ^C ^X ^V  ^R Eval  ^Q Exit  F1 About"

// lookup returns the action bound to a key event. Only Shift distinguishes
// bindings; other modifiers are ignored.
func lookup(event *gott.Event) Action {
	if event.Key == gott.KeyNone {
		return ActionNone
	}
	if action, ok := bindings[binding{event.Key, event.Mod & gott.ModShift}]; ok {
		return action
	}
	return bindings[binding{event.Key, 0}]
}
