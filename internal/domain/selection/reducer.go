// Package selection holds the pure state machine over the build's
// selected component ids. Reduce never mutates its input; every
// transition returns a fresh map.
package selection

import (
	"rig/internal/domain/entity"
)

// ActionType enumerates the reducer's transitions.
type ActionType string

const (
	// ActionSelect sets or overwrites the id chosen for a category.
	ActionSelect ActionType = "SELECT"
	// ActionRemove clears a single category.
	ActionRemove ActionType = "REMOVE"
	// ActionReset clears every category.
	ActionReset ActionType = "RESET"
	// ActionSetAll replaces the whole selection with the payload.
	ActionSetAll ActionType = "SET_ALL"
	// ActionImport merges the payload into the current selection, then
	// strips any entry left with an empty id.
	ActionImport ActionType = "IMPORT"
)

// Action is one reducer message. Category and ComponentID apply to
// SELECT/REMOVE; Payload applies to SET_ALL/IMPORT.
type Action struct {
	Type        ActionType                  `json:"type"`
	Category    entity.Category             `json:"category,omitempty"`
	ComponentID string                      `json:"component_id,omitempty"`
	Payload     entity.SelectedComponentIDs `json:"payload,omitempty"`
}

// Reduce applies an action to the selection and returns the next state.
// Unknown action types leave the state unchanged.
func Reduce(state entity.SelectedComponentIDs, action Action) entity.SelectedComponentIDs {
	switch action.Type {
	case ActionSelect:
		next := state.Clone()
		next[action.Category] = action.ComponentID

		return next

	case ActionRemove:
		next := state.Clone()
		delete(next, action.Category)

		return next

	case ActionReset:
		return entity.SelectedComponentIDs{}

	case ActionSetAll:
		return action.Payload.Clone()

	case ActionImport:
		next := state.Clone()
		for category, id := range action.Payload {
			next[category] = id
		}
		for category, id := range next {
			if id == "" {
				delete(next, category)
			}
		}

		return next

	default:
		return state.Clone()
	}
}
