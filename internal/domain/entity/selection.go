package entity

// SelectedComponentIDs maps each core category to the id of the component
// currently chosen for it. Absence of a key means the slot is unselected;
// no category ever holds more than one id.
type SelectedComponentIDs map[Category]string

// Clone returns an independent copy of the selection.
func (s SelectedComponentIDs) Clone() SelectedComponentIDs {
	out := make(SelectedComponentIDs, len(s))
	for category, id := range s {
		out[category] = id
	}

	return out
}

// SelectedPeripherals maps a peripheral category to the set of chosen ids.
// Unlike core categories, several peripherals of the same category may be
// selected at once.
type SelectedPeripherals map[Category][]string

// Clone returns an independent copy of the peripheral selection.
func (s SelectedPeripherals) Clone() SelectedPeripherals {
	out := make(SelectedPeripherals, len(s))
	for category, ids := range s {
		copied := make([]string, len(ids))
		copy(copied, ids)
		out[category] = copied
	}

	return out
}

// Contains reports whether the peripheral id is already selected in the
// given category.
func (s SelectedPeripherals) Contains(category Category, id string) bool {
	for _, existing := range s[category] {
		if existing == id {
			return true
		}
	}

	return false
}

// OptionSelections records the sub-option choices (colour, size, ...) made
// per core category, keyed by option key.
type OptionSelections map[Category]map[string]string

// Clone returns an independent copy of the option selections.
func (s OptionSelections) Clone() OptionSelections {
	out := make(OptionSelections, len(s))
	for category, opts := range s {
		copied := make(map[string]string, len(opts))
		for key, value := range opts {
			copied[key] = value
		}
		out[category] = copied
	}

	return out
}
