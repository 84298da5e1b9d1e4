package entity

// Category identifies a slot in a build. The core categories each hold at
// most one component; any other value is treated as a peripheral category
// (monitor, keyboard, ...) which may hold several.
type Category string

const (
	CategoryCase        Category = "case"
	CategoryMotherboard Category = "motherboard"
	CategoryCPU         Category = "cpu"
	CategoryRAM         Category = "ram"
	CategoryGPU         Category = "gpu"
	CategoryStorage     Category = "storage"
	CategoryPSU         Category = "psu"
	CategoryCooling     Category = "cooling"
)

// coreCategories is the fixed slot order used for iteration and totals.
var coreCategories = []Category{
	CategoryCase,
	CategoryMotherboard,
	CategoryCPU,
	CategoryRAM,
	CategoryGPU,
	CategoryStorage,
	CategoryPSU,
	CategoryCooling,
}

// CoreCategories returns the fixed set of required build categories in
// declaration order.
func CoreCategories() []Category {
	out := make([]Category, len(coreCategories))
	copy(out, coreCategories)

	return out
}

// IsCore reports whether the category is one of the required build slots.
func (c Category) IsCore() bool {
	for _, core := range coreCategories {
		if c == core {
			return true
		}
	}

	return false
}
