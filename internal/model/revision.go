package model

// Revision is the fiscal data format version a document is built
// against. It is fixed at document creation and gates which optional
// field sets the builder accepts for the rest of the assembly.
type Revision string

const (
	// Revision105 is fiscal data format 1.05.
	Revision105 Revision = "1.05"
	// Revision12 is fiscal data format 1.2.
	Revision12 Revision = "1.2"
)

// Valid reports whether the revision is a known format version.
func (r Revision) Valid() bool {
	return r == Revision105 || r == Revision12
}

// Capabilities describes which optional field sets a revision accepts.
// Field-set validation dispatches through this table so a future format
// version is a new entry, not a search through scattered conditionals.
type Capabilities struct {
	// Free-text unit of measurement on a position. Replaced by coded
	// units in 1.2.
	UnitOfMeasurement bool

	// 1.2 additions.
	ItemCode           bool // marking code
	PlannedStatus      bool
	FractionalQuantity bool
	IndustryAttribute  bool
	Barcodes           bool

	// Corrections carry full positions and payments, like an order.
	CorrectionPositions bool
}

var revisionCaps = map[Revision]Capabilities{
	Revision105: {
		UnitOfMeasurement: true,
	},
	Revision12: {
		ItemCode:            true,
		PlannedStatus:       true,
		FractionalQuantity:  true,
		IndustryAttribute:   true,
		Barcodes:            true,
		CorrectionPositions: true,
	},
}

// Caps returns the capability set for the revision. Unknown revisions
// get an empty set, which rejects every gated field.
func (r Revision) Caps() Capabilities {
	return revisionCaps[r]
}
