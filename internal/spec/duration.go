package spec

import (
	"math"
)

// Bytes of the ISO 8601 duration grammar, PnYnMnWnDTnHnMnS.
//
// ISO 8601-1:2019 §5.5.2
const (
	DurationDesignator     = 'P'
	DurationTimeDesignator = 'T'

	// DurationDateUnits lists the units allowed before the time designator, in the order they must appear
	DurationDateUnits = "YMWD"

	// DurationTimeUnits lists the units allowed after the time designator, in the order they must appear
	DurationTimeUnits = "HMS"
)

// MaxDurationComponent is the largest value of a single duration component. It matches the C int of the date-time
// record.
const MaxDurationComponent = math.MaxInt32
