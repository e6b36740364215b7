// Package builder defines shared constants used by instance constructors.
package builder

// Constructor method names, used to prefix errors with context.
const (
	// MethodAligned is the canonical name for the Aligned constructor.
	MethodAligned = "Aligned"
	// MethodMasterList is the canonical name for the MasterList constructor.
	MethodMasterList = "MasterList"
	// MethodLatin is the canonical name for the Latin constructor.
	MethodLatin = "Latin"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
)

// MinAgents is the smallest market size any constructor accepts.
const MinAgents = 1
