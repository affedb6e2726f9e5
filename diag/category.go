package diag

// Category classifies a diagnostic. Recoverable categories are appended to a
// Bag during lexing/parsing/analysis and never halt the run; fatal
// categories are returned as a Go error and the run stops.
type Category int

const (
	_ Category = iota

	// recoverable semantic/parse categories
	AlreadyDefined
	NotDefined
	TypeMismatch
	StatementMisplacement
	WrongAccessor
	WrongArgument
	Modifier
	NoSuchArrayDimension

	// fatal categories
	UnterminatedString
	UnterminatedComment
	UnknownCharacter
	AllocationFailure
)

var categoryNames = map[Category]string{
	AlreadyDefined:        "AlreadyDefinedException",
	NotDefined:            "NotDefinedException",
	TypeMismatch:          "TypeMismatchException",
	StatementMisplacement: "StatementMisplacementException",
	WrongAccessor:         "WrongAccessorException",
	WrongArgument:         "WrongArgumentException",
	Modifier:              "ModifierException",
	NoSuchArrayDimension:  "NoSuchArrayDimensionException",
	UnterminatedString:    "UnterminatedStringException",
	UnterminatedComment:   "UnterminatedCommentException",
	UnknownCharacter:      "UnknownCharacterException",
	AllocationFailure:     "AllocationFailureException",
}

// String returns the canonical exception-style category name used at the
// head of every formatted diagnostic.
func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "UnknownException"
}

// Fatal returns whether a diagnostic of this Category halts the run. Only
// lexer anomalies and allocation failure are fatal; every semantic/parse
// category is recoverable.
func (c Category) Fatal() bool {
	switch c {
	case UnterminatedString, UnterminatedComment, UnknownCharacter, AllocationFailure:
		return true
	default:
		return false
	}
}
