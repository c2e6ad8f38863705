package diag

import (
	"fmt"
)

// Code identifies a diagnostic rule or pipeline fault. Values are grouped
// in ranges; the string ID is derived from the range.
type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// Field documentation rules (1-99, rendered as PF001..).

	// FieldNoDefault flags a model field without a default expression.
	FieldNoDefault Code = 1
	// FieldDefaultNotField flags a default that is not a Field call.
	FieldDefaultNotField Code = 2
	// FieldNoDescription flags a Field call without a description argument.
	FieldNoDescription Code = 3
	// FieldEmptyDescription flags a Field call whose description is the
	// empty string.
	FieldEmptyDescription Code = 4

	// Lexical faults (1000-1999, rendered as LEX1xxx).

	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexInconsistentDedent Code = 1004
	LexBadIndentChar      Code = 1005

	// Syntactic faults (2000-2999, rendered as SYN2xxx).

	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnclosedBracket Code = 2002
	SynBadClassHeader  Code = 2003
	SynBadDecorator    Code = 2004

	// I/O faults (4000-4999, rendered as IO4xxx).

	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	FieldNoDefault:        "Found a Pydantic field which has no default",
	FieldDefaultNotField:  "Found a Pydantic field which has a default that is not a Field",
	FieldNoDescription:    "Found a Pydantic field which has a Field default with no description",
	FieldEmptyDescription: "Found a Pydantic field which has a Field default with an empty description",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string",
	LexBadNumber:          "Bad number literal",
	LexInconsistentDedent: "Inconsistent dedent",
	LexBadIndentChar:      "Invalid character in indentation",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnclosedBracket:    "Unclosed bracket",
	SynBadClassHeader:     "Malformed class header",
	SynBadDecorator:       "Malformed decorator",
	IOLoadFileError:       "I/O load file error",
}

// ID returns the stable short identifier for the code, e.g. "PF001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1 && ic < 100:
		return fmt.Sprintf("PF%03d", ic)
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the canonical human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsFieldRule reports whether the code belongs to the PF rule family.
func (c Code) IsFieldRule() bool {
	return c >= FieldNoDefault && c <= FieldEmptyDescription
}
