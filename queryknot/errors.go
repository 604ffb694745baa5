package queryknot

import "fmt"

// Parsing and flattening failures are reported through the typed errors
// below. Each carries the source line number when the failure came from
// text input; Line is 0 for failures raised while flattening caller data.
// All types work with errors.As.

// MalformedLineError reports a line that has a path but no value token,
// or a path with an empty segment.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%smalformed line %q: expected <path> <value>", linePrefix(e.Line), e.Text)
}

// UnrecognizedLiteralError reports a value token that matches no grammar
// rule. QueryKnot has no bare string type; ambiguous tokens are rejected
// rather than guessed.
type UnrecognizedLiteralError struct {
	Line    int
	Literal string
}

func (e *UnrecognizedLiteralError) Error() string {
	return fmt.Sprintf("%sunrecognized literal %q", linePrefix(e.Line), e.Literal)
}

// UnterminatedStringError reports a quoted string missing its closing quote.
type UnterminatedStringError struct {
	Line    int
	Literal string
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("%sunterminated string %q", linePrefix(e.Line), e.Literal)
}

// NestedCollectionError reports an array containing an array or object
// literal. QueryKnot arrays hold scalars only.
type NestedCollectionError struct {
	Line    int
	Literal string
}

func (e *NestedCollectionError) Error() string {
	return fmt.Sprintf("%snested collection %q: arrays may only contain strings, numbers, and booleans", linePrefix(e.Line), e.Literal)
}

// PathConflictError reports a path that extends a position already bound to
// a scalar or array, or a path that claims a position under which longer
// paths already exist.
type PathConflictError struct {
	Line   int
	Path   string
	Prefix string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("%spath %q conflicts with %q: a position cannot be both a value and an object", linePrefix(e.Line), e.Path, e.Prefix)
}

// DuplicatePathError reports the same full path appearing twice in one
// document. Duplicates are an error, not an overwrite, so malformed LLM
// output is surfaced rather than masked.
type DuplicatePathError struct {
	Line int
	Path string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("%sduplicate path %q", linePrefix(e.Line), e.Path)
}

func linePrefix(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("line %d: ", n)
}

// withLine stamps the source line number onto a typed error raised below
// the parser, where line context is not known.
func withLine(err error, line int) error {
	switch e := err.(type) {
	case *MalformedLineError:
		e.Line = line
	case *UnrecognizedLiteralError:
		e.Line = line
	case *UnterminatedStringError:
		e.Line = line
	case *NestedCollectionError:
		e.Line = line
	case *PathConflictError:
		e.Line = line
	case *DuplicatePathError:
		e.Line = line
	}
	return err
}
