package structype

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeMisplacedAnnotation reports an annotation attached to the type
	// itself instead of one of its members.
	CodeMisplacedAnnotation = "misplaced_annotation"
	// CodeUnsupportedShape reports a type that cannot be described: a
	// non-struct kind, or a definition with no members at all.
	CodeUnsupportedShape = "unsupported_shape"
	// CodeMalformedValue reports an annotation value that is not a plain
	// string: a bare key with no value, a nested value, or a non-string
	// literal.
	CodeMalformedValue = "malformed_value"
	// CodeUnsupportedForm reports an annotation in the wrong form for the
	// active schema (single string where pairs are required or vice versa),
	// or more than one annotation on a single member.
	CodeUnsupportedForm = "unsupported_form"
	// CodeBadDefinition reports a definition document that could not be
	// decoded at all (CLI input surface).
	CodeBadDefinition = "bad_definition"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // "/member-name", or "/" for type-level failures.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unsupported_form at /username
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
