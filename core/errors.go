package core

import "fmt"

// MalformedDocumentError reports a structural violation in a markup
// source. Element is the 1-based position of the offending element in
// the document body, or 0 when the violation is document-wide.
type MalformedDocumentError struct {
	Path    string
	Element int
	Msg     string
}

func (e *MalformedDocumentError) Error() string {
	if e.Element > 0 {
		return fmt.Sprintf("malformed document %s: element %d: %s", e.Path, e.Element, e.Msg)
	}
	return fmt.Sprintf("malformed document %s: %s", e.Path, e.Msg)
}

// UnresolvedReferenceError reports a setting or monster name missing
// from the page-reference index.
type UnresolvedReferenceError struct {
	Kind string // "setting" or "monster"
	Name string
	Path string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved %s reference %q in %s", e.Kind, e.Name, e.Path)
}

// MalformedRecordError reports a structured source that is not a
// mapping or is missing its required name.
type MalformedRecordError struct {
	Path string
	Msg  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %s: %s", e.Path, e.Msg)
}
