// Package uischema loads the copy document that dresses the debrief form:
// titles, labels, help text, placeholders and widget choices. Labels can name
// the candidate and the next interviewer; Resolve fills those references from
// a sanitised Context and falls back to bracketed placeholders when a value is
// unknown.
package uischema
