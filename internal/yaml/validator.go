// Package yaml checks YAML syntax before a document is decoded, reporting
// the line and column of the first error.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a YAML validation error with location info.
type ValidationError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *ValidationError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	default:
		return e.Message
	}
}

var linePattern = regexp.MustCompile(`^yaml: line (\d+):(?: column (\d+):)? (.*)$`)

// Stats describes a syntactically valid YAML stream.
type Stats struct {
	// Documents is the number of YAML documents in the stream.
	Documents int
}

// ValidateSyntax validates YAML syntax by streaming through every document.
// Returns stats on success, or a *ValidationError with line information.
func ValidateSyntax(r io.Reader, file string) (Stats, error) {
	var stats Stats
	dec := yaml.NewDecoder(r)
	for {
		var n yaml.Node
		if err := dec.Decode(&n); err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			return stats, toValidationError(err, file)
		}
		stats.Documents++
	}
}

// ValidateBytes validates YAML held in memory.
func ValidateBytes(data []byte, file string) (Stats, error) {
	return ValidateSyntax(bytes.NewReader(data), file)
}

func toValidationError(err error, file string) *ValidationError {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{File: file, Message: typeErr.Error()}
	}

	m := linePattern.FindStringSubmatch(err.Error())
	if m == nil {
		return &ValidationError{File: file, Message: err.Error()}
	}

	line, _ := strconv.Atoi(m[1])
	column := 1
	if m[2] != "" {
		column, _ = strconv.Atoi(m[2])
	}
	return &ValidationError{File: file, Line: line, Column: column, Message: m[3]}
}
