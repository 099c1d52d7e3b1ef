package changelog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a changelog validation error with context.
type ValidationError struct {
	Field   string
	Message string
	// Line is the 1-based source line, or 0 when unknown.
	Line int
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "%s: ", e.Field)
	}
	b.WriteString(e.Message)
	return b.String()
}

var (
	// ErrEmptyDocument is returned when the input holds no YAML document at all.
	ErrEmptyDocument = errors.New("changelog document is empty")
	// ErrMalformedDocument wraps every decode failure.
	ErrMalformedDocument = errors.New("parsing changelog YAML")
)

// Load reads and validates a changelog YAML file from the given path.
func Load(path string) (*Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	return data, nil
}

// LoadBytes parses and validates changelog YAML held in memory.
func LoadBytes(data []byte) (*Document, error) {
	return LoadFromReader(bytes.NewReader(data))
}

// LoadFromReader reads and validates a changelog from an io.Reader.
// Only the first YAML document of the stream is used.
func LoadFromReader(r io.Reader) (*Document, error) {
	var doc Document

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks the cross-references decoding cannot catch.
// Dependency rollups are only checked against the registry when the document
// has one; without a registry they are never rendered.
func Validate(d *Document) error {
	if strings.TrimSpace(d.Repo) == "" {
		return &ValidationError{Field: "repo", Message: "required field is empty"}
	}

	for version, release := range d.Releases.All() {
		if strings.TrimSpace(version) == "" {
			return &ValidationError{Field: "releases", Message: "release version cannot be empty"}
		}
		if err := validateRelease(d, version, &release); err != nil {
			return err
		}
	}

	return nil
}

// validateRelease checks a single release against the document registry.
func validateRelease(d *Document, version string, r *Release) error {
	if d.Repos == nil {
		return nil
	}

	for name := range r.Repos.All() {
		if _, ok := d.Repos.Get(name); !ok {
			return &ValidationError{
				Field:   fmt.Sprintf("releases.%s.repos.%s", version, name),
				Message: "dependency repository is not listed in the document repos registry",
			}
		}
	}

	return nil
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
