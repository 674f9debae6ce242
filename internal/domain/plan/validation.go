package plan

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and cross references: editor IDs are
// unique and every connection names buildings that exist
func (d *Document) Validate() error {
	var problems []string

	if err := validate.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, e := range fieldErrs {
			problems = append(problems, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Namespace(), e.Tag(), e.Value(),
			))
		}
	}

	seen := make(map[string]bool, len(d.Buildings))
	for _, b := range d.Buildings {
		if b.ID == "" {
			continue
		}
		if seen[b.ID] {
			problems = append(problems, fmt.Sprintf("building %q is declared twice", b.ID))
		}
		seen[b.ID] = true
	}
	for i, c := range d.Connections {
		if c.From != "" && !seen[c.From] {
			problems = append(problems, fmt.Sprintf("connection %d: unknown building %q", i, c.From))
		}
		if c.To != "" && !seen[c.To] {
			problems = append(problems, fmt.Sprintf("connection %d: unknown building %q", i, c.To))
		}
	}

	if len(problems) > 0 {
		return &ErrInvalidDocument{Problems: problems}
	}
	return nil
}
