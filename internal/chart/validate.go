package chart

import (
	"fmt"

	"github.com/mingyun/ganzhi/internal/ganzhi"
)

// ValidationError describes one problem found in a chart document, with the
// field path that produced it.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the document against the input contract.
// Returns all problems (not fail-fast). An empty result means the document is
// fully well-formed; a non-empty result is advisory — the analyzers still
// accept the document and skip whatever is incomplete.
func (doc *Document) Validate() []ValidationError {
	var errs []ValidationError

	for _, name := range PillarNames {
		p := doc.BaziData.Pillars.Pillar(name)
		errs = append(errs, validatePillar(fmt.Sprintf("bazi_data.bazi_pillars.%s", name), p)...)
	}

	for i, d := range doc.Dayun {
		field := fmt.Sprintf("dayun_sequence[%d]", i)
		errs = append(errs, validatePillar(field, d.Pillar())...)
		if d.StartYear != nil && d.EndYear != nil && *d.EndYear < *d.StartYear {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("end_year %d precedes start_year %d", *d.EndYear, *d.StartYear),
			})
		}
	}

	for i, l := range doc.Liunian {
		field := fmt.Sprintf("liunian_sequence[%d]", i)
		errs = append(errs, validatePillar(field, l.Pillar())...)
		if l.Year == 0 {
			errs = append(errs, ValidationError{Field: field, Message: "missing year"})
		}
	}

	return errs
}

// validatePillar flags present-but-unknown symbols. Empty halves are not
// errors here: incomplete entries are legal input that analyzers skip.
func validatePillar(field string, p Pillar) []ValidationError {
	var errs []ValidationError
	if p.Stem != "" && !ganzhi.IsStem(p.Stem) {
		errs = append(errs, ValidationError{
			Field:   field + ".stem",
			Message: fmt.Sprintf("unknown heavenly stem %q", p.Stem),
		})
	}
	if p.Branch != "" && !ganzhi.IsBranch(p.Branch) {
		errs = append(errs, ValidationError{
			Field:   field + ".branch",
			Message: fmt.Sprintf("unknown earthly branch %q", p.Branch),
		})
	}
	return errs
}
