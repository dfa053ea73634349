package cli

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/mingyun/ganzhi/internal/chart"
)

//go:embed schema/chart.cue
var chartSchema string

// LoadError represents an error that occurred during chart loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Chart file not found
	ErrCodeReadFailed  = "E003" // File read error
	ErrCodeParseFailed = "E004" // YAML/JSON parse failed
	ErrCodeSchema      = "E005" // Schema validation failed
	ErrCodeBuildFailed = "E006" // CUE build failed

	// Chart validation errors
	ErrCodeChartInvalid  = "E101" // Chart field validation failed
	ErrCodeChartEmpty    = "E102" // Document carries no usable data
	ErrCodeBadSymbol     = "E103" // Not a ganzhi symbol
	ErrCodeBadYear       = "E104" // Year out of range or missing
	ErrCodeBadFormat     = "E105" // Unsupported input format
)

// LoadChart reads a chart document from path, checks it against the
// embedded CUE schema, then parses and field-validates it. Schema and
// field errors are collected rather than stopping at the first one.
func LoadChart(path string) (*chart.Document, []error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("chart file not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading chart file: %v", err)}}
	}

	format := chart.DetectFormat(path)

	if errs := checkSchema(path, data, format); len(errs) > 0 {
		return nil, errs
	}

	doc, err := chart.Parse(data, format)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing chart document: %v", err)}}
	}

	var errs []error
	for _, ve := range doc.Validate() {
		errs = append(errs, &LoadError{
			Code:    mapFieldToErrorCode(ve.Field),
			Message: fmt.Sprintf("%s: %s", ve.Field, ve.Message),
		})
	}
	if len(errs) > 0 {
		return doc, errs
	}
	return doc, nil
}

// checkSchema unifies the document with the #Document schema and
// reports every structural mismatch with its source position.
func checkSchema(path string, data []byte, format chart.Format) []error {
	ctx := cuecontext.New()

	schemaVal := ctx.CompileString(chartSchema, cue.Filename("schema/chart.cue"))
	if err := schemaVal.Err(); err != nil {
		return []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building chart schema: %v", err)}}
	}
	docSchema := schemaVal.LookupPath(cue.ParsePath("#Document"))
	if err := docSchema.Err(); err != nil {
		return []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("resolving #Document: %v", err)}}
	}

	var docVal cue.Value
	switch format {
	case chart.FormatJSON:
		expr, err := cuejson.Extract(path, data)
		if err != nil {
			return []error{&LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing JSON: %v", err)}}
		}
		docVal = ctx.BuildExpr(expr)
	case chart.FormatYAML:
		file, err := cueyaml.Extract(path, data)
		if err != nil {
			return []error{&LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing YAML: %v", err)}}
		}
		docVal = ctx.BuildFile(file)
	default:
		return []error{&LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("unsupported chart format: %s", format)}}
	}
	if err := docVal.Err(); err != nil {
		return []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building document value: %v", err)}}
	}

	unified := docSchema.Unify(docVal)
	if err := unified.Validate(); err != nil {
		var errs []error
		for _, e := range cueerrors.Errors(err) {
			errs = append(errs, &LoadError{
				Code:    ErrCodeSchema,
				Message: e.Error(),
				Pos:     e.Position(),
			})
		}
		return errs
	}
	return nil
}

// mapFieldToErrorCode maps a chart validation field to an error code.
func mapFieldToErrorCode(field string) string {
	switch {
	case field == "":
		return ErrCodeChartInvalid
	case strings.HasSuffix(field, ".stem"), strings.HasSuffix(field, ".branch"):
		return ErrCodeBadSymbol
	default:
		return ErrCodeChartInvalid
	}
}
