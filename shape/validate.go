package shape

import (
	"log/slog"
	"sort"

	"github.com/c360studio/semshape/ontology"
)

// Validator validates records against node shapes. It carries the optional
// inference context and a logger; it holds no mutable state and is safe for
// concurrent use.
type Validator struct {
	ctx    *ontology.Context
	logger *slog.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithContext supplies the inference context used for class-aware
// constraints. Without it, class constraints are skipped.
func WithContext(ctx *ontology.Context) ValidatorOption {
	return func(v *Validator) {
		v.ctx = ctx
	}
}

// WithLogger sets the logger for validation debug output.
func WithLogger(logger *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		v.logger = logger
	}
}

// NewValidator creates a validator. Both the context and logger are
// optional.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}
	return v
}

// Validate checks data against ns and returns the aggregated violation
// list. It never returns an error: every data mismatch is a violation, and
// the only short-circuit is non-object data.
func (v *Validator) Validate(ns *NodeShape, data any) Result {
	result := validate(ns, data, v.ctx)
	v.logger.Debug("shape validation completed",
		slog.String("target_class", ns.TargetClass.String()),
		slog.Bool("ok", result.OK),
		slog.Int("violations", len(result.Violations)))
	return result
}

// Check reports whether data conforms to ns.
func (v *Validator) Check(ns *NodeShape, data any) bool {
	return v.Validate(ns, data).OK
}

// Validate checks data against ns with an optional inference context. It is
// the package-level convenience form of Validator.Validate.
func Validate(ns *NodeShape, data any, ctx *ontology.Context) Result {
	return validate(ns, data, ctx)
}

// Check reports whether data conforms to ns.
func Check(ns *NodeShape, data any, ctx *ontology.Context) bool {
	return validate(ns, data, ctx).OK
}

func validate(ns *NodeShape, data any, ctx *ontology.Context) Result {
	obj, ok := data.(map[string]any)
	if !ok {
		// Hard failure: nothing else can be checked on non-object data.
		return Result{Violations: []Violation{{
			Path:    "",
			Code:    CodeUnknown,
			Message: "data is not an object",
			Actual:  data,
		}}}
	}

	var violations []Violation

	// Type membership is special-cased ahead of the per-property walk: when
	// the record declares @type at all, the declared types must include the
	// shape's target class.
	if _, present := obj["@type"]; present {
		violations = append(violations, checkTypeMembership(ns, obj)...)
	}

	// Property names are walked in sorted order so violation order is
	// deterministic across runs.
	names := make([]string, 0, len(ns.Properties))
	for name := range ns.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ps := ns.Properties[name]
		if ps == nil {
			continue
		}
		value := obj[name]

		violations = append(violations, checkCardinality(name, value, ps)...)
		if value == nil {
			continue
		}
		violations = append(violations, valueViolations(name, value, ps, ctx)...)
		violations = append(violations, combinatorViolations(name, value, ps, ctx)...)
	}

	return Result{
		OK:         len(violations) == 0,
		Violations: violations,
	}
}

// checkTypeMembership requires the record's declared @type, as a string or
// array of strings, to include the shape's target class IRI.
func checkTypeMembership(ns *NodeShape, obj map[string]any) []Violation {
	types := declaredTypes(obj)
	for _, t := range types {
		if t == ns.TargetClass.String() {
			return nil
		}
	}
	return []Violation{{
		Path:     "@type",
		Code:     CodeTypeMismatch,
		Message:  "declared types do not include the shape's target class " + ns.TargetClass.String(),
		Expected: ns.TargetClass.String(),
		Actual:   types,
	}}
}
