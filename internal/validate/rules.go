package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// Values gives rules read access to the live form. Implementations must
// return the value current at call time so cross-field rules never see a
// stale copy.
type Values interface {
	Value(field string) string
}

// MapValues adapts a plain map to Values.
type MapValues map[string]string

func (m MapValues) Value(field string) string { return m[field] }

// Rule is a named predicate with a default message.
type Rule struct {
	Name string
	// Optional rules pass on blank input and leave presence to "required".
	Optional bool
	Test     func(value string, values Values) bool
	Describe func(values Values) string
}

// Check runs the rule against value.
func (r Rule) Check(value string, values Values) bool {
	if r.Optional && strings.TrimSpace(value) == "" {
		return true
	}
	return r.Test(value, values)
}

// Message renders the default message for the rule.
func (r Rule) Message(values Values) string {
	if r.Describe == nil {
		return fmt.Sprintf("Invalid value (%s)", r.Name)
	}
	return r.Describe(values)
}

func constMessage(msg string) func(Values) string {
	return func(Values) string { return msg }
}

var (
	lettersPattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	digitsPattern  = regexp.MustCompile(`^\d+$`)
)

// Required fails on empty or whitespace-only input.
func Required() Rule {
	return Rule{
		Name:     "required",
		Test:     func(v string, _ Values) bool { return strings.TrimSpace(v) != "" },
		Describe: constMessage("This field is required."),
	}
}

// LettersOnly accepts ASCII letters and whitespace.
func LettersOnly() Rule {
	return Rule{
		Name:     "lettersonly",
		Optional: true,
		Test:     func(v string, _ Values) bool { return lettersPattern.MatchString(v) },
		Describe: constMessage("Only alphabets are allowed"),
	}
}

// Digits accepts a non-empty run of decimal digits.
func Digits() Rule {
	return Rule{
		Name:     "digits",
		Optional: true,
		Test:     func(v string, _ Values) bool { return digitsPattern.MatchString(v) },
		Describe: constMessage("Please enter only digits."),
	}
}

// Number accepts any finite decimal number.
func Number() Rule {
	return Rule{
		Name:     "number",
		Optional: true,
		Test: func(v string, _ Values) bool {
			_, ok := ParseNumber(v)
			return ok
		},
		Describe: constMessage("Please enter a valid number."),
	}
}

// Range accepts numbers in [lo, hi].
func Range(lo, hi float64) Rule {
	return Rule{
		Name:     "range",
		Optional: true,
		Test: func(v string, _ Values) bool {
			n, ok := ParseNumber(v)
			return ok && n >= lo && n <= hi
		},
		Describe: constMessage(fmt.Sprintf("Please enter a value between %s and %s.", FormatNumber(lo), FormatNumber(hi))),
	}
}

// Bound yields the comparison operand of a min/max rule at check time.
type Bound func(values Values) float64

// Fixed is a constant bound.
func Fixed(n float64) Bound {
	return func(Values) float64 { return n }
}

// FieldRef reads another field's numeric value when the rule runs.
// Non-numeric or empty values count as 0.
func FieldRef(field string) Bound {
	return func(values Values) float64 {
		if values == nil {
			return 0
		}
		return NumberOrZero(values.Value(field))
	}
}

// Max accepts numbers less than or equal to the bound.
func Max(b Bound) Rule {
	return Rule{
		Name:     "max",
		Optional: true,
		Test: func(v string, values Values) bool {
			n, ok := ParseNumber(v)
			return ok && n <= b(values)
		},
		Describe: func(values Values) string {
			return fmt.Sprintf("Please enter a value less than or equal to %s.", FormatNumber(b(values)))
		},
	}
}

// Min accepts numbers greater than or equal to the bound.
func Min(b Bound) Rule {
	return Rule{
		Name:     "min",
		Optional: true,
		Test: func(v string, values Values) bool {
			n, ok := ParseNumber(v)
			return ok && n >= b(values)
		},
		Describe: func(values Values) string {
			return fmt.Sprintf("Please enter a value greater than or equal to %s.", FormatNumber(b(values)))
		},
	}
}

// Field binds an ordered rule list to a named input.
type Field struct {
	Name  string
	Label string
	Rules []Rule
	// Messages overrides default messages by rule name.
	Messages map[string]string
}

// Check evaluates the rules in order and returns the first failure.
func (f Field) Check(values Values) (FieldError, bool) {
	value := values.Value(f.Name)
	for _, r := range f.Rules {
		if r.Check(value, values) {
			continue
		}
		msg, ok := f.Messages[r.Name]
		if !ok {
			msg = r.Message(values)
		}
		return FieldError{Field: f.Name, Rule: r.Name, Message: msg}, false
	}
	return FieldError{}, true
}

// CheckAll validates every field without stopping at the first failure.
func CheckAll(fields []Field, values Values) Report {
	var report Report
	for _, f := range fields {
		if fe, ok := f.Check(values); !ok {
			report = append(report, fe)
		}
	}
	return report
}
