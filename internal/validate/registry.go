package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownRule is returned when a rule name is not registered.
var ErrUnknownRule = errors.New("unknown rule")

// Factory builds a Rule from its bracketed arguments, e.g. ["15", "35"] for
// "range[15,35]".
type Factory func(args []string) (Rule, error)

// Registry maps rule names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry preloaded with the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("required", noArgs(Required))
	r.Register("lettersonly", noArgs(LettersOnly))
	r.Register("digits", noArgs(Digits))
	r.Register("number", noArgs(Number))
	r.Register("range", func(args []string) (Rule, error) {
		if len(args) != 2 {
			return Rule{}, fmt.Errorf("range expects 2 arguments, got %d", len(args))
		}
		lo, okLo := ParseNumber(args[0])
		hi, okHi := ParseNumber(args[1])
		if !okLo || !okHi {
			return Rule{}, fmt.Errorf("range bounds must be numbers: %q", strings.Join(args, ","))
		}
		if lo > hi {
			return Rule{}, fmt.Errorf("range lower bound %s exceeds upper bound %s", args[0], args[1])
		}
		return Range(lo, hi), nil
	})
	r.Register("max", boundRule(Max))
	r.Register("min", boundRule(Min))
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[strings.ToLower(name)] = f
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Parse builds a rule from a spec such as "required", "range[15,35]" or
// "max[@requisitionAmount]".
func (r *Registry) Parse(spec string) (Rule, error) {
	name, args, err := splitSpec(spec)
	if err != nil {
		return Rule{}, err
	}
	f, ok := r.factories[name]
	if !ok {
		if s := r.suggest(name); s != "" {
			return Rule{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownRule, name, s)
		}
		return Rule{}, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
	rule, err := f(args)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", spec, err)
	}
	return rule, nil
}

// ParseAll builds every rule in specs, stopping at the first error.
func (r *Registry) ParseAll(specs ...string) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for _, s := range specs {
		rule, err := r.Parse(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// MustParseAll is ParseAll for static field tables; it panics on error.
func (r *Registry) MustParseAll(specs ...string) []Rule {
	rules, err := r.ParseAll(specs...)
	if err != nil {
		panic(err)
	}
	return rules
}

func (r *Registry) suggest(name string) string {
	return Suggest(name, r.Names())
}

// Suggest returns the candidate closest to name by edit distance, or "" if
// none is within two edits.
func Suggest(name string, candidates []string) string {
	best, bestDist := "", 3
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func splitSpec(spec string) (string, []string, error) {
	spec = strings.TrimSpace(spec)
	open := strings.IndexByte(spec, '[')
	if open < 0 {
		if spec == "" {
			return "", nil, fmt.Errorf("empty rule spec")
		}
		return strings.ToLower(spec), nil, nil
	}
	if !strings.HasSuffix(spec, "]") {
		return "", nil, fmt.Errorf("rule spec %q: missing closing bracket", spec)
	}
	name := strings.ToLower(strings.TrimSpace(spec[:open]))
	inner := spec[open+1 : len(spec)-1]
	var args []string
	for _, a := range strings.Split(inner, ",") {
		if a = strings.TrimSpace(a); a != "" {
			args = append(args, a)
		}
	}
	return name, args, nil
}

func noArgs(build func() Rule) Factory {
	return func(args []string) (Rule, error) {
		if len(args) != 0 {
			return Rule{}, fmt.Errorf("takes no arguments")
		}
		return build(), nil
	}
}

// boundRule accepts either a literal number or "@field" for a cross-field
// bound resolved at check time.
func boundRule(build func(Bound) Rule) Factory {
	return func(args []string) (Rule, error) {
		if len(args) != 1 {
			return Rule{}, fmt.Errorf("expects 1 argument, got %d", len(args))
		}
		if ref, ok := strings.CutPrefix(args[0], "@"); ok {
			if ref == "" {
				return Rule{}, fmt.Errorf("empty field reference")
			}
			return build(FieldRef(ref)), nil
		}
		n, ok := ParseNumber(args[0])
		if !ok {
			return Rule{}, fmt.Errorf("bound must be a number or @field: %q", args[0])
		}
		return build(Fixed(n)), nil
	}
}
