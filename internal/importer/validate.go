package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/form"
	"github.com/alexanderramin/scholarform/internal/validate"
)

var (
	sectionNames = []string{SectionPersonal, SectionSubjects, SectionIncome}

	personalKeys = []string{
		form.FieldFullName, form.FieldAge, form.FieldParentName,
		form.FieldOccupation, form.FieldAddress, form.FieldRelationship,
	}
	incomeKeys = []string{
		form.FieldAnnualIncome, form.FieldRequisitionAmount,
		form.FieldNatureRequisition, form.FieldFundAmount,
	}
)

func subjectKeys() []string {
	keys := make([]string, len(domain.SubjectFields))
	for i, f := range domain.SubjectFields {
		keys[i] = string(f)
	}
	return keys
}

// ValidateDocument checks the shape of doc: known sections and keys,
// scalar values and at most five subjects. Field values themselves are
// left to the form validators. Returns every problem found.
func ValidateDocument(doc *Document) []error {
	var errs []error

	for _, key := range sortedKeys(doc.Raw) {
		if !contains(sectionNames, key) {
			errs = append(errs, unknownKey("", key, sectionNames))
		}
	}

	errs = append(errs, validateSection(doc.Raw, SectionPersonal, personalKeys)...)
	errs = append(errs, validateSection(doc.Raw, SectionIncome, incomeKeys)...)
	errs = append(errs, validateSubjects(doc.Raw[SectionSubjects])...)

	return errs
}

func validateSection(raw map[string]any, name string, keys []string) []error {
	v, ok := raw[name]
	if !ok || v == nil {
		return nil
	}
	section, ok := v.(map[string]any)
	if !ok {
		return []error{fmt.Errorf("%s: expected a mapping, got %s", name, kindOf(v))}
	}

	var errs []error
	for _, key := range sortedKeys(section) {
		if !contains(keys, key) {
			errs = append(errs, unknownKey(name, key, keys))
			continue
		}
		if _, err := scalar(section[key]); err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", name, key, err))
		}
	}
	return errs
}

func validateSubjects(v any) []error {
	if v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return []error{fmt.Errorf("%s: expected a list, got %s", SectionSubjects, kindOf(v))}
	}

	var errs []error
	if len(list) > domain.MaxSubjects {
		errs = append(errs, fmt.Errorf("%s: %d entries: %w", SectionSubjects, len(list), domain.ErrMaxRowsExceeded))
	}
	keys := subjectKeys()
	for i, item := range list {
		path := fmt.Sprintf("%s[%d]", SectionSubjects, i)
		row, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: expected a mapping, got %s", path, kindOf(item)))
			continue
		}
		for _, key := range sortedKeys(row) {
			if !contains(keys, key) {
				errs = append(errs, unknownKey(path, key, keys))
				continue
			}
			if _, err := scalar(row[key]); err != nil {
				errs = append(errs, fmt.Errorf("%s.%s: %w", path, key, err))
			}
		}
	}
	return errs
}

func unknownKey(parent, key string, known []string) error {
	path := key
	if parent != "" {
		path = parent + "." + key
	}
	if s := validate.Suggest(key, known); s != "" {
		return fmt.Errorf("%s: unknown key (did you mean %q?)", path, s)
	}
	return fmt.Errorf("%s: unknown key", path)
}

// scalar renders a decoded value as the text a user would have typed.
func scalar(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", fmt.Errorf("expected a finite number")
		}
		return validate.FormatNumber(x), nil
	default:
		return "", fmt.Errorf("expected a string or number, got %s", kindOf(v))
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case map[string]any:
		return "mapping"
	case []any:
		return "list"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
