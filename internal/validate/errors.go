package validate

import "fmt"

// FieldError is a single failed rule on a named field.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Report is the outcome of validating a set of fields.
type Report []FieldError

// Valid reports whether no field failed.
func (r Report) Valid() bool { return len(r) == 0 }

// Messages returns the failure messages keyed by field name.
func (r Report) Messages() map[string]string {
	out := make(map[string]string, len(r))
	for _, fe := range r {
		out[fe.Field] = fe.Message
	}
	return out
}

// ErrorSet is the current error list shown next to each field. A field is
// either absent or present with exactly one message, so repeated
// validation never duplicates an entry.
type ErrorSet struct {
	messages map[string]string
	order    []string
}

// NewErrorSet returns an empty ErrorSet.
func NewErrorSet() *ErrorSet {
	return &ErrorSet{messages: make(map[string]string)}
}

// Set records msg for field, replacing any previous message.
func (s *ErrorSet) Set(field, msg string) {
	if _, ok := s.messages[field]; !ok {
		s.order = append(s.order, field)
	}
	s.messages[field] = msg
}

// Clear removes the error for field, if any.
func (s *ErrorSet) Clear(field string) {
	if _, ok := s.messages[field]; !ok {
		return
	}
	delete(s.messages, field)
	for i, f := range s.order {
		if f == field {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Has reports whether field currently carries an error.
func (s *ErrorSet) Has(field string) bool {
	_, ok := s.messages[field]
	return ok
}

// Message returns the current message for field, or "".
func (s *ErrorSet) Message(field string) string {
	return s.messages[field]
}

// Len returns the number of fields with errors.
func (s *ErrorSet) Len() int { return len(s.order) }

// Fields returns the failing field names in the order they first failed.
func (s *ErrorSet) Fields() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Apply clears every field in scope and then records the failures in r.
// Fields outside scope are left untouched.
func (s *ErrorSet) Apply(scope []string, r Report) {
	for _, f := range scope {
		s.Clear(f)
	}
	for _, fe := range r {
		s.Set(fe.Field, fe.Message)
	}
}

// Reset removes all errors.
func (s *ErrorSet) Reset() {
	s.messages = make(map[string]string)
	s.order = nil
}
