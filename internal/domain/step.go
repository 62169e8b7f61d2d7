package domain

import (
	"fmt"
	"strings"
)

// Step is one section of the application wizard. Steps are ordered.
type Step int

const (
	StepPersonal Step = iota
	StepMarks
	StepIncome
)

// Steps lists every step in display order.
var Steps = []Step{StepPersonal, StepMarks, StepIncome}

// Valid reports whether s is one of the known steps.
func (s Step) Valid() bool {
	return s >= StepPersonal && s <= StepIncome
}

// Key is the stable identifier used by tab headers and answer files.
func (s Step) Key() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepMarks:
		return "marks"
	case StepIncome:
		return "income"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Title is the tab header label.
func (s Step) Title() string {
	switch s {
	case StepPersonal:
		return "Personal Details"
	case StepMarks:
		return "Academic Marks"
	case StepIncome:
		return "Income & Requisition"
	default:
		return s.Key()
	}
}

func (s Step) String() string { return s.Key() }

// ParseStep resolves a step key such as "marks".
func ParseStep(key string) (Step, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "personal":
		return StepPersonal, nil
	case "marks":
		return StepMarks, nil
	case "income":
		return StepIncome, nil
	}
	return 0, fmt.Errorf("unknown step %q (want personal, marks or income)", key)
}
