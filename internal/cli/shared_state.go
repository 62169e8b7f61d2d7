package cli

import "github.com/alexanderramin/scholarform/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Submitted is set once the application has been stored.
	Submitted *domain.Application

	// Terminal dimensions
	Width  int
	Height int
}

