package service

import (
	"context"

	"github.com/alexanderramin/scholarform/internal/domain"
)

type ApplicationService interface {
	// Submit validates every step of app and stores it with its subjects.
	// ID and SubmittedAt are assigned when empty.
	Submit(ctx context.Context, app *domain.Application) error
	// Check runs the step validators over app without storing it.
	Check(app *domain.Application) (*CheckResult, error)
	// GetByID accepts a full ID or a unique prefix such as a display ID.
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context, limit int) ([]*domain.Application, error)
	Delete(ctx context.Context, id string) error
}
