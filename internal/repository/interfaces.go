package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/scholarform/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

type ApplicationRepo interface {
	Create(ctx context.Context, a *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	GetByPrefix(ctx context.Context, prefix string) (*domain.Application, error)
	List(ctx context.Context, limit int) ([]*domain.Application, error)
	Delete(ctx context.Context, id string) error
}
