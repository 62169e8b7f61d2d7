package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/scholarform/internal/db"
	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/form"
	"github.com/alexanderramin/scholarform/internal/repository"
	"github.com/alexanderramin/scholarform/internal/validate"
	"github.com/google/uuid"
)

type applicationService struct {
	def      form.Definition
	apps     repository.ApplicationRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewApplicationService(
	def form.Definition,
	apps repository.ApplicationRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ApplicationService {
	return &applicationService{
		def:      def,
		apps:     apps,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *applicationService) Check(app *domain.Application) (*CheckResult, error) {
	state := form.New(s.def)
	if err := state.Load(app); err != nil {
		return nil, fmt.Errorf("loading application: %w", err)
	}
	result := &CheckResult{Steps: make(map[domain.Step]validate.Report, len(domain.Steps))}
	for _, step := range domain.Steps {
		result.Steps[step] = state.ValidateStep(step)
	}
	return result, nil
}

func (s *applicationService) Submit(ctx context.Context, app *domain.Application) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"subjects": len(app.Subjects)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit-application",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var result *CheckResult
	result, err = s.Check(app)
	if err != nil {
		return err
	}
	if !result.Valid() {
		fields["failures"] = result.FailureCount()
		return &ValidationError{Result: result}
	}

	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.SubmittedAt.IsZero() {
		app.SubmittedAt = startedAt
	}
	fields["id"] = app.DisplayID()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteApplicationRepo(tx).Create(ctx, app)
	})
	if err != nil {
		return fmt.Errorf("storing application: %w", err)
	}
	return nil
}

func (s *applicationService) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	return s.apps.GetByPrefix(ctx, id)
}

func (s *applicationService) List(ctx context.Context, limit int) ([]*domain.Application, error) {
	return s.apps.List(ctx, limit)
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	app, err := s.apps.GetByPrefix(ctx, id)
	if err != nil {
		return err
	}
	return s.apps.Delete(ctx, app.ID)
}
