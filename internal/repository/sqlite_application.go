package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/scholarform/internal/db"
	"github.com/alexanderramin/scholarform/internal/domain"
)

// ErrAmbiguousPrefix is returned when an ID prefix matches several rows.
var ErrAmbiguousPrefix = errors.New("ambiguous id prefix")

// SQLiteApplicationRepo implements ApplicationRepo on SQLite.
type SQLiteApplicationRepo struct {
	db db.DBTX
}

// NewSQLiteApplicationRepo accepts a *sql.DB or a *sql.Tx.
func NewSQLiteApplicationRepo(conn db.DBTX) *SQLiteApplicationRepo {
	return &SQLiteApplicationRepo{db: conn}
}

const applicationColumns = `id, full_name, age, parent_name, occupation, address, relationship,
	annual_income, requisition_amount, nature_requisition, fund_amount, submitted_at`

// Create inserts the application and its subject rows. Callers wanting
// atomicity pass a transaction-scoped repo.
func (r *SQLiteApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (` + applicationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.FullName,
		a.Age,
		a.ParentName,
		a.Occupation,
		a.Address,
		a.Relationship,
		a.AnnualIncome,
		a.RequisitionAmount,
		a.NatureRequisition,
		a.FundAmount,
		formatTimestamp(a.SubmittedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting application: %w", err)
	}

	for i := range a.Subjects {
		s := &a.Subjects[i]
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO application_subjects (application_id, position, name, total_marks, score)
			VALUES (?, ?, ?, ?, ?)`,
			a.ID, i+1, s.Name(), s.TotalMarks(), s.Score(),
		)
		if err != nil {
			return fmt.Errorf("inserting subject %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *SQLiteApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id)
	a, err := scanApplication(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadSubjects(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetByPrefix resolves a display ID (a unique prefix of the full ID).
func (r *SQLiteApplicationRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.Application, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, fmt.Errorf("application: %w", ErrNotFound)
	}
	pattern := strings.NewReplacer("%", `\%`, "_", `\_`).Replace(prefix) + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM applications WHERE id LIKE ? ESCAPE '\' LIMIT 2`, pattern)
	if err != nil {
		return nil, fmt.Errorf("resolving application prefix: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning application id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating application ids: %w", err)
	}

	switch len(ids) {
	case 0:
		return nil, fmt.Errorf("application %q: %w", prefix, ErrNotFound)
	case 1:
		return r.GetByID(ctx, ids[0])
	default:
		return nil, fmt.Errorf("application %q: %w", prefix, ErrAmbiguousPrefix)
	}
}

// List returns the most recent applications first. limit <= 0 means all.
func (r *SQLiteApplicationRepo) List(ctx context.Context, limit int) ([]*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY submitted_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	var apps []*domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		apps = append(apps, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applications: %w", err)
	}

	// Subjects are loaded after the cursor is closed; a single-connection
	// pool cannot serve a nested query.
	for _, a := range apps {
		if err := r.loadSubjects(ctx, a); err != nil {
			return nil, err
		}
	}
	return apps, nil
}

func (r *SQLiteApplicationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("application: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteApplicationRepo) loadSubjects(ctx context.Context, a *domain.Application) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, total_marks, score FROM application_subjects
		WHERE application_id = ? ORDER BY position`, a.ID)
	if err != nil {
		return fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	a.Subjects = nil
	for rows.Next() {
		var name, total, score string
		if err := rows.Scan(&name, &total, &score); err != nil {
			return fmt.Errorf("scanning subject: %w", err)
		}
		a.Subjects = append(a.Subjects, domain.NewSubjectEntry(name, total, score))
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(s scanner) (*domain.Application, error) {
	var a domain.Application
	var submittedAt string
	err := s.Scan(
		&a.ID, &a.FullName, &a.Age, &a.ParentName, &a.Occupation, &a.Address, &a.Relationship,
		&a.AnnualIncome, &a.RequisitionAmount, &a.NatureRequisition, &a.FundAmount, &submittedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("application: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning application: %w", err)
	}
	a.SubmittedAt = parseTimestamp(submittedAt)
	return &a, nil
}
