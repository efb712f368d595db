package postgres

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique index on (job_id,
// applicant_id) makes the duplicate check atomic: a concurrent duplicate
// insert fails with domain.ErrDuplicate instead of succeeding twice.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (id, job_id, applicant_id, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.ApplicantID, app.Status, app.CreatedAt, app.UpdatedAt,
	)
	return translateError(err)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
		       j.title, c.name, u.fullname
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN companies c ON j.company_id = c.id
		LEFT JOIN users u ON a.applicant_id = u.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
		&app.JobTitle, &app.CompanyName, &app.ApplicantName,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &app, nil
}

// GetByJobID lists a job's applications with applicant names joined in.
// This query, not the job's application_ids cache, is the source of truth.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
		       j.title, c.name, u.fullname
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN companies c ON j.company_id = c.id
		LEFT JOIN users u ON a.applicant_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`
	return r.fetch(ctx, query, jobID)
}

func (r *applicationRepo) GetByApplicantID(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
		       j.title, c.name, u.fullname
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN companies c ON j.company_id = c.id
		LEFT JOIN users u ON a.applicant_id = u.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`
	return r.fetch(ctx, query, applicantID)
}

func (r *applicationRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&app.JobTitle, &app.CompanyName, &app.ApplicantName,
		); err != nil {
			return nil, translateError(err)
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus is a compare-and-set: the row is only written while still
// pending, so two concurrent decisions cannot both leave pending and a
// terminal status is never overwritten. Zero rows affected means the
// application was decided (or removed) since it was read.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status=$2, updated_at=NOW()
              WHERE id=$1 AND status=$3`
	tag, err := r.db.Exec(ctx, query, id, status, domain.ApplicationStatusPending)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}
