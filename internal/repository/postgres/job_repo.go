package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (id, title, description, requirements, salary, experience_years,
                location, job_type, positions, company_id, recruiter_id, application_ids,
                created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, pq.Array(job.Requirements), job.Salary, job.ExperienceYears,
		job.Location, job.JobType, job.Positions, job.CompanyID, job.RecruiterID,
		pq.Array(job.ApplicationIDs), job.CreatedAt, job.UpdatedAt,
	)
	return translateError(err)
}

const jobSelect = `
	SELECT j.id, j.title, j.description, j.requirements, j.salary, j.experience_years,
	       j.location, j.job_type, j.positions, j.company_id, j.recruiter_id,
	       j.application_ids, j.created_at, j.updated_at, c.name
	FROM jobs j
	LEFT JOIN companies c ON j.company_id = c.id`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	var requirements, applicationIDs []string
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, pq.Array(&requirements), &j.Salary, &j.ExperienceYears,
		&j.Location, &j.JobType, &j.Positions, &j.CompanyID, &j.RecruiterID,
		pq.Array(&applicationIDs), &j.CreatedAt, &j.UpdatedAt, &j.CompanyName,
	)
	if err != nil {
		return nil, translateError(err)
	}
	j.Requirements = requirements
	j.ApplicationIDs = applicationIDs
	return &j, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id))
}

// Search returns jobs whose title or description contains the keyword,
// case-insensitive. An empty keyword matches everything.
func (r *jobRepo) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	query := jobSelect + `
		WHERE j.title ILIKE '%' || $1 || '%' OR j.description ILIKE '%' || $1 || '%'
		ORDER BY j.created_at DESC`
	return r.fetch(ctx, query, keyword)
}

func (r *jobRepo) FetchByRecruiterID(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	query := jobSelect + ` WHERE j.recruiter_id = $1 ORDER BY j.created_at DESC`
	return r.fetch(ctx, query, recruiterID)
}

func (r *jobRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title=$2, description=$3, requirements=$4, salary=$5,
                experience_years=$6, location=$7, job_type=$8, positions=$9, updated_at=NOW()
              WHERE id=$1`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, pq.Array(job.Requirements), job.Salary,
		job.ExperienceYears, job.Location, job.JobType, job.Positions,
	)
	return translateError(err)
}

// AppendApplicationID adds an application reference to the job's
// denormalized list. The list is a rebuildable cache; a failure here does
// not invalidate the application row itself.
func (r *jobRepo) AppendApplicationID(ctx context.Context, jobID, applicationID string) error {
	query := `UPDATE jobs SET application_ids = array_append(application_ids, $2), updated_at=NOW()
              WHERE id=$1`
	_, err := r.db.Exec(ctx, query, jobID, applicationID)
	return translateError(err)
}
