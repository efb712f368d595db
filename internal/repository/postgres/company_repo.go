package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, name, description, website, location, logo_uri, logo_preview_uri, recruiter_id, created_at, updated_at`

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (id, name, description, website, location, logo_uri, logo_preview_uri, recruiter_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Website, company.Location,
		company.LogoURI, company.LogoPreviewURI, company.RecruiterID, company.CreatedAt, company.UpdatedAt,
	)
	return translateError(err)
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.getBy(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

func (r *companyRepo) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	return r.getBy(ctx, `SELECT `+companyColumns+` FROM companies WHERE name = $1`, name)
}

func (r *companyRepo) getBy(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var c domain.Company
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Description, &c.Website, &c.Location,
		&c.LogoURI, &c.LogoPreviewURI, &c.RecruiterID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *companyRepo) FetchByRecruiterID(ctx context.Context, recruiterID string) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE recruiter_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Website, &c.Location,
			&c.LogoURI, &c.LogoPreviewURI, &c.RecruiterID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, translateError(err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET name=$2, description=$3, website=$4, location=$5, logo_uri=$6,
                logo_preview_uri=$7, updated_at=NOW()
              WHERE id=$1`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Website, company.Location,
		company.LogoURI, company.LogoPreviewURI,
	)
	return translateError(err)
}
