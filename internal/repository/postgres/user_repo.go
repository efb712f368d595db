package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, fullname, email, phone_number, password_hash, role,
                bio, skills, resume_uri, resume_original_name, profile_photo_uri,
                profile_photo_preview_uri, company_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.FullName, user.Email, user.PhoneNumber, user.PasswordHash, user.Role,
		user.Profile.Bio, pq.Array(user.Profile.Skills),
		user.Profile.ResumeURI, user.Profile.ResumeOriginalName,
		user.Profile.ProfilePhotoURI, user.Profile.ProfilePhotoPreviewURI, user.Profile.CompanyID,
		user.CreatedAt, user.UpdatedAt,
	)
	return translateError(err)
}

const userColumns = `id, fullname, email, phone_number, password_hash, role,
    bio, skills, resume_uri, resume_original_name, profile_photo_uri,
    profile_photo_preview_uri, company_id, created_at, updated_at`

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepo) getBy(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	var skills []string
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.FullName, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.Role,
		&u.Profile.Bio, pq.Array(&skills),
		&u.Profile.ResumeURI, &u.Profile.ResumeOriginalName,
		&u.Profile.ProfilePhotoURI, &u.Profile.ProfilePhotoPreviewURI, &u.Profile.CompanyID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	u.Profile.Skills = skills
	return &u, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET fullname=$2, email=$3, phone_number=$4, password_hash=$5,
                bio=$6, skills=$7, resume_uri=$8, resume_original_name=$9,
                profile_photo_uri=$10, profile_photo_preview_uri=$11, company_id=$12,
                updated_at=NOW()
              WHERE id=$1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.FullName, user.Email, user.PhoneNumber, user.PasswordHash,
		user.Profile.Bio, pq.Array(user.Profile.Skills),
		user.Profile.ResumeURI, user.Profile.ResumeOriginalName,
		user.Profile.ProfilePhotoURI, user.Profile.ProfilePhotoPreviewURI, user.Profile.CompanyID,
	)
	return translateError(err)
}
