package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/password"
	"go-jobportal-backend/pkg/storage"
	"go-jobportal-backend/pkg/token"

	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
	ingestor *storage.Ingestor
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager, ingestor *storage.Ingestor) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		ingestor: ingestor,
	}
}

func (u *authUsecase) Register(ctx context.Context, input *domain.RegisterInput) (*domain.User, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, apperror.BadRequest("Fullname, email and password are required")
	}
	if input.Role != domain.RoleStudent && input.Role != domain.RoleRecruiter {
		return nil, apperror.BadRequest("Role must be student or recruiter")
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FullName:     input.FullName,
		Email:        normalizeEmail(input.Email),
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Role:         input.Role,
	}

	// Ingestion must complete before the identity write so a storage
	// failure never leaves a user row pointing at a missing asset.
	if input.ProfilePhoto != nil {
		asset, err := u.ingestor.Ingest(ctx, input.ProfilePhoto)
		if err != nil {
			return nil, ingestError(err)
		}
		user.Profile.ProfilePhotoURI = &asset.URI
		user.Profile.ProfilePhotoPreviewURI = asset.PreviewURI
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("An account with this email already exists")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, pass string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		return nil, "", apperror.Internal(err)
	}

	ok, err := password.Verify(pass, user.PasswordHash)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	if !ok {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	tokenString, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, tokenString, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// ingestError maps attachment pipeline failures onto the client-facing
// taxonomy: bad uploads are the caller's fault, storage failures are ours.
func ingestError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, storage.ErrEmptyUpload):
		return apperror.BadRequest("Uploaded file is empty or has no filename")
	case errors.Is(err, storage.ErrUnsupportedType):
		return apperror.BadRequest("Uploaded file type is not allowed")
	default:
		return apperror.Internal(err)
	}
}
