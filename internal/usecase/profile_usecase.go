package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/authz"
	"go-jobportal-backend/pkg/storage"
)

type profileUsecase struct {
	userRepo domain.UserRepository
	ingestor *storage.Ingestor
}

func NewProfileUsecase(userRepo domain.UserRepository, ingestor *storage.Ingestor) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo: userRepo,
		ingestor: ingestor,
	}
}

// UpdateProfile merges the supplied fields into the stored profile.
// Self-service only: the caller must be the profile's owner. Nil fields are
// left untouched; a supplied empty value overwrites with empty. Student-only
// fields carried in update.Student are persisted only for students. The
// handler already drops them for recruiters; the role check here keeps
// that invariant even for other callers of this usecase.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) (*domain.User, error) {
	id := authz.FromContext(ctx)
	if err := authz.Authorize(id, "", func() bool { return id.UserID == userID }); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	if update.PhoneNumber != nil {
		user.PhoneNumber = *update.PhoneNumber
	}
	if update.ProfilePhoto != nil {
		asset, err := u.ingestor.Ingest(ctx, update.ProfilePhoto)
		if err != nil {
			return nil, ingestError(err)
		}
		user.Profile.ProfilePhotoURI = &asset.URI
		user.Profile.ProfilePhotoPreviewURI = asset.PreviewURI
	}

	if user.Role == domain.RoleStudent && update.Student != nil {
		s := update.Student
		if s.FullName != nil {
			user.FullName = *s.FullName
		}
		if s.Bio != nil {
			user.Profile.Bio = *s.Bio
		}
		if s.Skills != nil {
			user.Profile.Skills = splitCSV(*s.Skills)
		}
		if s.Resume != nil {
			asset, err := u.ingestor.Ingest(ctx, s.Resume)
			if err != nil {
				return nil, ingestError(err)
			}
			user.Profile.ResumeURI = &asset.URI
			user.Profile.ResumeOriginalName = &asset.OriginalName
		}
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}
