package domain

import (
	"context"
	"time"

	"go-jobportal-backend/pkg/storage"
)

// User roles. Role is fixed at registration and never changes afterwards.
const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

// Profile is the role-conditional sub-record of a User. Bio, Skills and
// Resume* are populated for students only; CompanyID for recruiters only.
type Profile struct {
	Bio                string   `json:"bio,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	ResumeURI          *string  `json:"resume_uri,omitempty"`
	ResumeOriginalName *string  `json:"resume_original_name,omitempty"`
	ProfilePhotoURI    *string  `json:"profile_photo_uri,omitempty"`
	// ProfilePhotoPreviewURI is a downscaled rendition for listings; the
	// full-size original stays behind ProfilePhotoURI.
	ProfilePhotoPreviewURI *string `json:"profile_photo_preview_uri,omitempty"`
	CompanyID              *string `json:"company_id,omitempty"`
}

type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentProfileUpdate carries the student-only profile fields. The handler
// populates it only when the caller's role is student, so recruiter-supplied
// values never reach the merge.
type StudentProfileUpdate struct {
	FullName *string
	Bio      *string
	Skills   *string // comma-separated, normalized by the usecase
	Resume   *storage.Upload
}

// ProfileUpdate is a partial update: nil fields leave the stored value
// untouched; a non-nil empty string overwrites with empty.
type ProfileUpdate struct {
	PhoneNumber  *string
	ProfilePhoto *storage.Upload
	Student      *StudentProfileUpdate
}

type RegisterInput struct {
	FullName     string
	Email        string
	PhoneNumber  string
	Password     string
	Role         string
	ProfilePhoto *storage.Upload
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, userID string, update *ProfileUpdate) (*User, error)
}
