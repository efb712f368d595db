package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/password"
	"go-jobportal-backend/pkg/storage"
	"go-jobportal-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) FetchByRecruiterID(ctx context.Context, recruiterID string) ([]domain.Company, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchByRecruiterID(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) AppendApplicationID(ctx context.Context, jobID, applicationID string) error {
	return m.Called(ctx, jobID, applicationID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByApplicantID(ctx context.Context, applicantID string) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// Test helpers

func authedCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, role)
}

func testIngestor() *storage.Ingestor {
	return storage.NewIngestor(storage.NewInlineStore())
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestRegister(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	t.Run("Should normalize email before storing", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, testIngestor())

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "jane@example.com", u.Email)
			assert.NotEqual(t, "secret123", u.PasswordHash)
		})

		user, err := uc.Register(context.Background(), &domain.RegisterInput{
			FullName:    "Jane Doe",
			Email:       "  JANE@Example.COM ",
			PhoneNumber: "08123456789",
			Password:    "secret123",
			Role:        domain.RoleStudent,
		})
		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject unknown role", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, testIngestor())

		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "secret123",
			Role:     "admin",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "student or recruiter")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should return conflict when email is already taken", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, testIngestor())

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicate)

		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "secret123",
			Role:     domain.RoleStudent,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Should not create the user when the profile photo fails ingestion", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, testIngestor())

		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "secret123",
			Role:     domain.RoleStudent,
			ProfilePhoto: &storage.Upload{
				Data:     []byte("not an image"),
				Filename: "photo.exe",
			},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestLogin(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	hashed := func(plain string) string {
		h, err := password.Hash(plain)
		assert.NoError(t, err)
		return h
	}

	t.Run("Should not reveal whether the email exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, testIngestor())

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, _, errUnknown := uc.Login(context.Background(), "ghost@example.com", "whatever")
		assert.Error(t, errUnknown)

		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(&domain.User{
			ID:           "user1",
			Email:        "jane@example.com",
			PasswordHash: hashed("correct-horse"),
			Role:         domain.RoleStudent,
		}, nil)

		_, _, errWrongPass := uc.Login(context.Background(), "jane@example.com", "wrong-pass")
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("Should issue a token on valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, testIngestor())

		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(&domain.User{
			ID:           "user1",
			Email:        "jane@example.com",
			PasswordHash: hashed("correct-horse"),
			Role:         domain.RoleStudent,
		}, nil)

		user, tokenString, err := uc.Login(context.Background(), "Jane@Example.com", "correct-horse")
		assert.NoError(t, err)
		assert.Equal(t, "user1", user.ID)

		claims, err := tokens.Validate(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, "user1", claims.UserID)
		assert.Equal(t, domain.RoleStudent, claims.Role)
	})
}

func TestProfileUpdateAuthorization(t *testing.T) {
	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, testIngestor())

		_, err := uc.UpdateProfile(authedCtx("user1", domain.RoleStudent), "user2", &domain.ProfileUpdate{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should fail safely when identity is missing from context", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, testIngestor())

		_, err := uc.UpdateProfile(context.Background(), "user1", &domain.ProfileUpdate{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}

func TestProfileUpdateMerge(t *testing.T) {
	storedStudent := func() *domain.User {
		return &domain.User{
			ID:          "user1",
			FullName:    "Jane Doe",
			PhoneNumber: "08111111111",
			Role:        domain.RoleStudent,
			Profile: domain.Profile{
				Bio:    "Old bio",
				Skills: []string{"Go"},
			},
		}
	}

	t.Run("Should keep omitted fields and overwrite supplied empty ones", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, testIngestor())

		mockRepo.On("GetByID", mock.Anything, "user1").Return(storedStudent(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.UpdateProfile(authedCtx("user1", domain.RoleStudent), "user1", &domain.ProfileUpdate{
			Student: &domain.StudentProfileUpdate{
				Bio: strPtr(""), // explicit clear
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "", user.Profile.Bio)
		assert.Equal(t, "08111111111", user.PhoneNumber) // untouched
		assert.Equal(t, "Jane Doe", user.FullName)       // untouched
	})

	t.Run("Should normalize the skills list", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, testIngestor())

		mockRepo.On("GetByID", mock.Anything, "user1").Return(storedStudent(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.UpdateProfile(authedCtx("user1", domain.RoleStudent), "user1", &domain.ProfileUpdate{
			Student: &domain.StudentProfileUpdate{
				Skills: strPtr(" Go ,, Postgres ,Redis, "),
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Go", "Postgres", "Redis"}, user.Profile.Skills)
	})

	t.Run("Should silently drop student fields for recruiters", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, testIngestor())

		recruiter := &domain.User{
			ID:       "rec1",
			FullName: "Rex Recruiter",
			Role:     domain.RoleRecruiter,
		}
		mockRepo.On("GetByID", mock.Anything, "rec1").Return(recruiter, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.UpdateProfile(authedCtx("rec1", domain.RoleRecruiter), "rec1", &domain.ProfileUpdate{
			PhoneNumber: strPtr("08999999999"),
			Student: &domain.StudentProfileUpdate{
				Bio:    strPtr("should not stick"),
				Skills: strPtr("hacking"),
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "08999999999", user.PhoneNumber)
		assert.Equal(t, "", user.Profile.Bio)
		assert.Empty(t, user.Profile.Skills)
	})

	t.Run("Should store resume URI and original filename", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, testIngestor())

		mockRepo.On("GetByID", mock.Anything, "user1").Return(storedStudent(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		pdf := append([]byte("%PDF-1.4"), []byte(" my resume contents")...)
		user, err := uc.UpdateProfile(authedCtx("user1", domain.RoleStudent), "user1", &domain.ProfileUpdate{
			Student: &domain.StudentProfileUpdate{
				Resume: &storage.Upload{Data: pdf, Filename: "Jane Doe Resume.pdf"},
			},
		})
		assert.NoError(t, err)
		assert.NotNil(t, user.Profile.ResumeURI)
		assert.Equal(t, "Jane Doe Resume.pdf", *user.Profile.ResumeOriginalName)

		data, _, err := storage.DecodeDataURI(*user.Profile.ResumeURI)
		assert.NoError(t, err)
		assert.Equal(t, pdf, data)
	})
}

func TestCompanyRegister(t *testing.T) {
	t.Run("Should reject students", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, new(MockUserRepo), testIngestor())

		_, err := uc.Register(authedCtx("user1", domain.RoleStudent), "Acme", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
	})

	t.Run("Should reject blank names", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, new(MockUserRepo), testIngestor())

		_, err := uc.Register(authedCtx("rec1", domain.RoleRecruiter), "   ", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("Should return conflict when the name is taken", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, new(MockUserRepo), testIngestor())

		mockRepo.On("GetByName", mock.Anything, "Acme").Return(&domain.Company{
			ID:   "existing",
			Name: "Acme",
		}, nil)

		_, err := uc.Register(authedCtx("rec1", domain.RoleRecruiter), "Acme", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should return conflict when a concurrent registration wins the name", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, new(MockUserRepo), testIngestor())

		mockRepo.On("GetByName", mock.Anything, "Acme").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).Return(domain.ErrDuplicate)

		_, err := uc.Register(authedCtx("rec1", domain.RoleRecruiter), "Acme", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Should bind the company to the calling recruiter and link the profile", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, mockUsers, testIngestor())

		mockRepo.On("GetByName", mock.Anything, "Acme").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).Return(nil)
		mockUsers.On("GetByID", mock.Anything, "rec1").Return(&domain.User{
			ID:   "rec1",
			Role: domain.RoleRecruiter,
		}, nil)
		mockUsers.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotNil(t, u.Profile.CompanyID)
		})

		company, err := uc.Register(authedCtx("rec1", domain.RoleRecruiter), "  Acme  ", nil)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
		assert.Equal(t, "rec1", company.RecruiterID)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Should not fail registration when the profile link write fails", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, mockUsers, testIngestor())

		mockRepo.On("GetByName", mock.Anything, "Acme").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).Return(nil)
		mockUsers.On("GetByID", mock.Anything, "rec1").Return(&domain.User{ID: "rec1"}, nil)
		mockUsers.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(assert.AnError)

		company, err := uc.Register(authedCtx("rec1", domain.RoleRecruiter), "Acme", nil)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
	})
}

func TestCompanyUpdateOwnership(t *testing.T) {
	t.Run("Should deny recruiters who do not own the company", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, new(MockUserRepo), testIngestor())

		mockRepo.On("GetByID", mock.Anything, "comp1").Return(&domain.Company{
			ID:          "comp1",
			Name:        "Acme",
			RecruiterID: "someone-else",
		}, nil)

		_, err := uc.Update(authedCtx("rec1", domain.RoleRecruiter), "comp1", &domain.CompanyUpdate{
			Name: strPtr("Evil Corp"),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestJobPost(t *testing.T) {
	validInput := func() *domain.PostJobInput {
		return &domain.PostJobInput{
			Title:        "Backend Engineer",
			Description:  "Build APIs",
			Requirements: "Go, Postgres",
			Salary:       "10-15 LPA",
			Location:     "Jakarta",
			JobType:      domain.JobTypeFullTime,
			Positions:    2,
			CompanyID:    "comp1",
		}
	}

	t.Run("Should reject students", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		_, err := uc.Post(authedCtx("user1", domain.RoleStudent), validInput())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
	})

	t.Run("Should require a registered company first", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		companyRepo.On("FetchByRecruiterID", mock.Anything, "rec1").Return([]domain.Company{}, nil)

		_, err := uc.Post(authedCtx("rec1", domain.RoleRecruiter), validInput())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Register a company")
	})

	t.Run("Should deny posting under another recruiter's company", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		companyRepo.On("FetchByRecruiterID", mock.Anything, "rec1").Return([]domain.Company{{ID: "own"}}, nil)
		companyRepo.On("GetByID", mock.Anything, "comp1").Return(&domain.Company{
			ID:          "comp1",
			RecruiterID: "someone-else",
		}, nil)

		_, err := uc.Post(authedCtx("rec1", domain.RoleRecruiter), validInput())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
		jobRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject unknown job types", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		companyRepo.On("FetchByRecruiterID", mock.Anything, "rec1").Return([]domain.Company{{ID: "comp1"}}, nil)
		companyRepo.On("GetByID", mock.Anything, "comp1").Return(&domain.Company{
			ID:          "comp1",
			RecruiterID: "rec1",
		}, nil)

		input := validInput()
		input.JobType = "Gig"
		_, err := uc.Post(authedCtx("rec1", domain.RoleRecruiter), input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job type")
	})

	t.Run("Should create the job with normalized requirements", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		companyRepo.On("FetchByRecruiterID", mock.Anything, "rec1").Return([]domain.Company{{ID: "comp1"}}, nil)
		companyRepo.On("GetByID", mock.Anything, "comp1").Return(&domain.Company{
			ID:          "comp1",
			RecruiterID: "rec1",
		}, nil)
		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.Post(authedCtx("rec1", domain.RoleRecruiter), validInput())
		assert.NoError(t, err)
		assert.Equal(t, []string{"Go", "Postgres"}, job.Requirements)
		assert.Equal(t, "rec1", job.RecruiterID)
		assert.Equal(t, "comp1", job.CompanyID)
	})
}

func TestJobUpdateOwnership(t *testing.T) {
	t.Run("Should re-resolve ownership through the company on every call", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		// rec1 posted the job, but the company has since changed hands.
		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID:          "job1",
			CompanyID:   "comp1",
			RecruiterID: "rec1",
		}, nil)
		companyRepo.On("GetByID", mock.Anything, "comp1").Return(&domain.Company{
			ID:          "comp1",
			RecruiterID: "new-owner",
		}, nil)

		_, err := uc.Update(authedCtx("rec1", domain.RoleRecruiter), "job1", &domain.UpdateJobInput{
			Title: strPtr("New title"),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
		jobRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should merge only the supplied fields", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID:          "job1",
			Title:       "Backend Engineer",
			Description: "Build APIs",
			JobType:     domain.JobTypeFullTime,
			Positions:   2,
			CompanyID:   "comp1",
			RecruiterID: "rec1",
		}, nil)
		companyRepo.On("GetByID", mock.Anything, "comp1").Return(&domain.Company{
			ID:          "comp1",
			RecruiterID: "rec1",
		}, nil)
		jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.Update(authedCtx("rec1", domain.RoleRecruiter), "job1", &domain.UpdateJobInput{
			Positions: intPtr(5),
		})
		assert.NoError(t, err)
		assert.Equal(t, 5, job.Positions)
		assert.Equal(t, "Backend Engineer", job.Title)
	})
}

func TestApply(t *testing.T) {
	t.Run("Should reject recruiters", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		_, err := uc.Apply(authedCtx("rec1", domain.RoleRecruiter), "job1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
	})

	t.Run("Should return conflict on a duplicate application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{ID: "job1"}, nil)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)

		_, err := uc.Apply(authedCtx("user1", domain.RoleStudent), "job1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should succeed even when the job index append fails", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{ID: "job1"}, nil)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)
		jobRepo.On("AppendApplicationID", mock.Anything, "job1", mock.AnythingOfType("string")).Return(assert.AnError)

		app, err := uc.Apply(authedCtx("user1", domain.RoleStudent), "job1")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "user1", app.ApplicantID)
	})
}

func TestSetStatus(t *testing.T) {
	ownedJobAndCompany := func(jobRepo *MockJobRepo, companyRepo *MockCompanyRepo) {
		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID:        "job1",
			CompanyID: "comp1",
		}, nil)
		companyRepo.On("GetByID", mock.Anything, "comp1").Return(&domain.Company{
			ID:          "comp1",
			RecruiterID: "rec1",
		}, nil)
	}

	t.Run("Should reject statuses outside accepted/rejected", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		_, err := uc.SetStatus(authedCtx("rec1", domain.RoleRecruiter), "app1", domain.ApplicationStatusPending)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "accepted or rejected")
	})

	t.Run("Should deny recruiters who do not own the job's company", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		appRepo.On("GetByID", mock.Anything, "app1").Return(&domain.Application{
			ID:     "app1",
			JobID:  "job1",
			Status: domain.ApplicationStatusPending,
		}, nil)
		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID:        "job1",
			CompanyID: "comp1",
		}, nil)
		companyRepo.On("GetByID", mock.Anything, "comp1").Return(&domain.Company{
			ID:          "comp1",
			RecruiterID: "someone-else",
		}, nil)

		_, err := uc.SetStatus(authedCtx("rec1", domain.RoleRecruiter), "app1", domain.ApplicationStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should move a pending application to accepted", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		appRepo.On("GetByID", mock.Anything, "app1").Return(&domain.Application{
			ID:     "app1",
			JobID:  "job1",
			Status: domain.ApplicationStatusPending,
		}, nil)
		ownedJobAndCompany(jobRepo, companyRepo)
		appRepo.On("UpdateStatus", mock.Anything, "app1", domain.ApplicationStatusAccepted).Return(nil)

		app, err := uc.SetStatus(authedCtx("rec1", domain.RoleRecruiter), "app1", domain.ApplicationStatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusAccepted, app.Status)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should surface a lost pending-to-terminal race as a conflict", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		// The read sees pending, but a concurrent decision lands before
		// the guarded write, so the repository reports the transition as
		// no longer possible.
		appRepo.On("GetByID", mock.Anything, "app1").Return(&domain.Application{
			ID:     "app1",
			JobID:  "job1",
			Status: domain.ApplicationStatusPending,
		}, nil)
		ownedJobAndCompany(jobRepo, companyRepo)
		appRepo.On("UpdateStatus", mock.Anything, "app1", domain.ApplicationStatusRejected).Return(domain.ErrInvalidTransition)

		_, err := uc.SetStatus(authedCtx("rec1", domain.RoleRecruiter), "app1", domain.ApplicationStatusRejected)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already been decided")
	})

	t.Run("Should refuse to change a terminal application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		appRepo.On("GetByID", mock.Anything, "app1").Return(&domain.Application{
			ID:     "app1",
			JobID:  "job1",
			Status: domain.ApplicationStatusRejected,
		}, nil)
		ownedJobAndCompany(jobRepo, companyRepo)

		_, err := uc.SetStatus(authedCtx("rec1", domain.RoleRecruiter), "app1", domain.ApplicationStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already rejected")
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestApplicationListings(t *testing.T) {
	t.Run("Should let owners list a job's applications", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID:        "job1",
			CompanyID: "comp1",
		}, nil)
		companyRepo.On("GetByID", mock.Anything, "comp1").Return(&domain.Company{
			ID:          "comp1",
			RecruiterID: "rec1",
		}, nil)
		appRepo.On("GetByJobID", mock.Anything, "job1").Return([]domain.Application{{ID: "app1"}}, nil)

		apps, err := uc.ListForJob(authedCtx("rec1", domain.RoleRecruiter), "job1")
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("Should restrict my-applications to students", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo)

		_, err := uc.ListForStudent(authedCtx("rec1", domain.RoleRecruiter))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
	})
}
