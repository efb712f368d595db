package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.Get)
		jobs.POST("", handler.Post)
		jobs.PUT("/:id", handler.Update)
	}

	recruiters := protected.Group("/recruiters")
	{
		recruiters.GET("/jobs", handler.ListMine)
	}
}

type PostJobRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Requirements    string `json:"requirements"`
	Salary          string `json:"salary" binding:"required"`
	ExperienceYears int    `json:"experience" binding:"min=0"`
	Location        string `json:"location" binding:"required"`
	JobType         string `json:"jobType" binding:"required"`
	Positions       int    `json:"positions" binding:"required,min=1"`
	CompanyID       string `json:"companyId" binding:"required"`
}

// UpdateJobRequest uses pointers so absent fields stay untouched.
type UpdateJobRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Requirements    *string `json:"requirements"`
	Salary          *string `json:"salary"`
	ExperienceYears *int    `json:"experience"`
	Location        *string `json:"location"`
	JobType         *string `json:"jobType"`
	Positions       *int    `json:"positions"`
}

// Post godoc
// @Summary      Post a new job
// @Description  Create a job posting for a company owned by the calling recruiter.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      PostJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Post(c *gin.Context) {
	var req PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.Post(c.Request.Context(), &domain.PostJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          req.Salary,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		JobType:         req.JobType,
		Positions:       req.Positions,
		CompanyID:       req.CompanyID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted successfully", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Partial update; ownership is re-checked against the stored job on every call.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string            true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.Update(c.Request.Context(), c.Param("id"), &domain.UpdateJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          req.Salary,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		JobType:         req.JobType,
		Positions:       req.Positions,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Get godoc
// @Summary      Get job by id
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job found", job)
}

// List godoc
// @Summary      List jobs
// @Description  Case-insensitive keyword search over title and description; empty keyword returns all jobs.
// @Tags         jobs
// @Produce      json
// @Param        keyword  query  string  false  "Search keyword"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.List(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// ListMine godoc
// @Summary      List jobs posted by the calling recruiter
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /recruiters/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.jobUC.ListMine(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}
