package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.POST("/jobs/:id/apply", handler.Apply)
	protected.GET("/jobs/:id/applications", handler.ListForJob)
	protected.GET("/applications/me", handler.ListMine)
	protected.PATCH("/applications/:id/status", handler.SetStatus)
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Creates a pending application. A student may apply to a given job at most once.
// @Tags         applications
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	app, err := h.applicationUC.Apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// SetStatus godoc
// @Summary      Accept or reject an application
// @Description  Only pending applications can transition; accepted and rejected are final.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path  string            true  "Application ID"
// @Param        status  body  SetStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.SetStatus(c.Request.Context(), c.Param("id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}

// ListForJob godoc
// @Summary      List applications for a job
// @Description  Restricted to the recruiter owning the job's company.
// @Tags         applications
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	apps, err := h.applicationUC.ListForJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// ListMine godoc
// @Summary      List the calling student's applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationUC.ListForStudent(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}
