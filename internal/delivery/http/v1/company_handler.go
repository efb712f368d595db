package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := protected.Group("/companies")
	{
		companies.POST("", handler.Register)
		companies.GET("", handler.ListMine)
		companies.GET("/:id", handler.Get)
		companies.PUT("/:id", handler.Update)
	}
}

// Register godoc
// @Summary      Register a company
// @Description  Create a company owned by the calling recruiter. Name must be unique.
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Register(c *gin.Context) {
	name := c.PostForm("name")

	logo, err := formUpload(c, "logo")
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}

	company, uerr := h.companyUC.Register(c.Request.Context(), name, logo)
	if uerr != nil {
		c.Error(uerr)
		return
	}

	response.Success(c, http.StatusCreated, "Company registered successfully", company)
}

// Update godoc
// @Summary      Update a company
// @Description  Partial update; only the owning recruiter may call this.
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	logo, err := formUpload(c, "logo")
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}

	update := &domain.CompanyUpdate{
		Name:        formString(c, "name"),
		Description: formString(c, "description"),
		Website:     formString(c, "website"),
		Location:    formString(c, "location"),
		Logo:        logo,
	}

	company, uerr := h.companyUC.Update(c.Request.Context(), c.Param("id"), update)
	if uerr != nil {
		c.Error(uerr)
		return
	}

	response.Success(c, http.StatusOK, "Company updated successfully", company)
}

// Get godoc
// @Summary      Get company by id
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
// @Security     BearerAuth
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company found", company)
}

// ListMine godoc
// @Summary      List companies owned by the caller
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /companies [get]
// @Security     BearerAuth
func (h *CompanyHandler) ListMine(c *gin.Context) {
	companies, err := h.companyUC.ListMine(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Companies retrieved", companies)
}
