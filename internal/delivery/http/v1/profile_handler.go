package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	validate  *validator.Validate
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, validate *validator.Validate) {
	handler := &ProfileHandler{profileUC: profileUC, validate: validate}

	protected.POST("/profile/update", handler.Update)
}

// Update godoc
// @Summary      Update own profile
// @Description  Partial profile update: only supplied fields overwrite. Student-only fields (fullname, bio, skills, resume) are dropped for recruiters.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profile/update [post]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	update := &domain.ProfileUpdate{
		PhoneNumber: formString(c, "phoneNumber"),
	}
	if update.PhoneNumber != nil {
		if err := h.validate.Var(*update.PhoneNumber, "valid_phone"); err != nil {
			c.Error(apperror.BadRequest("Phone number is not valid"))
			return
		}
	}

	photo, err := formUpload(c, "profilePhoto")
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	update.ProfilePhoto = photo

	// Student-only fields are bound here, at the role boundary, so
	// recruiter-supplied values never enter the merge.
	if role == domain.RoleStudent {
		resume, err := formUpload(c, "resume")
		if err != nil {
			c.Error(apperror.BadRequest("Could not read uploaded file"))
			return
		}
		update.Student = &domain.StudentProfileUpdate{
			FullName: formString(c, "fullname"),
			Bio:      formString(c, "bio"),
			Skills:   formString(c, "skills"),
			Resume:   resume,
		}
	}

	user, uerr := h.profileUC.UpdateProfile(c.Request.Context(), userID, update)
	if uerr != nil {
		c.Error(uerr)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", user)
}
