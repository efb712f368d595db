package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authUC   domain.AuthUsecase
	tokens   *token.Manager
	validate *validator.Validate
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *token.Manager, validate *validator.Validate, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC:   authUC,
		tokens:   tokens,
		validate: validate,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/logout", handler.Logout)
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	FullName    string `form:"fullname" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	PhoneNumber string `form:"phoneNumber" binding:"required"`
	Password    string `form:"password" binding:"required,min=6"`
	Role        string `form:"role" binding:"required,oneof=student recruiter"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new student or recruiter account, with an optional profile photo.
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.validate.Var(req.PhoneNumber, "valid_phone"); err != nil {
		c.Error(apperror.BadRequest("Phone number is not valid"))
		return
	}

	photo, err := formUpload(c, "profilePhoto")
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}

	user, uerr := h.authUC.Register(c.Request.Context(), &domain.RegisterInput{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Password:     req.Password,
		Role:         req.Role,
		ProfilePhoto: photo,
	})
	if uerr != nil {
		c.Error(uerr)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", user)
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password; sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, tokenString, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	maxAge := int(h.tokens.TTL().Seconds())
	c.SetCookie(middleware.CookieName, tokenString, maxAge, "/", "", false, true)

	response.Success(c, http.StatusOK, "Welcome back "+user.FullName, gin.H{
		"user":  user,
		"token": tokenString,
	})
}

// Logout godoc
// @Summary      User Logout
// @Description  Clears the session cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/logout [get]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", user)
}
