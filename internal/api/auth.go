package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eripro/connect/internal/auth"
	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/repository"
)

// AuthHandler serves the only public endpoints: register and login.
type AuthHandler struct {
	users     repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewAuthHandler(users repository.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

type registerRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	FatherName      string `json:"father_name" binding:"required"`
	Department      string `json:"department" binding:"required"`

	Specialization        string                   `json:"specialization"`
	YearsOfExperience     int                      `json:"years_of_experience" binding:"gte=0"`
	Country               string                   `json:"country"`
	Telephone             string                   `json:"telephone"`
	Gender                string                   `json:"gender"`
	BirthPlace            string                   `json:"birth_place"`
	HasEritreanID         bool                     `json:"has_eritrean_id"`
	EritreanIDNumber      string                   `json:"eritrean_id_number"`
	WantsToWorkInEritrea  string                   `json:"wants_to_work_in_eritrea"`
	WorkDurationInEritrea string                   `json:"work_duration_in_eritrea"`
	PrimaryGoal           string                   `json:"primary_goal"`
	AgeGroup              string                   `json:"age_group"`
	Bio                   string                   `json:"bio"`
	Skills                []string                 `json:"skills"`
	SocialMediaLinks      *models.SocialMediaLinks `json:"social_media_links"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// authResponse carries the session token plus the resolved profile so
// the client does not need a follow-up request.
type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles POST /v1/auth/register. Self-registered accounts
// always start at the lowest role; only management endpoints can raise
// it later.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		return
	}

	department := models.Department(req.Department)
	if !department.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown department"})
		return
	}

	existing, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("failed to check existing user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), &models.User{
		Email:                 req.Email,
		Password:              req.Password,
		FirstName:             req.FirstName,
		FatherName:            req.FatherName,
		Role:                  models.RoleUser,
		Department:            department,
		AvatarURL:             fmt.Sprintf("https://picsum.photos/seed/%d/100/100", time.Now().UnixMilli()),
		Specialization:        req.Specialization,
		YearsOfExperience:     req.YearsOfExperience,
		Country:               req.Country,
		Telephone:             req.Telephone,
		Gender:                req.Gender,
		BirthPlace:            req.BirthPlace,
		HasEritreanID:         req.HasEritreanID,
		EritreanIDNumber:      req.EritreanIDNumber,
		WantsToWorkInEritrea:  req.WantsToWorkInEritrea,
		WorkDurationInEritrea: req.WorkDurationInEritrea,
		PrimaryGoal:           req.PrimaryGoal,
		AgeGroup:              req.AgeGroup,
		Bio:                   req.Bio,
		Skills:                req.Skills,
		SocialMediaLinks:      req.SocialMediaLinks,
	})
	if err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	token, err := auth.GenerateToken(user, h.jwtSecret, h.tokenTTL)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	h.logger.Info("user registered", zap.Int64("user", user.ID), zap.String("department", string(user.Department)))
	c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles POST /v1/auth/login. Unknown email and wrong password
// produce the same generic 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("failed to find user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if user == nil || user.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(user, h.jwtSecret, h.tokenTTL)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
