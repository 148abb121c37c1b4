package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/policy"
	"github.com/eripro/connect/internal/repository"
)

// defaultPassword is assigned to accounts created through the
// management surface; the new user is expected to change it.
const defaultPassword = "password123"

type UserHandler struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewUserHandler(users repository.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// GetMe handles GET /v1/users/me.
func (h *UserHandler) GetMe(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	FirstName        *string                  `json:"first_name"`
	FatherName       *string                  `json:"father_name"`
	Specialization   *string                  `json:"specialization"`
	AvatarURL        *string                  `json:"avatar_url"`
	Country          *string                  `json:"country"`
	Telephone        *string                  `json:"telephone"`
	Bio              *string                  `json:"bio"`
	DocumentURL      *string                  `json:"document_url"`
	Skills           []string                 `json:"skills"`
	SocialMediaLinks *models.SocialMediaLinks `json:"social_media_links"`
	Password         *string                  `json:"password"`
}

// UpdateMe handles PUT /v1/users/me. Only profile fields are
// self-editable; role and department changes go through management.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.FatherName != nil {
		user.FatherName = *req.FatherName
	}
	if req.Specialization != nil {
		user.Specialization = *req.Specialization
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.Telephone != nil {
		user.Telephone = *req.Telephone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.DocumentURL != nil {
		user.DocumentURL = *req.DocumentURL
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.SocialMediaLinks != nil {
		user.SocialMediaLinks = req.SocialMediaLinks
	}
	if req.Password != nil && *req.Password != "" {
		user.Password = *req.Password
	}

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		h.logger.Error("failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// List handles GET /v1/users, the user-management listing. Admins see
// only their own department; Super Admins see everyone. Optional query
// filters: role, department, age_group.
func (h *UserHandler) List(c *gin.Context) {
	actor := currentUser(c, h.users)
	if actor == nil {
		return
	}
	if !policy.CanViewUserManagement(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "user management requires Admin rank"})
		return
	}

	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	roleFilter := c.Query("role")
	deptFilter := c.Query("department")
	ageFilter := c.Query("age_group")

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if actor.Role == models.RoleAdmin && u.Department != actor.Department {
			continue
		}
		if roleFilter != "" && string(u.Role) != roleFilter {
			continue
		}
		if deptFilter != "" && string(u.Department) != deptFilter {
			continue
		}
		if ageFilter != "" && u.AgeGroup != ageFilter {
			continue
		}
		out = append(out, u)
	}
	c.JSON(http.StatusOK, out)
}

type createUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	FirstName  string `json:"first_name" binding:"required"`
	FatherName string `json:"father_name" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Department string `json:"department" binding:"required"`

	Specialization string `json:"specialization"`
	AgeGroup       string `json:"age_group"`
}

// Create handles POST /v1/users: management-side account creation. The
// assigned role must rank strictly below the actor's, and Admins can
// only add people to their own department. New accounts get the default
// password.
func (h *UserHandler) Create(c *gin.Context) {
	actor := currentUser(c, h.users)
	if actor == nil {
		return
	}
	if !policy.CanViewUserManagement(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "user management requires Admin rank"})
		return
	}

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.Role(req.Role)
	if !roleAssignable(actor, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot assign a role at or above your own"})
		return
	}
	department := models.Department(req.Department)
	if !department.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown department"})
		return
	}
	if actor.Role == models.RoleAdmin && department != actor.Department {
		c.JSON(http.StatusForbidden, gin.H{"error": "admins can only create users in their own department"})
		return
	}

	existing, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("failed to check existing user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), &models.User{
		Email:          req.Email,
		FirstName:      req.FirstName,
		FatherName:     req.FatherName,
		Role:           role,
		Department:     department,
		Specialization: req.Specialization,
		AgeGroup:       req.AgeGroup,
		Password:       defaultPassword,
	})
	if err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	h.logger.Info("user created by management",
		zap.Int64("actor", actor.ID), zap.Int64("user", user.ID), zap.String("role", string(user.Role)))
	c.JSON(http.StatusCreated, user)
}

type updateUserRequest struct {
	Role           *string `json:"role"`
	Department     *string `json:"department"`
	Specialization *string `json:"specialization"`
	ResetPassword  bool    `json:"reset_password"`
}

// Update handles PUT /v1/users/:id: edit another user's role,
// department or specialization, or reset their password.
func (h *UserHandler) Update(c *gin.Context) {
	actor, target := h.resolveManaged(c)
	if target == nil {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role != nil {
		role := models.Role(*req.Role)
		if !roleAssignable(actor, role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "cannot assign a role at or above your own"})
			return
		}
		target.Role = role
	}
	if req.Department != nil {
		department := models.Department(*req.Department)
		if !department.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown department"})
			return
		}
		if actor.Role == models.RoleAdmin && department != actor.Department {
			c.JSON(http.StatusForbidden, gin.H{"error": "admins cannot move users out of their department"})
			return
		}
		target.Department = department
	}
	if req.Specialization != nil {
		target.Specialization = *req.Specialization
	}
	if req.ResetPassword {
		target.Password = defaultPassword
	}

	if err := h.users.Update(c.Request.Context(), target); err != nil {
		h.logger.Error("failed to update user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, target)
}

// Delete handles DELETE /v1/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	actor, target := h.resolveManaged(c)
	if target == nil {
		return
	}

	if err := h.users.Delete(c.Request.Context(), target.ID); err != nil {
		h.logger.Error("failed to delete user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	h.logger.Info("user deleted", zap.Int64("actor", actor.ID), zap.Int64("user", target.ID))
	c.Status(http.StatusNoContent)
}

// resolveManaged loads the :id target and enforces the management
// policy. Aborts the request and returns a nil target on any failure.
func (h *UserHandler) resolveManaged(c *gin.Context) (actor, target *models.User) {
	actor = currentUser(c, h.users)
	if actor == nil {
		return nil, nil
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return nil, nil
	}
	target, err = h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to load user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return nil, nil
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return nil, nil
	}
	if !policy.CanManage(actor, target) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you cannot manage this user"})
		return nil, nil
	}
	return actor, target
}

func roleAssignable(actor *models.User, role models.Role) bool {
	for _, r := range policy.AssignableRoles(actor) {
		if r == role {
			return true
		}
	}
	return false
}
