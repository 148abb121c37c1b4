package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/policy"
	"github.com/eripro/connect/internal/repository"
)

const dateLayout = "2006-01-02"

type ProductivityHandler struct {
	users  repository.UserRepository
	items  repository.ProductivityRepository
	logger *zap.Logger
}

func NewProductivityHandler(users repository.UserRepository, items repository.ProductivityRepository, logger *zap.Logger) *ProductivityHandler {
	return &ProductivityHandler{users: users, items: items, logger: logger}
}

// List handles GET /v1/productivity?date=YYYY-MM-DD&department=...
//
// Returns the viewer's visible items for one day, arranged into display
// groups with Personal first. The department query parameter narrows
// department groups for Super Admins and is ignored for everyone else.
func (h *ProductivityHandler) List(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	items, err := h.items.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list productivity items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list items"})
		return
	}

	visible := policy.VisibleItemsOn(date, user, items, c.Query("department"))
	c.JSON(http.StatusOK, gin.H{
		"date":   date,
		"groups": policy.GroupItems(visible),
	})
}

type createItemRequest struct {
	Kind             string `json:"kind" binding:"required"`
	Body             string `json:"body" binding:"required"`
	Date             string `json:"date" binding:"required"`
	TargetScope      string `json:"target_scope" binding:"required"`
	TargetDepartment string `json:"target_department"`
}

// Create handles POST /v1/productivity. Personal items always target
// the creator; department items are restricted to Admins targeting
// their own department and Super Admins targeting anyone's.
func (h *ProductivityHandler) Create(c *gin.Context) {
	user := currentUser(c, h.users)
	if user == nil {
		return
	}

	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind := models.ProductivityItemKind(req.Kind)
	if kind != models.ItemTodo && kind != models.ItemNote {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be todo or note"})
		return
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	item := models.ProductivityItem{
		Kind:      kind,
		Body:      req.Body,
		Date:      req.Date,
		CreatedBy: user.ID,
	}
	switch models.TargetScope(req.TargetScope) {
	case models.TargetPersonal:
		item.TargetScope = models.TargetPersonal
		item.TargetUserID = user.ID
	case models.TargetDepartment:
		if !policy.CanCreateDepartmentItem(user) {
			c.JSON(http.StatusForbidden, gin.H{"error": "department items require Admin rank"})
			return
		}
		department := models.Department(req.TargetDepartment)
		if !department.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown department"})
			return
		}
		if !policy.CanTargetDepartment(user, department) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admins can only target their own department"})
			return
		}
		item.TargetScope = models.TargetDepartment
		item.TargetDepartment = department
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_scope must be personal or department"})
		return
	}

	created, err := h.items.Create(c.Request.Context(), &item)
	if err != nil {
		h.logger.Error("failed to create productivity item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type updateItemRequest struct {
	Completed *bool   `json:"completed"`
	Body      *string `json:"body"`
}

// Update handles PUT /v1/productivity/:id: flip a todo's completion or
// edit an item's text. Notes have no completion state.
func (h *ProductivityHandler) Update(c *gin.Context) {
	_, item := h.resolveVisible(c)
	if item == nil {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Completed != nil {
		if item.Kind != models.ItemTodo {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only todos can be completed"})
			return
		}
		item.Completed = *req.Completed
	}
	if req.Body != nil {
		if *req.Body == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body cannot be empty"})
			return
		}
		item.Body = *req.Body
	}

	if err := h.items.Update(c.Request.Context(), item); err != nil {
		h.logger.Error("failed to update productivity item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/productivity/:id.
func (h *ProductivityHandler) Delete(c *gin.Context) {
	user, item := h.resolveVisible(c)
	if item == nil {
		return
	}
	if !policy.CanDeleteItem(user, item) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you cannot delete this item"})
		return
	}

	if err := h.items.Delete(c.Request.Context(), item.ID); err != nil {
		h.logger.Error("failed to delete productivity item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete item"})
		return
	}
	c.Status(http.StatusNoContent)
}

// resolveVisible loads the :id item and checks the viewer could see it
// on its own date. Aborts and returns a nil item on any failure.
func (h *ProductivityHandler) resolveVisible(c *gin.Context) (*models.User, *models.ProductivityItem) {
	user := currentUser(c, h.users)
	if user == nil {
		return nil, nil
	}

	item, err := h.items.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed to load productivity item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return nil, nil
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return nil, nil
	}

	visible := policy.VisibleItemsOn(item.Date, user, []models.ProductivityItem{*item}, "")
	if len(visible) == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "you cannot access this item"})
		return nil, nil
	}
	return user, item
}
