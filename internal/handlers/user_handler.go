package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careflow/homecare-api/internal/audit"
	"github.com/careflow/homecare-api/internal/httperr"
	"github.com/careflow/homecare-api/internal/middleware"
	"github.com/careflow/homecare-api/internal/models"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

// --------- Requests ---------

// PasswordHash arrives pre-hashed; this API never sees a plaintext
// password and never serializes the hash back out.
type CreateUserRequest struct {
	Username     string  `json:"username" binding:"required"`
	PasswordHash string  `json:"password_hash" binding:"required"`
	Role         string  `json:"role" binding:"required"`
	DisplayName  *string `json:"display_name"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		log.Println("list users:", err)
		httperr.Internal(c, "failed_to_list_users")
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found")
			return
		}
		log.Println("get user:", err)
		httperr.Internal(c, "failed_to_get_user")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: req.PasswordHash,
		Role:         req.Role,
		DisplayName:  req.DisplayName,
	}

	if err := h.db.Create(&user).Error; err != nil {
		log.Println("create user:", err)
		httperr.Internal(c, "failed_to_create_user")
		return
	}

	h.audit.Dispatch(audit.Event{
		RequestID: middleware.RequestID(c),
		Action:    "user_created",
		Entity:    "user",
		EntityID:  &user.ID,
	})

	c.JSON(http.StatusCreated, user)
}
