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
	"github.com/careflow/homecare-api/internal/query"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	HasPersonalCare bool   `json:"has_personal_care"`
	HasLifting      bool   `json:"has_lifting"`
	Address1        string `json:"address_1" binding:"required"`
	Address2        string `json:"address_2"`
	Zipcode         string `json:"zipcode" binding:"required"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
}

// PUT replaces every field; the update body is the create body.
type UpdateClientRequest = CreateClientRequest

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	var params query.ClientFilterParams
	if v, ok := c.GetQuery("first_name"); ok {
		params.FirstName = &v
	}
	if v, ok := c.GetQuery("last_name"); ok {
		params.LastName = &v
	}
	if v, ok := c.GetQuery("zipcode"); ok {
		params.Zipcode = &v
	}

	q := h.db.Model(&models.Client{})
	if pred := query.ResolveClientFilter(params); pred != nil {
		q = q.Where(pred.Expr, pred.Args...)
	}

	var clients []models.Client
	if err := q.Order("id ASC").Find(&clients).Error; err != nil {
		log.Println("list clients:", err)
		httperr.Internal(c, "failed_to_list_clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found")
			return
		}
		log.Println("get client:", err)
		httperr.Internal(c, "failed_to_get_client")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client := models.Client{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		HasPersonalCare: req.HasPersonalCare,
		HasLifting:      req.HasLifting,
		Address1:        req.Address1,
		Address2:        req.Address2,
		Zipcode:         req.Zipcode,
		PhoneNumber:     req.PhoneNumber,
	}

	if err := h.db.Create(&client).Error; err != nil {
		log.Println("create client:", err)
		httperr.Internal(c, "failed_to_create_client")
		return
	}

	h.audit.Dispatch(audit.Event{
		RequestID: middleware.RequestID(c),
		Action:    "client_created",
		Entity:    "client",
		EntityID:  &client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found")
			return
		}
		log.Println("get client for update:", err)
		httperr.Internal(c, "failed_to_get_client")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.HasPersonalCare = req.HasPersonalCare
	client.HasLifting = req.HasLifting
	client.Address1 = req.Address1
	client.Address2 = req.Address2
	client.Zipcode = req.Zipcode
	client.PhoneNumber = req.PhoneNumber

	if err := h.db.Save(&client).Error; err != nil {
		log.Println("update client:", err)
		httperr.Internal(c, "failed_to_update_client")
		return
	}

	h.audit.Dispatch(audit.Event{
		RequestID: middleware.RequestID(c),
		Action:    "client_updated",
		Entity:    "client",
		EntityID:  &client.ID,
	})

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Client{}, id)
	if res.Error != nil {
		log.Println("delete client:", res.Error)
		httperr.Internal(c, "failed_to_delete_client")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found")
		return
	}

	h.audit.Dispatch(audit.Event{
		RequestID: middleware.RequestID(c),
		Action:    "client_deleted",
		Entity:    "client",
		EntityID:  &id,
	})

	c.Status(http.StatusNoContent)
}
