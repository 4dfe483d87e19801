package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careflow/homecare-api/internal/audit"
	"github.com/careflow/homecare-api/internal/httperr"
	"github.com/careflow/homecare-api/internal/httpresp"
	"github.com/careflow/homecare-api/internal/middleware"
	"github.com/careflow/homecare-api/internal/models"
)

// ClientServiceHandler manages the many-to-many link between clients and
// the services they receive.
type ClientServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientServiceHandler {
	return &ClientServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

type AssignServiceRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

// --------- Handlers ---------

func (h *ClientServiceHandler) ListServices(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if !h.clientExists(c, id) {
		return
	}

	var services []models.Service
	if err := h.db.Model(&models.Service{}).
		Joins("JOIN client_services ON client_services.service_id = services.id").
		Where("client_services.client_id = ?", id).
		Order("services.id ASC").
		Find(&services).Error; err != nil {

		log.Println("list client services:", err)
		httperr.Internal(c, "failed_to_list_client_services")
		return
	}

	httpresp.List(c, services)
}

func (h *ClientServiceHandler) Assign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AssignServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !h.clientExists(c, id) {
		return
	}

	var service models.Service
	if err := h.db.First(&service, req.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found")
			return
		}
		log.Println("get service for assign:", err)
		httperr.Internal(c, "failed_to_get_service")
		return
	}

	var count int64
	h.db.Model(&models.ClientService{}).
		Where("client_id = ? AND service_id = ?", id, req.ServiceID).
		Count(&count)
	if count > 0 {
		httperr.Write(c, http.StatusConflict, "service_already_assigned")
		return
	}

	link := models.ClientService{ClientID: id, ServiceID: req.ServiceID}
	if err := h.db.Create(&link).Error; err != nil {
		log.Println("assign service:", err)
		httperr.Internal(c, "failed_to_assign_service")
		return
	}

	h.audit.Dispatch(audit.Event{
		RequestID: middleware.RequestID(c),
		Action:    "service_assigned",
		Entity:    "client",
		EntityID:  &id,
		Metadata:  map[string]any{"service_id": req.ServiceID},
	})

	c.JSON(http.StatusCreated, link)
}

func (h *ClientServiceHandler) Unassign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	serviceID, ok := pathID(c, "serviceID")
	if !ok {
		return
	}

	res := h.db.
		Where("client_id = ? AND service_id = ?", id, serviceID).
		Delete(&models.ClientService{})
	if res.Error != nil {
		log.Println("unassign service:", res.Error)
		httperr.Internal(c, "failed_to_unassign_service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "assignment_not_found")
		return
	}

	h.audit.Dispatch(audit.Event{
		RequestID: middleware.RequestID(c),
		Action:    "service_unassigned",
		Entity:    "client",
		EntityID:  &id,
		Metadata:  map[string]any{"service_id": serviceID},
	})

	c.Status(http.StatusNoContent)
}

func (h *ClientServiceHandler) clientExists(c *gin.Context, id uint) bool {
	var count int64
	if err := h.db.Model(&models.Client{}).Where("id = ?", id).Count(&count).Error; err != nil {
		log.Println("check client:", err)
		httperr.Internal(c, "failed_to_get_client")
		return false
	}
	if count == 0 {
		httperr.NotFound(c, "client_not_found")
		return false
	}
	return true
}
