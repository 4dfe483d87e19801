package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careflow/homecare-api/internal/httperr"
	"github.com/careflow/homecare-api/internal/middleware"
	"github.com/careflow/homecare-api/internal/models"
	"github.com/careflow/homecare-api/internal/query"
	ucShift "github.com/careflow/homecare-api/internal/usecase/shift"
)

type ShiftHandler struct {
	listUC   *ucShift.ListShifts
	getUC    *ucShift.GetShift
	createUC *ucShift.CreateShift
	updateUC *ucShift.UpdateShift
	deleteUC *ucShift.DeleteShift
}

func NewShiftHandler(
	listUC *ucShift.ListShifts,
	getUC *ucShift.GetShift,
	createUC *ucShift.CreateShift,
	updateUC *ucShift.UpdateShift,
	deleteUC *ucShift.DeleteShift,
) *ShiftHandler {
	return &ShiftHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type ShiftRequest struct {
	ClientID   uint   `json:"client_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	TotalHours int    `json:"total_hours" binding:"min=0,max=127"`
	Zipcode    string `json:"zipcode" binding:"required"`
	Available  *bool  `json:"available"`
}

// Omitting available on create means the shift is still open.
func (r *ShiftRequest) available() bool {
	if r.Available == nil {
		return true
	}
	return *r.Available
}

// --------- Filter params ---------

func shiftFilterParams(c *gin.Context) (query.ShiftFilterParams, bool) {
	var params query.ShiftFilterParams

	if v, ok := c.GetQuery("client_id"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return params, false
		}
		id := uint(n)
		params.ClientID = &id
	}
	if v, ok := c.GetQuery("service_id"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return params, false
		}
		id := uint(n)
		params.ServiceID = &id
	}
	if v, ok := c.GetQuery("zipcode"); ok {
		params.Zipcode = &v
	}
	if v, ok := c.GetQuery("available"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return params, false
		}
		params.Available = &b
	}
	if v, ok := c.GetQuery("min_hours"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, false
		}
		params.MinHours = &n
	}
	if v, ok := c.GetQuery("max_hours"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, false
		}
		params.MaxHours = &n
	}

	return params, true
}

// --------- Handlers ---------

func (h *ShiftHandler) List(c *gin.Context) {
	params, ok := shiftFilterParams(c)
	if !ok {
		httperr.BadRequest(c, "invalid_query")
		return
	}

	shifts, err := h.listUC.Execute(c.Request.Context(), params)
	if err != nil {
		log.Println("list shifts:", err)
		httperr.Internal(c, "failed_to_list_shifts")
		return
	}

	c.JSON(http.StatusOK, shifts)
}

func (h *ShiftHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "shift_not_found") {
			httperr.NotFound(c, "shift_not_found")
			return
		}
		log.Println("get shift:", err)
		httperr.Internal(c, "failed_to_get_shift")
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *ShiftHandler) Create(c *gin.Context) {
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	shift := models.Shift{
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		TotalHours: req.TotalHours,
		Zipcode:    req.Zipcode,
		Available:  req.available(),
	}

	created, err := h.createUC.Execute(c.Request.Context(), middleware.RequestID(c), &shift)
	if err != nil {
		log.Println("create shift:", err)
		httperr.Internal(c, "failed_to_create_shift")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ShiftHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := models.Shift{
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		TotalHours: req.TotalHours,
		Zipcode:    req.Zipcode,
		Available:  req.available(),
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), middleware.RequestID(c), id, &in)
	if err != nil {
		if httperr.IsBusiness(err, "shift_not_found") {
			httperr.NotFound(c, "shift_not_found")
			return
		}
		log.Println("update shift:", err)
		httperr.Internal(c, "failed_to_update_shift")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ShiftHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), middleware.RequestID(c), id); err != nil {
		if httperr.IsBusiness(err, "shift_not_found") {
			httperr.NotFound(c, "shift_not_found")
			return
		}
		log.Println("delete shift:", err)
		httperr.Internal(c, "failed_to_delete_shift")
		return
	}

	c.Status(http.StatusNoContent)
}
