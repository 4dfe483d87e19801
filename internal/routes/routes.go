package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careflow/homecare-api/internal/audit"
	"github.com/careflow/homecare-api/internal/handlers"
	infraRepo "github.com/careflow/homecare-api/internal/infra/repository"
	"github.com/careflow/homecare-api/internal/storage"
	ucShift "github.com/careflow/homecare-api/internal/usecase/shift"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, uploader storage.Uploader) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	shiftRepo := infraRepo.NewShiftGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SHIFTS
	// ======================================================
	listShiftsUC := ucShift.NewListShifts(shiftRepo)
	getShiftUC := ucShift.NewGetShift(shiftRepo)
	createShiftUC := ucShift.NewCreateShift(shiftRepo, auditDispatcher)
	updateShiftUC := ucShift.NewUpdateShift(shiftRepo, auditDispatcher)
	deleteShiftUC := ucShift.NewDeleteShift(shiftRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	userImageHandler := handlers.NewUserImageHandler(db, uploader, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	clientServiceHandler := handlers.NewClientServiceHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)

	shiftHandler := handlers.NewShiftHandler(
		listShiftsUC,
		getShiftUC,
		createShiftUC,
		updateShiftUC,
		deleteShiftUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	r.GET("/users", userHandler.List)
	r.GET("/users/:id", userHandler.Get)
	r.POST("/users", userHandler.Create)
	r.POST("/users/:id/image", userImageHandler.Upload)

	r.GET("/clients", clientHandler.List)
	r.POST("/clients", clientHandler.Create)
	r.GET("/clients/:id", clientHandler.Get)
	r.PUT("/clients/:id", clientHandler.Update)
	r.DELETE("/clients/:id", clientHandler.Delete)

	r.GET("/clients/:id/services", clientServiceHandler.ListServices)
	r.POST("/clients/:id/services", clientServiceHandler.Assign)
	r.DELETE("/clients/:id/services/:serviceID", clientServiceHandler.Unassign)

	r.GET("/shifts", shiftHandler.List)
	r.GET("/shifts/:id", shiftHandler.Get)
	r.POST("/shifts", shiftHandler.Create)
	r.PUT("/shifts/:id", shiftHandler.Update)
	r.DELETE("/shifts/:id", shiftHandler.Delete)

	r.GET("/services", serviceHandler.List)
	r.GET("/services/:id", serviceHandler.Get)

	r.GET("/audit-logs", auditLogsHandler.List)
}
