package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/careflow/homecare-api/internal/db"
	"github.com/careflow/homecare-api/internal/middleware"
	"github.com/careflow/homecare-api/internal/models"
	"github.com/careflow/homecare-api/internal/routes"
)

// newTestServer wires the full route table against an in-memory sqlite
// database, so tests exercise real SQL end to end.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// a second connection would see a different :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	routes.RegisterRoutes(r, db, nil)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func seedClient(t *testing.T, db *gorm.DB, first, last, zip string) models.Client {
	t.Helper()
	c := models.Client{
		FirstName:   first,
		LastName:    last,
		Address1:    "12 Main St",
		Zipcode:     zip,
		PhoneNumber: "555-0100",
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func seedService(t *testing.T, db *gorm.DB, name string) models.Service {
	t.Helper()
	s := models.Service{ServiceName: name}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return s
}

func seedShift(t *testing.T, db *gorm.DB, clientID, serviceID uint, hours int, zip string, available bool) models.Shift {
	t.Helper()
	s := models.Shift{
		ClientID:   clientID,
		ServiceID:  serviceID,
		TotalHours: hours,
		Zipcode:    zip,
		Available:  available,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed shift: %v", err)
	}
	return s
}
