package audit

import (
	"testing"
	"time"

	"github.com/matryer/is"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/careflow/homecare-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestLoggerWritesRow(t *testing.T) {
	is := is.New(t)
	db := newTestDB(t)

	id := uint(42)
	err := New(db).Log("req-1", "client_created", "client", &id, map[string]any{"zipcode": "01234"})
	is.NoErr(err)

	var entry models.AuditLog
	is.NoErr(db.First(&entry).Error)
	is.Equal(entry.RequestID, "req-1")
	is.Equal(entry.Action, "client_created")
	is.Equal(entry.Entity, "client")
	is.Equal(*entry.EntityID, uint(42))
	is.True(entry.Metadata != "")
}

func TestDispatcherDeliversAsync(t *testing.T) {
	is := is.New(t)
	db := newTestDB(t)

	d := NewDispatcher(New(db))
	d.Dispatch(Event{RequestID: "req-2", Action: "shift_deleted", Entity: "shift"})

	deadline := time.Now().Add(2 * time.Second)
	for {
		var count int64
		is.NoErr(db.Model(&models.AuditLog{}).Count(&count).Error)
		if count == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("audit event never persisted")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	// a dispatcher with no running worker: fill the buffer, then one more
	d := &Dispatcher{
		logger: New(newTestDB(t)),
		queue:  make(chan Event, 1),
	}

	d.Dispatch(Event{Action: "first"})
	d.Dispatch(Event{Action: "overflow"}) // must not block or panic
}
