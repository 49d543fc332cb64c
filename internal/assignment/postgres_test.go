package assignment

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
	"github.com/vinaythakkar13/yatra-backend/internal/pilgrim"
)

// Runs against a real database when YATRA_TEST_DATABASE_DSN is set, e.g.
// "host=localhost user=postgres password=postgres dbname=yatra_test sslmode=disable".
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("YATRA_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("YATRA_TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.AutoMigrate(&hotel.Hotel{}, &hotel.Room{}, &pilgrim.Person{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestConcurrentAssignSameRoomPostgres(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	tag := uuid.NewString()[:8]

	h := hotel.Hotel{YatraID: 1, Name: "race-" + tag, FloorLayout: []byte(`[{"floor":"G","rooms":["1"]}]`)}
	if err := db.Create(&h).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	room := hotel.Room{HotelID: h.ID, Floor: "G", RoomNumber: "1", BedCount: 2, ToiletType: hotel.ToiletWestern}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	people := []pilgrim.Person{
		{PNR: "A" + tag, Name: "A", RoomAssignmentStatus: pilgrim.AssignmentNone, RegistrationStatus: pilgrim.RegistrationPending},
		{PNR: "B" + tag, Name: "B", RoomAssignmentStatus: pilgrim.AssignmentNone, RegistrationStatus: pilgrim.RegistrationPending},
	}
	if err := db.Create(&people).Error; err != nil {
		t.Fatalf("create people: %v", err)
	}
	t.Cleanup(func() {
		db.Where("hotel_id = ?", h.ID).Delete(&hotel.Room{})
		db.Delete(&hotel.Hotel{}, h.ID)
		db.Delete(&pilgrim.Person{}, []uint{people[0].ID, people[1].ID})
	})

	svc := NewService(NewRepository(db))
	want := []RoomSelection{{HotelID: h.ID, Floor: "G", RoomNumber: "1"}}

	var wg sync.WaitGroup
	errs := make([]error, len(people))
	for i := range people {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Assign(ctx, people[i].ID, want)
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperror.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != 1 {
		t.Fatalf("ok=%d conflicts=%d, want exactly one winner", ok, conflicts)
	}

	var got hotel.Hotel
	if err := db.First(&got, h.ID).Error; err != nil {
		t.Fatalf("reload hotel: %v", err)
	}
	if got.TotalRooms != 1 || got.OccupiedRooms != 1 || got.AvailableRooms != 0 {
		t.Fatalf("counters = %d/%d/%d", got.TotalRooms, got.OccupiedRooms, got.AvailableRooms)
	}
}
