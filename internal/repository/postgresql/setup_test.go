package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/tugasgi/attendance-backend-go/internal/pkg/database"
)

// testDB hanya diinisialisasi kalau TEST_DATABASE_URL tersedia.
var testDB *database.DB

// requireTestDB membuka koneksi ke test database, atau skip kalau tidak ada.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	if testDB != nil {
		return testDB
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration tests")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	testDB = db
	return testDB
}

// truncateAll menghapus semua data dari tabel test.
func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"field_visits",
		"early_leave_requests",
		"leave_requests",
		"check_events",
		"attendance_days",
		"users",
		"departments",
	}

	for _, table := range tables {
		if _, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}
