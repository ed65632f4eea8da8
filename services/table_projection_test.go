package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trhieu-dev/tablebooking/models"
)

func TestProjectTableStatusCheckedInWins(t *testing.T) {
	now := time.Now()
	table := models.Table{ID: 1, Status: "available"}
	orders := []models.Order{
		{TableID: uintPtr(1), Status: "approved"},
		{TableID: uintPtr(1), Status: "checked_in"},
	}

	assert.Equal(t, models.TableOccupied, ProjectTableStatus(table, orders, now))
}

func TestProjectTableStatusApprovedHolds(t *testing.T) {
	now := time.Now()
	table := models.Table{ID: 1, Status: "available"}
	orders := []models.Order{
		{TableID: uintPtr(1), Status: "Đã duyệt"},
		{TableID: uintPtr(1), Status: "declined"},
	}

	assert.Equal(t, models.TableHeld, ProjectTableStatus(table, orders, now))
}

func TestProjectTableStatusIgnoresOtherTables(t *testing.T) {
	now := time.Now()
	table := models.Table{ID: 1, Status: "available"}
	orders := []models.Order{
		{TableID: uintPtr(2), Status: "checked_in"},
		{TableID: nil, Status: "approved"},
	}

	assert.Equal(t, models.TableAvailable, ProjectTableStatus(table, orders, now))
}

func TestProjectTableStatusExpiredLease(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	expired := models.Table{ID: 1, Status: "occupied", ActiveUntil: &past}
	assert.Equal(t, models.TableAvailable, ProjectTableStatus(expired, nil, now))

	active := models.Table{ID: 1, Status: "held", ActiveUntil: &future}
	assert.Equal(t, models.TableHeld, ProjectTableStatus(active, nil, now))

	// Status manual tanpa lease tetap memblokir
	manual := models.Table{ID: 1, Status: "busy"}
	assert.Equal(t, models.TableOccupied, ProjectTableStatus(manual, nil, now))
}

func TestProjectTableStatusLegacySpellings(t *testing.T) {
	now := time.Now()

	assert.Equal(t, models.TableAvailable,
		ProjectTableStatus(models.Table{ID: 1, Status: "trống"}, nil, now))
	assert.Equal(t, models.TableOccupied,
		ProjectTableStatus(models.Table{ID: 1, Status: "không còn chỗ"}, nil, now))
	assert.Equal(t, models.TableHeld,
		ProjectTableStatus(models.Table{ID: 1, Status: "reserved"}, nil, now))
}

func uintPtr(v uint) *uint { return &v }
