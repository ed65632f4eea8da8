package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trhieu-dev/tablebooking/models"
)

func TestSweepFreesExpiredLease(t *testing.T) {
	db := setupTestDB(t)
	monitor := NewLeaseMonitor(db)

	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	expired := seedTable(t, db, &models.Table{Name: "B1", Area: "Tầng 1", Capacity: 4, Status: "held", ActiveUntil: &past})
	active := seedTable(t, db, &models.Table{Name: "B2", Area: "Tầng 1", Capacity: 4, Status: "held", ActiveUntil: &future})
	manual := seedTable(t, db, &models.Table{Name: "B3", Area: "Tầng 1", Capacity: 4, Status: "occupied"})

	monitor.Sweep(now)

	var fresh models.Table
	require.NoError(t, db.First(&fresh, expired.ID).Error)
	assert.Equal(t, models.TableAvailable, fresh.Status)
	assert.Nil(t, fresh.ActiveUntil)

	fresh = models.Table{}
	require.NoError(t, db.First(&fresh, active.ID).Error)
	assert.Equal(t, "held", fresh.Status)
	assert.NotNil(t, fresh.ActiveUntil)

	// Meja yang ditandai manual tanpa lease tidak disentuh
	fresh = models.Table{}
	require.NoError(t, db.First(&fresh, manual.ID).Error)
	assert.Equal(t, "occupied", fresh.Status)
}

func TestSweepSkipsTablesWithActiveOrders(t *testing.T) {
	db := setupTestDB(t)
	monitor := NewLeaseMonitor(db)

	now := time.Now()
	past := now.Add(-time.Minute)

	table := seedTable(t, db, &models.Table{Name: "B1", Area: "Tầng 1", Capacity: 4, Status: "occupied", ActiveUntil: &past})
	require.NoError(t, db.Create(&models.Order{
		Reference: "r1", UserID: 7, TableID: &table.ID,
		ArriveDate: now.Format("2006-01-02"), ArriveTime: "23:59:00",
		PartySize: 2, Status: "checked_in",
	}).Error)

	monitor.Sweep(now)

	var fresh models.Table
	require.NoError(t, db.First(&fresh, table.ID).Error)
	assert.Equal(t, "occupied", fresh.Status)
}
