package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/trhieu-dev/tablebooking/models"
	"github.com/trhieu-dev/tablebooking/utils"
)

// LeaseMonitor adalah backstop untuk invariant "tidak ada meja yang
// tertinggal held/occupied tanpa order aktif": secara periodik meja dengan
// active_until yang sudah lewat dikembalikan ke available. Resolver dan
// projection sudah memperlakukan lease kadaluarsa sebagai kosong, monitor
// ini hanya merapikan kolom status tersimpan.
type LeaseMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

func NewLeaseMonitor(db *gorm.DB) *LeaseMonitor {
	return &LeaseMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 30 * time.Second,
	}
}

func (lm *LeaseMonitor) Start() {
	go func() {
		ticker := time.NewTicker(lm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				lm.Sweep(time.Now())
			case <-lm.StopChan:
				return
			}
		}
	}()
}

func (lm *LeaseMonitor) Stop() {
	close(lm.StopChan)
}

// Sweep mengembalikan meja dengan lease kadaluarsa ke available, kecuali
// masih ada order aktif hari ini yang mengklaim meja itu.
func (lm *LeaseMonitor) Sweep(now time.Time) {
	var candidates []models.Table
	if err := lm.DB.
		Where("active_until IS NOT NULL AND active_until <= ?", now).
		Find(&candidates).Error; err != nil {
		utils.ErrorLogger.Printf("lease sweep: fetching candidates: %v", err)
		return
	}

	today := now.Format("2006-01-02")
	for _, candidate := range candidates {
		err := lm.DB.Transaction(func(tx *gorm.DB) error {
			var table models.Table
			if err := lockForUpdate(tx).
				First(&table, candidate.ID).Error; err != nil {
				return err
			}
			if !utils.IsExpiredLease(table.ActiveUntil, now) {
				return nil
			}

			var orders []models.Order
			if err := tx.Where("table_id = ? AND arrive_date >= ?", table.ID, today).
				Find(&orders).Error; err != nil {
				return err
			}
			for _, order := range orders {
				if models.IsBlockingOrderStatus(models.NormalizeOrderStatus(order.Status)) {
					// Masih ada klaim aktif, biarkan state machine yang
					// melepas meja ini
					return nil
				}
			}

			table.Status = models.TableAvailable
			table.ActiveUntil = nil
			return tx.Save(&table).Error
		})
		if err != nil {
			utils.ErrorLogger.Printf("lease sweep: table %d: %v", candidate.ID, err)
			continue
		}
	}
}
