package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/trhieu-dev/tablebooking/models"
	"github.com/trhieu-dev/tablebooking/utils"
)

type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// ResolveFreeTables -> daftar id meja yang masih bisa dibooking untuk
// {area, tanggal, jam datang}. Read-only dan idempotent; hasil tidak boleh
// di-cache lintas input karena ketersediaan sensitif terhadap waktu.
func (s *AvailabilityService) ResolveFreeTables(area, date, arriveTime string) ([]uint, error) {
	if strings.TrimSpace(area) == "" {
		return nil, fmt.Errorf("%w: empty area", utils.ErrInvalidSlot)
	}
	if !utils.IsValidDate(date) {
		return nil, fmt.Errorf("%w: bad date %q", utils.ErrInvalidSlot, date)
	}
	if !utils.IsValidTime(arriveTime) {
		return nil, fmt.Errorf("%w: bad time %q", utils.ErrInvalidSlot, arriveTime)
	}

	var tables []models.Table
	if err := s.DB.Where("area = ?", area).Find(&tables).Error; err != nil {
		return nil, err
	}

	// Ambil semua order di tanggal itu; status diputuskan setelah
	// normalisasi, bukan lewat perbandingan string mentah di SQL, karena
	// data lama masih memuat ejaan legacy.
	var orders []models.Order
	if err := s.DB.Where("arrive_date = ?", date).Find(&orders).Error; err != nil {
		return nil, err
	}

	blocked := make(map[uint]bool)
	for _, order := range orders {
		if order.TableID == nil {
			continue
		}
		if models.IsBlockingOrderStatus(models.NormalizeOrderStatus(order.Status)) {
			blocked[*order.TableID] = true
		}
	}

	now := time.Now()
	free := make([]uint, 0, len(tables))
	for _, table := range tables {
		if blocked[table.ID] {
			continue
		}
		if tableHolds(table, now) {
			continue
		}
		free = append(free, table.ID)
	}

	sort.Slice(free, func(i, j int) bool { return free[i] < free[j] })
	return free, nil
}

// tableHolds -> true jika status tersimpan meja sendiri masih memblokir.
// Lease yang sudah lewat selalu menang: meja dianggap kosong walaupun
// kolom status masih bilang occupied/held.
func tableHolds(table models.Table, now time.Time) bool {
	status := models.NormalizeTableStatus(table.Status)
	if status == models.TableAvailable {
		return false
	}
	if utils.IsExpiredLease(table.ActiveUntil, now) {
		return false
	}
	return true
}
