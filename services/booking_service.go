package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trhieu-dev/tablebooking/models"
	"github.com/trhieu-dev/tablebooking/utils"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	TableID       uint
	ArriveDate    string
	ArriveTime    string
	PartySize     int
	CustomerName  string
	CustomerPhone string
	Notes         string
}

// CreateBooking membuat order baru untuk satu meja. Cek konflik dilakukan
// ulang di dalam transaksi dengan row lock pada meja, supaya dua klien yang
// balapan di slot yang sama tidak bisa dua-duanya berhasil: yang kalah
// menerima ErrSlotTaken dan harus resolve ulang ketersediaan.
//
// Kebijakan status: pembuatan order TIDAK menandai meja held; meja baru
// di-hold saat admin approve (lihat OrderStatusService).
func (s *BookingService) CreateBooking(userID uint, input CreateBookingInput) (*models.Order, error) {
	if _, err := utils.ParseArrival(input.ArriveDate, input.ArriveTime); err != nil {
		return nil, err
	}
	if input.PartySize < 1 {
		return nil, fmt.Errorf("%w: party size must be positive", utils.ErrInvalidSlot)
	}

	// Precondition kapasitas dicek sebelum menyentuh transaksi tulis
	var table models.Table
	if err := s.DB.First(&table, input.TableID).Error; err != nil {
		return nil, err
	}
	if input.PartySize > table.Capacity {
		return nil, fmt.Errorf("%w: %d > %d", ErrPartyTooLarge, input.PartySize, table.Capacity)
	}

	order := models.Order{
		Reference:     uuid.NewString(),
		UserID:        userID,
		TableID:       &input.TableID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		ArriveDate:    input.ArriveDate,
		ArriveTime:    normalizeClock(input.ArriveTime),
		PartySize:     input.PartySize,
		Notes:         input.Notes,
		Status:        models.OrderPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock baris meja supaya dua attempt bersamaan diserialisasi
		var locked models.Table
		if err := lockForUpdate(tx).
			First(&locked, input.TableID).Error; err != nil {
			return err
		}

		if input.PartySize > locked.Capacity {
			return fmt.Errorf("%w: %d > %d", ErrPartyTooLarge, input.PartySize, locked.Capacity)
		}
		if tableHolds(locked, time.Now()) {
			return ErrSlotTaken
		}

		// Re-check order yang masih aktif di meja+tanggal yang sama; hasil
		// read sebelumnya dari UI tidak dipercaya
		var existing []models.Order
		if err := tx.Where("table_id = ? AND arrive_date = ?", input.TableID, input.ArriveDate).
			Find(&existing).Error; err != nil {
			return err
		}
		for _, prev := range existing {
			if models.IsBlockingOrderStatus(models.NormalizeOrderStatus(prev.Status)) {
				return ErrSlotTaken
			}
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Booking %s created: user=%d table=%d slot=%s %s",
		order.DisplayCode(), userID, input.TableID, input.ArriveDate, order.ArriveTime)
	return &order, nil
}

// normalizeClock -> simpan jam dalam bentuk HH:MM:SS seperti data upstream
func normalizeClock(clock string) string {
	if len(clock) == 5 {
		return clock + ":00"
	}
	return clock
}
