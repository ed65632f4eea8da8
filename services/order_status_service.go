package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/trhieu-dev/tablebooking/models"
	"github.com/trhieu-dev/tablebooking/utils"
)

// HoldWindow menentukan berapa lama meja di-hold setelah jam kedatangan
// sebelum lease-nya kadaluarsa sendiri.
const DefaultHoldWindow = 2 * time.Hour

type OrderStatusService struct {
	DB         *gorm.DB
	HoldWindow time.Duration
}

func NewOrderStatusService(db *gorm.DB) *OrderStatusService {
	return &OrderStatusService{DB: db, HoldWindow: DefaultHoldWindow}
}

// Approve -> pending => approved, meja => held dengan lease sampai
// jam kedatangan + HoldWindow.
func (s *OrderStatusService) Approve(orderID uint, actor Actor) (*models.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrNoPermission
	}

	return s.transition(orderID, func(order *models.Order, table *models.Table) error {
		if models.NormalizeOrderStatus(order.Status) != models.OrderPending {
			return fmt.Errorf("%w: %s -> approved", ErrInvalidTransition, order.Status)
		}
		order.Status = models.OrderApproved

		if table != nil {
			table.Status = models.TableHeld
			if arrival, err := utils.ParseArrival(order.ArriveDate, order.ArriveTime); err == nil {
				lease := arrival.Add(s.holdWindow())
				table.ActiveUntil = &lease
			}
		}
		return nil
	})
}

// Decline -> pending/approved => declined (terminal), meja dilepas kalau
// sedang held. Order checked_in tidak bisa di-decline, harus complete.
func (s *OrderStatusService) Decline(orderID uint, actor Actor) (*models.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrNoPermission
	}
	return s.transition(orderID, declineStep)
}

// CheckIn -> approved => checked_in, meja => occupied, activated_at diisi.
func (s *OrderStatusService) CheckIn(orderID uint, actor Actor) (*models.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrNoPermission
	}

	return s.transition(orderID, func(order *models.Order, table *models.Table) error {
		if models.NormalizeOrderStatus(order.Status) != models.OrderApproved {
			return fmt.Errorf("%w: %s -> checked_in", ErrInvalidTransition, order.Status)
		}
		now := time.Now()
		order.Status = models.OrderCheckedIn
		order.ActivatedAt = &now

		if table != nil {
			table.Status = models.TableOccupied
		}
		return nil
	})
}

// Complete -> checked_in => completed (terminal), meja kembali available
// dan lease dibersihkan.
func (s *OrderStatusService) Complete(orderID uint, actor Actor) (*models.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrNoPermission
	}

	return s.transition(orderID, func(order *models.Order, table *models.Table) error {
		if models.NormalizeOrderStatus(order.Status) != models.OrderCheckedIn {
			return fmt.Errorf("%w: %s -> completed", ErrInvalidTransition, order.Status)
		}
		order.Status = models.OrderCompleted

		if table != nil {
			table.Status = models.TableAvailable
			table.ActiveUntil = nil
		}
		return nil
	})
}

// Cancel adalah pembatalan oleh pemilik order: hanya boleh selama status
// masih pending/approved dan jam kedatangan belum lewat. Order yang sudah
// checked_in atau sudah lewat jam datang ditolak dengan ErrTooLateToCancel.
func (s *OrderStatusService) Cancel(orderID uint, actor Actor, now time.Time) (*models.Order, error) {
	return s.transition(orderID, func(order *models.Order, table *models.Table) error {
		if order.UserID != actor.UserID && !actor.IsAdmin() {
			return ErrNoPermission
		}

		status := models.NormalizeOrderStatus(order.Status)
		if status == models.OrderCheckedIn {
			return ErrTooLateToCancel
		}
		if models.IsTerminalOrderStatus(status) {
			return fmt.Errorf("%w: %s -> declined", ErrInvalidTransition, order.Status)
		}

		arrival, err := utils.ParseArrival(order.ArriveDate, order.ArriveTime)
		if err == nil && !now.Before(arrival) {
			return ErrTooLateToCancel
		}

		return declineStep(order, table)
	})
}

func declineStep(order *models.Order, table *models.Table) error {
	status := models.NormalizeOrderStatus(order.Status)
	if status != models.OrderPending && status != models.OrderApproved {
		return fmt.Errorf("%w: %s -> declined", ErrInvalidTransition, order.Status)
	}
	order.Status = models.OrderDeclined

	// Lepas meja hanya kalau memang sedang held; occupied berarti ada
	// pihak lain yang sudah check-in
	if table != nil && models.NormalizeTableStatus(table.Status) == models.TableHeld {
		table.Status = models.TableAvailable
		table.ActiveUntil = nil
	}
	return nil
}

// transition menjalankan satu langkah state machine: order dan meja yang
// direferensikan di-update dalam SATU transaksi, supaya crash di tengah
// tidak meninggalkan meja held/occupied tanpa order aktif. Step yang
// mengembalikan error membatalkan seluruh transaksi tanpa mutasi.
func (s *OrderStatusService) transition(orderID uint, step func(*models.Order, *models.Table) error) (*models.Order, error) {
	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			First(&order, orderID).Error; err != nil {
			return err
		}

		var table *models.Table
		if order.TableID != nil {
			var t models.Table
			if err := lockForUpdate(tx).
				First(&t, *order.TableID).Error; err != nil {
				return err
			}
			table = &t
		}

		if err := step(&order, table); err != nil {
			return err
		}

		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		if table != nil {
			if err := tx.Save(table).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d transitioned to %s", order.ID, order.Status)
	return &order, nil
}

func (s *OrderStatusService) holdWindow() time.Duration {
	if s.HoldWindow > 0 {
		return s.HoldWindow
	}
	return DefaultHoldWindow
}
