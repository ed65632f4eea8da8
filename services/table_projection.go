package services

import (
	"time"

	"github.com/trhieu-dev/tablebooking/models"
	"github.com/trhieu-dev/tablebooking/utils"
)

// ProjectTableStatus menurunkan status efektif sebuah meja untuk satu slot,
// menggabungkan status tersimpan, lease, dan order aktif di slot itu. Fungsi
// murni; dipakai sama persis oleh view admin dan view booking user supaya
// keduanya tidak pernah berbeda soal arti "kosong".
//
// Precedence: order checked_in => occupied; order approved => held; selain
// itu status tersimpan berlaku kecuali lease-nya sudah lewat => available.
func ProjectTableStatus(table models.Table, ordersForSlot []models.Order, now time.Time) string {
	hasApproved := false
	for _, order := range ordersForSlot {
		if order.TableID == nil || *order.TableID != table.ID {
			continue
		}
		switch models.NormalizeOrderStatus(order.Status) {
		case models.OrderCheckedIn:
			return models.TableOccupied
		case models.OrderApproved:
			hasApproved = true
		}
	}
	if hasApproved {
		return models.TableHeld
	}

	status := models.NormalizeTableStatus(table.Status)
	if status != models.TableAvailable && utils.IsExpiredLease(table.ActiveUntil, now) {
		return models.TableAvailable
	}
	return status
}
