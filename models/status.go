package models

import (
	"strings"

	"github.com/trhieu-dev/tablebooking/utils"
)

// Status kanonik untuk order dan table. Semua perbandingan status di core
// harus memakai konstanta ini, bukan string mentah dari database.
const (
	OrderPending   = "pending"
	OrderApproved  = "approved"
	OrderCheckedIn = "checked_in"
	OrderCompleted = "completed"
	OrderDeclined  = "declined"

	TableAvailable = "available"
	TableHeld      = "held"
	TableOccupied  = "occupied"
)

// orderStatusAliases memetakan ejaan lama dari data upstream (termasuk nilai
// berbahasa Vietnam dari sistem sebelumnya) ke status kanonik.
var orderStatusAliases = map[string]string{
	"pending":    OrderPending,
	"waiting":    OrderPending,
	"approved":   OrderApproved,
	"đã duyệt":   OrderApproved,
	"da duyet":   OrderApproved,
	"checked_in": OrderCheckedIn,
	"checkedin":  OrderCheckedIn,
	"active":     OrderCheckedIn,
	"completed":  OrderCompleted,
	"done":       OrderCompleted,
	"declined":   OrderDeclined,
	"decline":    OrderDeclined,
	"cancelled":  OrderDeclined,
	"canceled":   OrderDeclined,
	"đã từ chối": OrderDeclined,
	"da tu choi": OrderDeclined,
}

var tableStatusAliases = map[string]string{
	"available":     TableAvailable,
	"empty":         TableAvailable,
	"free":          TableAvailable,
	"trong":         TableAvailable,
	"trống":         TableAvailable,
	"held":          TableHeld,
	"reserved":      TableHeld,
	"pending":       TableHeld,
	"occupied":      TableOccupied,
	"busy":          TableOccupied,
	"không còn chỗ": TableOccupied,
	"khong con cho": TableOccupied,
	"dang_su_dung":  TableOccupied,
	"đang sử dụng":  TableOccupied,
}

// NormalizeOrderStatus -> status kanonik order; nilai tak dikenal jatuh ke
// pending karena data upstream tidak dijamin bersih.
func NormalizeOrderStatus(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return OrderPending
	}
	if canonical, ok := orderStatusAliases[key]; ok {
		return canonical
	}
	utils.InfoLogger.Warnf("unknown order status %q, falling back to pending", raw)
	return OrderPending
}

// NormalizeTableStatus -> status kanonik table; fallback ke available.
func NormalizeTableStatus(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return TableAvailable
	}
	if canonical, ok := tableStatusAliases[key]; ok {
		return canonical
	}
	utils.InfoLogger.Warnf("unknown table status %q, falling back to available", raw)
	return TableAvailable
}

// IsBlockingOrderStatus -> true jika status order masih mengklaim meja.
func IsBlockingOrderStatus(status string) bool {
	switch status {
	case OrderPending, OrderApproved, OrderCheckedIn:
		return true
	}
	return false
}

// IsTerminalOrderStatus -> completed/declined tidak boleh berubah lagi.
func IsTerminalOrderStatus(status string) bool {
	return status == OrderCompleted || status == OrderDeclined
}
