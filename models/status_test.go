package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrderStatus(t *testing.T) {
	cases := map[string]string{
		"pending":     OrderPending,
		"Pending":     OrderPending,
		"  approved ": OrderApproved,
		"Đã duyệt":    OrderApproved,
		"checked_in":  OrderCheckedIn,
		"active":      OrderCheckedIn,
		"completed":   OrderCompleted,
		"done":        OrderCompleted,
		"Decline":     OrderDeclined,
		"cancelled":   OrderDeclined,
		"đã từ chối":  OrderDeclined,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeOrderStatus(raw), "raw=%q", raw)
	}

	// Nilai tak dikenal atau kosong jatuh ke pending
	assert.Equal(t, OrderPending, NormalizeOrderStatus(""))
	assert.Equal(t, OrderPending, NormalizeOrderStatus("garbage"))
}

func TestNormalizeTableStatus(t *testing.T) {
	cases := map[string]string{
		"available":     TableAvailable,
		"Trống":         TableAvailable,
		"empty":         TableAvailable,
		"held":          TableHeld,
		"reserved":      TableHeld,
		"occupied":      TableOccupied,
		"busy":          TableOccupied,
		"Không còn chỗ": TableOccupied,
		"đang sử dụng":  TableOccupied,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeTableStatus(raw), "raw=%q", raw)
	}

	assert.Equal(t, TableAvailable, NormalizeTableStatus(""))
	assert.Equal(t, TableAvailable, NormalizeTableStatus("garbage"))
}

func TestIsBlockingOrderStatus(t *testing.T) {
	assert.True(t, IsBlockingOrderStatus(OrderPending))
	assert.True(t, IsBlockingOrderStatus(OrderApproved))
	assert.True(t, IsBlockingOrderStatus(OrderCheckedIn))
	assert.False(t, IsBlockingOrderStatus(OrderCompleted))
	assert.False(t, IsBlockingOrderStatus(OrderDeclined))
}

func TestIsTerminalOrderStatus(t *testing.T) {
	assert.True(t, IsTerminalOrderStatus(OrderCompleted))
	assert.True(t, IsTerminalOrderStatus(OrderDeclined))
	assert.False(t, IsTerminalOrderStatus(OrderPending))
	assert.False(t, IsTerminalOrderStatus(OrderCheckedIn))
}
