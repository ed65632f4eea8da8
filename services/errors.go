package services

import "errors"

var (
	// ErrSlotTaken -> konflik booking terdeteksi saat commit. Pemanggil harus
	// resolve ulang ketersediaan dan retry dengan meja/slot lain, tidak pernah
	// di-retry diam-diam dengan input yang sama.
	ErrSlotTaken = errors.New("table already booked for this slot")

	// ErrInvalidTransition -> perubahan status order yang tidak legal.
	// Seharusnya tidak terjadi dengan gating UI yang benar, tapi core tetap
	// menolak apapun pemanggilnya.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrTooLateToCancel -> aturan bisnis: batal hanya sebelum jam kedatangan
	// dan selama order belum check-in.
	ErrTooLateToCancel = errors.New("too late to cancel this booking")

	// ErrPartyTooLarge -> jumlah orang melebihi kapasitas meja.
	ErrPartyTooLarge = errors.New("party size exceeds table capacity")

	// ErrNoPermission -> actor bukan pemilik order dan bukan admin.
	ErrNoPermission = errors.New("you do not have permission")
)

// Actor adalah identitas pemanggil yang selalu dioper eksplisit ke service,
// tidak pernah dibaca dari state global.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}
