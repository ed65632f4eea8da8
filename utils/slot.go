package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidSlot -> input tanggal/jam/area tidak bisa diparse. Selalu
// kesalahan pemanggil, tidak pernah di-retry otomatis.
var ErrInvalidSlot = errors.New("invalid booking slot")

var (
	dateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
)

func IsValidDate(value string) bool {
	return dateRe.MatchString(value)
}

func IsValidTime(value string) bool {
	return timeRe.MatchString(value)
}

// ParseArrival menggabungkan tanggal YYYY-MM-DD dan jam HH:MM[:SS] menjadi
// satu instant. Semua waktu diperlakukan sebagai wall-clock lokal, tanpa
// konversi timezone, mengikuti data upstream. Komponen jam yang kosong atau
// rusak jatuh ke 00:00:00; tanggal yang rusak mengembalikan ErrInvalidSlot.
func ParseArrival(date, clock string) (time.Time, error) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(date))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidSlot, date)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidSlot, date)
	}

	parsePart := func(raw string) int {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || v < 0 {
			return 0
		}
		return v
	}

	var hour, minute, second int
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) > 0 {
		hour = parsePart(parts[0])
	}
	if len(parts) > 1 {
		minute = parsePart(parts[1])
	}
	if len(parts) > 2 {
		second = parsePart(parts[2])
	}
	if hour > 23 || minute > 59 || second > 59 {
		hour, minute, second = 0, 0, 0
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local), nil
}

// IsExpiredLease -> true jika lease ada dan sudah lewat
func IsExpiredLease(activeUntil *time.Time, now time.Time) bool {
	if activeUntil == nil {
		return false
	}
	return !now.Before(*activeUntil)
}
