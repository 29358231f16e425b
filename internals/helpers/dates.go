package helper

import (
	"math"
	"strings"
	"time"
)

// ParseDateYMD parse tanggal "2006-01-02"; string kosong dianggap tidak diisi.
func ParseDateYMD(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateOnly membuang komponen jam supaya perbandingan selalu per-kalender-hari.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetweenCeil menghitung selisih hari b-a, dibulatkan ke atas.
// Timbang ulang di hari yang sama (beda jam) tetap menghasilkan 0,
// bukan pecahan hari.
func DaysBetweenCeil(a, b time.Time) int {
	hours := b.Sub(a).Hours()
	return int(math.Ceil(hours / 24.0))
}

// Round2 pembulatan half-up ke 2 desimal (kebijakan numerik ADG).
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
