package service

import (
	"sort"
	"time"

	helper "ternakku_backend/internals/helpers"
)

// WeighEntry: satu penimbangan historis (sudah tersimpan) milik seekor hewan.
type WeighEntry struct {
	CheckDate time.Time
	WeightKg  float64
}

// GrowthMetrics: field turunan untuk satu baris animal_weight_history.
type GrowthMetrics struct {
	WeightDiff    *float64
	DaysSinceLast *int
	Adg           *float64
	OverallAdg    *float64
}

// ComputeGrowthMetrics menghitung metrik pertumbuhan untuk penimbangan baru
// (checkDate, weightKg) terhadap riwayat yang sudah ada:
//
//   - incremental: selisih terhadap entri tepat sebelum posisi tanggal ini
//     dalam urutan check_date ascending; adg = diff/days (half-up 2 desimal),
//     null bila days == 0 (timbang ulang di hari yang sama).
//   - overall: selisih terhadap entri pertama secara kronologis; null bila
//     total hari == 0 (termasuk penimbangan pertama seekor hewan).
//
// Entri yang sudah tersimpan tidak pernah dihitung ulang: penimbangan yang
// di-backdate hanya memengaruhi metrik dirinya sendiri, bukan tetangganya.
func ComputeGrowthMetrics(history []WeighEntry, checkDate time.Time, weightKg float64) GrowthMetrics {
	var m GrowthMetrics

	cur := helper.DateOnly(checkDate)

	// Gabungkan entri baru ke urutan lalu cari posisinya. Stable sort
	// menjaga entri baru tetap di belakang entri lama bertanggal sama.
	merged := make([]WeighEntry, 0, len(history)+1)
	for _, h := range history {
		merged = append(merged, WeighEntry{CheckDate: helper.DateOnly(h.CheckDate), WeightKg: h.WeightKg})
	}
	pos := len(merged)
	merged = append(merged, WeighEntry{CheckDate: cur, WeightKg: weightKg})
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CheckDate.Before(merged[j].CheckDate)
	})
	for i := range merged {
		if merged[i].CheckDate.Equal(cur) && merged[i].WeightKg == weightKg {
			pos = i
		}
	}

	// Incremental: terhadap tetangga tepat sebelumnya.
	if pos > 0 {
		prev := merged[pos-1]
		diff := helper.Round2(weightKg - prev.WeightKg)
		days := helper.DaysBetweenCeil(prev.CheckDate, cur)
		m.WeightDiff = &diff
		m.DaysSinceLast = &days
		if days > 0 {
			adg := helper.Round2(diff / float64(days))
			m.Adg = &adg
		}
	}

	// Overall: terhadap entri pertama secara kronologis.
	first := merged[0]
	totalDays := helper.DaysBetweenCeil(first.CheckDate, cur)
	if totalDays > 0 {
		overall := helper.Round2(helper.Round2(weightKg-first.WeightKg) / float64(totalDays))
		m.OverallAdg = &overall
	}

	return m
}
