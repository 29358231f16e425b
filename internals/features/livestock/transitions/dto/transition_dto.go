package dto

/* =========================================================
   Requests: satu per jenis kejadian, protokolnya sama
========================================================= */

type RecordQuarantineRequest struct {
	Reason    string  `json:"reason" validate:"required"`
	StartDate string  `json:"start_date" validate:"required"` // "2006-01-02"
	EndDate   *string `json:"end_date,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	ChangedBy string  `json:"changed_by"`
}

type RecordSlaughterRequest struct {
	SlaughterDate    string  `json:"slaughter_date" validate:"required"`
	WeightBefore     float64 `json:"weight_before" validate:"required,gt=0"`
	FinalWeightGain  float64 `json:"final_weight_gain"`
	CarcassWeight    float64 `json:"carcass_weight" validate:"gte=0"`
	CarcassRatio     float64 `json:"carcass_ratio" validate:"gte=0"`
	CarcassQuality   string  `json:"carcass_quality"`
	QualityNotes     *string `json:"quality_notes,omitempty"`
	CustomerFeedback *string `json:"customer_feedback,omitempty"`
	ChangedBy        string  `json:"changed_by"`
}

type RecordDeathRequest struct {
	Cause        string `json:"cause" validate:"required"`
	CauseOfDeath string `json:"cause_of_death"`
	Date         string `json:"date" validate:"required"`
	ChangedBy    string `json:"changed_by"`
}
