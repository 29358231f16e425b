package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alasan transisi status (audit). Alur karantina selalu memakai
// ReasonQuarantine; ReasonManual hanya untuk koreksi operator.
const (
	ReasonQuarantine = "Quarantine"
	ReasonSlaughter  = "Slaughter"
	ReasonDeath      = "Death"
	ReasonManual     = "Manual"
)

// StatusHistoryModel: audit log append-only. Tidak pernah di-update
// atau dihapus.
type StatusHistoryModel struct {
	StatusHistoryID             uuid.UUID `gorm:"column:status_history_id;type:uuid;primaryKey" json:"status_history_id"`
	StatusHistoryAnimalID       uuid.UUID `gorm:"column:status_history_animal_id;type:uuid;not null;index" json:"status_history_animal_id"`
	StatusHistoryPreviousStatus string    `gorm:"column:status_history_previous_status;not null" json:"status_history_previous_status"`
	StatusHistoryNewStatus      string    `gorm:"column:status_history_new_status;not null" json:"status_history_new_status"`
	StatusHistoryChangedBy      string    `gorm:"column:status_history_changed_by;not null;default:'System'" json:"status_history_changed_by"`
	StatusHistoryChangeReason   string    `gorm:"column:status_history_change_reason;not null" json:"status_history_change_reason"`
	StatusHistoryReferenceID    uuid.UUID `gorm:"column:status_history_reference_id;type:uuid" json:"status_history_reference_id"`
	StatusHistoryCreatedAt      time.Time `gorm:"column:status_history_created_at;autoCreateTime" json:"status_history_created_at"`
}

func (StatusHistoryModel) TableName() string {
	return "status_history"
}

func (m *StatusHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.StatusHistoryID == uuid.Nil {
		m.StatusHistoryID = uuid.New()
	}
	return nil
}
