package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "ternakku_backend/internals/databases"
	animalModel "ternakku_backend/internals/features/livestock/animals/model"
	transitionModel "ternakku_backend/internals/features/livestock/transitions/model"
	transitionRoutes "ternakku_backend/internals/features/livestock/transitions/route"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	transitionRoutes.TransitionRoutes(api, db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var envelope map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, envelope
}

func seedAnimal(t *testing.T, db *gorm.DB, tag string) animalModel.AnimalModel {
	t.Helper()
	animal := animalModel.AnimalModel{
		AnimalTag:          tag,
		AnimalStatus:       animalModel.AnimalStatusActive,
		AnimalPurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AnimalFarm:         "Farm A",
		AnimalPen:          "P3",
	}
	if err := db.Create(&animal).Error; err != nil {
		t.Fatalf("create animal: %v", err)
	}
	return animal
}

func loadHistory(t *testing.T, db *gorm.DB, animalID uuid.UUID) []transitionModel.StatusHistoryModel {
	t.Helper()
	var history []transitionModel.StatusHistoryModel
	if err := db.Where("status_history_animal_id = ?", animalID).
		Order("status_history_created_at ASC").Find(&history).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}
	return history
}

func TestQuarantineTransition(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)
	animal := seedAnimal(t, db, "TAG-1")

	status, envelope := doJSON(t, app, http.MethodPost, "/api/animals/TAG-1/quarantine", fiber.Map{
		"reason":     "suspek PMK",
		"start_date": "2024-02-01",
	})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%v)", status, envelope)
	}
	quarantineID, err := uuid.Parse(envelope["data"].(map[string]any)["quarantine_id"].(string))
	if err != nil {
		t.Fatalf("quarantine_id tidak valid: %v", err)
	}

	// satu baris detail, lokasi didenormalisasi dari hewan
	var q transitionModel.QuarantineModel
	if err := db.First(&q, "quarantine_id = ?", quarantineID).Error; err != nil {
		t.Fatal(err)
	}
	if q.QuarantineFarm != "Farm A" || q.QuarantinePen != "P3" {
		t.Errorf("lokasi karantina = %s/%s, want Farm A/P3", q.QuarantineFarm, q.QuarantinePen)
	}

	// status hewan berubah
	var reloaded animalModel.AnimalModel
	db.First(&reloaded, "animal_id = ?", animal.AnimalID)
	if reloaded.AnimalStatus != animalModel.AnimalStatusInactive {
		t.Fatalf("status = %q, want Inactive", reloaded.AnimalStatus)
	}

	// satu baris audit dengan previous_status segar + reference ke detail
	history := loadHistory(t, db, animal.AnimalID)
	if len(history) != 1 {
		t.Fatalf("jumlah history = %d, want 1", len(history))
	}
	h := history[0]
	if h.StatusHistoryPreviousStatus != animalModel.AnimalStatusActive {
		t.Errorf("previous_status = %q, want Active", h.StatusHistoryPreviousStatus)
	}
	if h.StatusHistoryNewStatus != animalModel.AnimalStatusInactive {
		t.Errorf("new_status = %q, want Inactive", h.StatusHistoryNewStatus)
	}
	if h.StatusHistoryChangeReason != transitionModel.ReasonQuarantine {
		t.Errorf("change_reason = %q, want Quarantine", h.StatusHistoryChangeReason)
	}
	if h.StatusHistoryReferenceID != quarantineID {
		t.Errorf("reference_id = %v, want %v", h.StatusHistoryReferenceID, quarantineID)
	}
	if h.StatusHistoryChangedBy != "System" {
		t.Errorf("changed_by = %q, want default System", h.StatusHistoryChangedBy)
	}
}

func TestSlaughterTransition(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)
	animal := seedAnimal(t, db, "TAG-S")

	status, envelope := doJSON(t, app, http.MethodPost, "/api/animals/TAG-S/slaughter", fiber.Map{
		"slaughter_date":    "2024-06-01",
		"weight_before":     480.5,
		"final_weight_gain": 180.5,
		"carcass_weight":    260.0,
		"carcass_ratio":     54.1,
		"carcass_quality":   "A",
		"changed_by":        "mandor-1",
	})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%v)", status, envelope)
	}

	history := loadHistory(t, db, animal.AnimalID)
	if len(history) != 1 {
		t.Fatalf("jumlah history = %d, want 1", len(history))
	}
	if history[0].StatusHistoryChangeReason != transitionModel.ReasonSlaughter {
		t.Errorf("change_reason = %q, want Slaughter", history[0].StatusHistoryChangeReason)
	}
	if history[0].StatusHistoryChangedBy != "mandor-1" {
		t.Errorf("changed_by = %q, want mandor-1", history[0].StatusHistoryChangedBy)
	}
}

func TestDeathTransitionDenormalizesLocation(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)
	animal := seedAnimal(t, db, "TAG-D")

	status, envelope := doJSON(t, app, http.MethodPost, "/api/animals/TAG-D/death", fiber.Map{
		"cause":          "sakit",
		"cause_of_death": "pneumonia",
		"date":           "2024-03-05",
	})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%v)", status, envelope)
	}
	deathID := envelope["data"].(map[string]any)["death_id"].(string)

	var d transitionModel.DeathModel
	if err := db.First(&d, "death_id = ?", deathID).Error; err != nil {
		t.Fatal(err)
	}
	if d.DeathFarm != animal.AnimalFarm || d.DeathPen != animal.AnimalPen {
		t.Errorf("lokasi kematian = %s/%s, want %s/%s", d.DeathFarm, d.DeathPen, animal.AnimalFarm, animal.AnimalPen)
	}

	history := loadHistory(t, db, animal.AnimalID)
	if len(history) != 1 || history[0].StatusHistoryChangeReason != transitionModel.ReasonDeath {
		t.Fatalf("history = %+v, want satu baris reason Death", history)
	}
}

func TestTransitionUnknownAnimal(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	status, _ := doJSON(t, app, http.MethodPost, "/api/animals/GHOST/quarantine", fiber.Map{
		"reason": "x", "start_date": "2024-02-01",
	})
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestTransitionRollsBackWhenHistoryInsertFails(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)
	animal := seedAnimal(t, db, "TAG-RB")

	// paksa langkah audit gagal: tabelnya dihilangkan
	if err := db.Migrator().DropTable(&transitionModel.StatusHistoryModel{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	status, _ := doJSON(t, app, http.MethodPost, "/api/animals/TAG-RB/quarantine", fiber.Map{
		"reason": "suspek PMK", "start_date": "2024-02-01",
	})
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}

	// rollback total: tidak ada baris karantina, status tidak berubah
	var quarantines int64
	db.Model(&transitionModel.QuarantineModel{}).
		Where("quarantine_animal_id = ?", animal.AnimalID).Count(&quarantines)
	if quarantines != 0 {
		t.Fatalf("quarantine rows = %d, want 0 setelah rollback", quarantines)
	}
	var reloaded animalModel.AnimalModel
	db.First(&reloaded, "animal_id = ?", animal.AnimalID)
	if reloaded.AnimalStatus != animalModel.AnimalStatusActive {
		t.Fatalf("status = %q, want tetap Active setelah rollback", reloaded.AnimalStatus)
	}
}

func TestStatusHistoryEndpoint(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)
	seedAnimal(t, db, "TAG-H")

	if status, _ := doJSON(t, app, http.MethodPost, "/api/animals/TAG-H/quarantine", fiber.Map{
		"reason": "observasi", "start_date": "2024-02-01",
	}); status != http.StatusCreated {
		t.Fatal("karantina gagal")
	}

	status, envelope := doJSON(t, app, http.MethodGet, "/api/animals/TAG-H/status-history", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if data := envelope["data"].([]any); len(data) != 1 {
		t.Fatalf("jumlah entri audit = %d, want 1", len(data))
	}
}
