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
	animalRoutes "ternakku_backend/internals/features/livestock/animals/route"
	checkpointModel "ternakku_backend/internals/features/livestock/checkpoints/model"
	weightModel "ternakku_backend/internals/features/livestock/weights/model"
	seeds "ternakku_backend/internals/seeds"
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
	// satu koneksi supaya :memory: tidak terpecah antar koneksi pool
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	animalRoutes.AnimalRoutes(api, db)
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

func TestRegisterAnimalCreatesSnapshotSchedule(t *testing.T) {
	db := openTestDB(t)
	if err := seeds.SeedCheckpointTemplates(db); err != nil {
		t.Fatalf("seed templates: %v", err)
	}
	app := newTestApp(db)

	status, envelope := doJSON(t, app, http.MethodPost, "/api/animals", fiber.Map{
		"tag":           "TAG-1",
		"breed":         "Limousin",
		"coat_color":    "coklat",
		"age_months":    8,
		"purchase_date": "2024-01-10",
		"farm":          "Farm A",
		"pen":           "P1",
	})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%v)", status, envelope)
	}
	data := envelope["data"].(map[string]any)
	animalID, err := uuid.Parse(data["animal_id"].(string))
	if err != nil {
		t.Fatalf("animal_id tidak valid: %v", err)
	}

	var templates int64
	db.Model(&checkpointModel.CheckpointTemplateModel{}).
		Where("checkpoint_template_is_active = ?", true).Count(&templates)

	var checkpoints []checkpointModel.ScheduledCheckpointModel
	if err := db.
		Where("scheduled_checkpoint_animal_id = ?", animalID).
		Order("scheduled_checkpoint_day_offset ASC").
		Find(&checkpoints).Error; err != nil {
		t.Fatalf("load checkpoints: %v", err)
	}
	if int64(len(checkpoints)) != templates {
		t.Fatalf("jumlah checkpoint = %d, want %d (satu per template aktif)", len(checkpoints), templates)
	}

	purchase := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for _, cp := range checkpoints {
		want := purchase.AddDate(0, 0, cp.ScheduledCheckpointDayOffset)
		if !cp.ScheduledCheckpointDate.Equal(want) {
			t.Errorf("offset %d: tanggal %v, want %v",
				cp.ScheduledCheckpointDayOffset, cp.ScheduledCheckpointDate, want)
		}
	}
}

func TestRegisterAnimalDuplicateTag(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	payload := fiber.Map{"tag": "TAG-DUP", "purchase_date": "2024-01-10"}
	if status, _ := doJSON(t, app, http.MethodPost, "/api/animals", payload); status != http.StatusCreated {
		t.Fatalf("registrasi pertama gagal: %d", status)
	}
	status, _ := doJSON(t, app, http.MethodPost, "/api/animals", payload)
	if status != http.StatusConflict {
		t.Fatalf("status = %d, want 409", status)
	}
}

func TestRegisterAnimalMissingPurchaseDate(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	status, _ := doJSON(t, app, http.MethodPost, "/api/animals", fiber.Map{"tag": "TAG-2"})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}

	// registrasi gagal tidak boleh meninggalkan hewan setengah jadi
	var count int64
	db.Model(&animalModel.AnimalModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("hewan tersimpan padahal registrasi gagal: %d", count)
	}
}

func TestListWithCheckpointsAnnotatesDueState(t *testing.T) {
	db := openTestDB(t)
	if err := seeds.SeedCheckpointTemplates(db); err != nil {
		t.Fatalf("seed templates: %v", err)
	}
	app := newTestApp(db)

	today := time.Now().Format("2006-01-02")
	if status, _ := doJSON(t, app, http.MethodPost, "/api/animals", fiber.Map{
		"tag": "TAG-TODAY", "purchase_date": today,
	}); status != http.StatusCreated {
		t.Fatal("registrasi gagal")
	}

	status, envelope := doJSON(t, app, http.MethodGet, "/api/animals/checkpoints", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	items := envelope["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("jumlah hewan = %d, want 1", len(items))
	}
	checkpoints := items[0].(map[string]any)["checkpoints"].([]any)
	first := checkpoints[0].(map[string]any)
	// template Day 0: terdaftar hari ini → due_today
	if first["due_state"] != "due_today" {
		t.Fatalf("due_state checkpoint Day 0 = %v, want due_today", first["due_state"])
	}
	for _, raw := range checkpoints[1:] {
		cp := raw.(map[string]any)
		if cp["due_state"] != "upcoming" {
			t.Errorf("offset %v: due_state = %v, want upcoming", cp["day_offset"], cp["due_state"])
		}
	}
}

func TestFilterAnimalsByLatestWeightAndPen(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	heavy := animalModel.AnimalModel{
		AnimalTag: "HEAVY", AnimalStatus: animalModel.AnimalStatusActive,
		AnimalPurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AnimalFarm:         "Farm A", AnimalPen: "P1",
	}
	light := animalModel.AnimalModel{
		AnimalTag: "LIGHT", AnimalStatus: animalModel.AnimalStatusActive,
		AnimalPurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AnimalFarm:         "Farm A", AnimalPen: "P2",
	}
	if err := db.Create(&heavy).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&light).Error; err != nil {
		t.Fatal(err)
	}

	// HEAVY: berat lama 350, berat terbaru 410 → filter pakai yang terbaru
	rows := []weightModel.WeightHistoryModel{
		{WeightHistoryAnimalID: heavy.AnimalID, WeightHistoryCheckDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), WeightHistoryWeightKg: 350},
		{WeightHistoryAnimalID: heavy.AnimalID, WeightHistoryCheckDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), WeightHistoryWeightKg: 410},
		{WeightHistoryAnimalID: light.AnimalID, WeightHistoryCheckDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), WeightHistoryWeightKg: 280},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	status, envelope := doJSON(t, app, http.MethodGet, "/api/animals?min_weight=400", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	data := envelope["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("hasil filter = %d hewan, want 1", len(data))
	}
	if tag := data[0].(map[string]any)["tag"]; tag != "HEAVY" {
		t.Fatalf("tag = %v, want HEAVY", tag)
	}

	status, envelope = doJSON(t, app, http.MethodGet, "/api/animals?pen=P2", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	data = envelope["data"].([]any)
	if len(data) != 1 || data[0].(map[string]any)["tag"] != "LIGHT" {
		t.Fatalf("filter pen=P2 salah: %v", data)
	}
}

func TestGetWeightHistoryByTag(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	animal := animalModel.AnimalModel{
		AnimalTag: "WH-1", AnimalStatus: animalModel.AnimalStatusActive,
		AnimalPurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&animal).Error; err != nil {
		t.Fatal(err)
	}
	rows := []weightModel.WeightHistoryModel{
		{WeightHistoryAnimalID: animal.AnimalID, WeightHistoryCheckDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), WeightHistoryWeightKg: 320},
		{WeightHistoryAnimalID: animal.AnimalID, WeightHistoryCheckDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), WeightHistoryWeightKg: 300},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	status, envelope := doJSON(t, app, http.MethodGet, "/api/animals/WH-1/weights", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	data := envelope["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("jumlah riwayat = %d, want 2", len(data))
	}
	// urut tanggal naik, bukan urut insert
	first := data[0].(map[string]any)
	if first["weight_history_weight_kg"].(float64) != 300 {
		t.Fatalf("baris pertama = %v, want berat 300 (tanggal paling awal)", first)
	}

	status, _ = doJSON(t, app, http.MethodGet, "/api/animals/TIDAK-ADA/weights", nil)
	if status != http.StatusNotFound {
		t.Fatalf("tag asing: status = %d, want 404", status)
	}
}
