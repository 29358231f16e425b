package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	animalModel "ternakku_backend/internals/features/livestock/animals/model"
	checkpointModel "ternakku_backend/internals/features/livestock/checkpoints/model"
	transitionModel "ternakku_backend/internals/features/livestock/transitions/model"
	weightModel "ternakku_backend/internals/features/livestock/weights/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ternakku",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua model fitur livestock.
// Dipakai juga oleh test (sqlite in-memory) supaya skema selalu sinkron.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&animalModel.AnimalModel{},
		&checkpointModel.CheckpointTemplateModel{},
		&checkpointModel.ScheduledCheckpointModel{},
		&checkpointModel.CheckpointRecordModel{},
		&checkpointModel.TreatmentModel{},
		&weightModel.WeightHistoryModel{},
		&transitionModel.QuarantineModel{},
		&transitionModel.SlaughterModel{},
		&transitionModel.DeathModel{},
		&transitionModel.StatusHistoryModel{},
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
