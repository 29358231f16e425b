package controller

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	animalDTO "ternakku_backend/internals/features/livestock/animals/dto"
	animalModel "ternakku_backend/internals/features/livestock/animals/model"
	checkpointDTO "ternakku_backend/internals/features/livestock/checkpoints/dto"
	checkpointModel "ternakku_backend/internals/features/livestock/checkpoints/model"
	checkpointService "ternakku_backend/internals/features/livestock/checkpoints/service"
	helper "ternakku_backend/internals/helpers"
)

type AnimalController struct {
	DB *gorm.DB
}

func NewAnimalController(db *gorm.DB) *AnimalController {
	return &AnimalController{DB: db}
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint"))
}

// =======================================================
// CREATE
// POST /api/animals
// =======================================================
// Registrasi hewan + snapshot jadwal checkpoint dalam satu transaksi:
// tidak ada hewan tanpa jadwal, tidak ada jadwal tanpa hewan.
func (ctrl *AnimalController) RegisterAnimal(c *fiber.Ctx) error {
	var req animalDTO.RegisterAnimalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Tag = strings.TrimSpace(req.Tag)
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	purchaseDate, ok := helper.ParseDateYMD(req.PurchaseDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal pembelian wajib diisi (format YYYY-MM-DD)")
	}

	animal := animalModel.AnimalModel{
		AnimalTag:          req.Tag,
		AnimalBreed:        req.Breed,
		AnimalCoatColor:    req.CoatColor,
		AnimalAgeMonths:    req.AgeMonths,
		AnimalStatus:       animalModel.AnimalStatusActive,
		AnimalPurchaseDate: purchaseDate,
		AnimalFarm:         req.Farm,
		AnimalPen:          req.Pen,
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&animal).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Tag hewan sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data hewan")
		}

		// Snapshot template aktif saat registrasi
		var templates []checkpointModel.CheckpointTemplateModel
		if err := tx.
			Where("checkpoint_template_is_active = ?", true).
			Order("checkpoint_template_day_offset ASC").
			Find(&templates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil template checkpoint")
		}

		checkpoints, err := checkpointService.GenerateSchedule(animal.AnimalID, animal.AnimalPurchaseDate, templates)
		if err != nil {
			return err
		}
		if len(checkpoints) > 0 {
			if err := tx.Create(&checkpoints).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jadwal checkpoint")
			}
		}
		return nil
	}); err != nil {
		log.Println("[ERROR] Registrasi hewan gagal:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Hewan terdaftar", fiber.Map{
		"animal_id": animal.AnimalID,
	})
}

// =======================================================
// READ
// GET /api/animals/checkpoints
// =======================================================
// Daftar hewan + seluruh checkpoint-nya, tiap checkpoint diberi due_state
// (completed/overdue/due_today/upcoming) terhadap hari ini.
func (ctrl *AnimalController) ListWithCheckpoints(c *fiber.Ctx) error {
	var animals []animalModel.AnimalModel
	if err := ctrl.DB.Order("animal_created_at ASC").Find(&animals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data hewan")
	}

	var checkpoints []checkpointModel.ScheduledCheckpointModel
	if err := ctrl.DB.
		Order("scheduled_checkpoint_date ASC, scheduled_checkpoint_day_offset ASC").
		Find(&checkpoints).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal checkpoint")
	}

	today := time.Now()
	byAnimal := make(map[uuid.UUID][]checkpointDTO.ScheduledCheckpointDTO, len(animals))
	for _, cp := range checkpoints {
		state := checkpointService.ClassifyDueState(cp.ScheduledCheckpointCompletedAt, cp.ScheduledCheckpointDate, today)
		byAnimal[cp.ScheduledCheckpointAnimalID] = append(
			byAnimal[cp.ScheduledCheckpointAnimalID],
			checkpointDTO.FromScheduledCheckpointModel(cp, state),
		)
	}

	type item struct {
		Animal      animalDTO.AnimalDTO                    `json:"animal"`
		Checkpoints []checkpointDTO.ScheduledCheckpointDTO `json:"checkpoints"`
	}
	out := make([]item, 0, len(animals))
	for _, a := range animals {
		cps := byAnimal[a.AnimalID]
		if cps == nil {
			cps = []checkpointDTO.ScheduledCheckpointDTO{}
		}
		out = append(out, item{Animal: animalDTO.FromAnimalModel(a), Checkpoints: cps})
	}

	return helper.JsonOK(c, "ok", out)
}

// =======================================================
// READ
// GET /api/animals?min_weight=&max_weight=&farm=&pen=
// =======================================================
// Filter hewan berdasarkan berat terakhirnya (baris animal_weight_history
// dengan check_date terbaru) dan penempatan farm/pen.
func (ctrl *AnimalController) FilterAnimals(c *fiber.Ctx) error {
	type row struct {
		animalModel.AnimalModel
		LastWeightKg  *float64   `gorm:"column:last_weight_kg"`
		LastCheckDate *time.Time `gorm:"column:last_check_date"`
	}

	q := ctrl.DB.Table("animals AS a").
		Select(`a.*,
			w.weight_history_weight_kg  AS last_weight_kg,
			w.weight_history_check_date AS last_check_date`).
		Joins(`LEFT JOIN animal_weight_history w ON w.weight_history_id = (
			SELECT w2.weight_history_id FROM animal_weight_history w2
			WHERE w2.weight_history_animal_id = a.animal_id
			ORDER BY w2.weight_history_check_date DESC, w2.weight_history_created_at DESC
			LIMIT 1)`)

	if farm := strings.TrimSpace(c.Query("farm")); farm != "" {
		q = q.Where("a.animal_farm = ?", farm)
	}
	if pen := strings.TrimSpace(c.Query("pen")); pen != "" {
		q = q.Where("a.animal_pen = ?", pen)
	}
	if raw := strings.TrimSpace(c.Query("min_weight")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "min_weight tidak valid")
		}
		q = q.Where("w.weight_history_weight_kg >= ?", v)
	}
	if raw := strings.TrimSpace(c.Query("max_weight")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "max_weight tidak valid")
		}
		q = q.Where("w.weight_history_weight_kg <= ?", v)
	}

	var rows []row
	if err := q.Order("a.animal_tag ASC").Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal filter hewan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data hewan")
	}

	out := make([]animalDTO.AnimalSummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, animalDTO.AnimalSummaryDTO{
			AnimalDTO:     animalDTO.FromAnimalModel(r.AnimalModel),
			LastWeightKg:  r.LastWeightKg,
			LastCheckDate: r.LastCheckDate,
		})
	}
	return helper.JsonOK(c, "ok", out)
}
