package haccp

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

func DefaultRefrigeratorTypes() []models.RefrigeratorType {
	return []models.RefrigeratorType{
		{ID: "RT1", Name: "Kühlschrank (+2 bis +7°C)", Checkpoints: []models.Checkpoint{{Name: "Luft", MinTemp: 2, MaxTemp: 7}}},
		{ID: "RT2", Name: "Tiefkühler (-18 bis -22°C)", Checkpoints: []models.Checkpoint{{Name: "Luft", MinTemp: -22, MaxTemp: -18}}},
	}
}

func DefaultCookingMethods() []models.CookingMethod {
	return []models.CookingMethod{
		{ID: "CM1", Name: "Standard Cook & Serve", Checkpoints: []models.Checkpoint{{Name: "Kern", MinTemp: 72, MaxTemp: 95}}},
	}
}

// FindCheckpoint looks a checkpoint up by name, ignoring case and surrounding
// whitespace.
func FindCheckpoint(checkpoints []models.Checkpoint, name string) (models.Checkpoint, bool) {
	name = strings.TrimSpace(name)
	for _, cp := range checkpoints {
		if strings.EqualFold(strings.TrimSpace(cp.Name), name) {
			return cp, true
		}
	}
	return models.Checkpoint{}, false
}

func validateCheckpoints(checkpoints []models.Checkpoint) error {
	seen := make(map[string]struct{}, len(checkpoints))
	for _, cp := range checkpoints {
		key := strings.ToLower(strings.TrimSpace(cp.Name))
		if key == "" {
			return fmt.Errorf("%w: checkpoint name is required", ErrInvalidInput)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate checkpoint %q", ErrInvalidInput, cp.Name)
		}
		seen[key] = struct{}{}

		if math.IsNaN(cp.MinTemp) || math.IsNaN(cp.MaxTemp) || cp.MinTemp > cp.MaxTemp {
			return fmt.Errorf("%w: checkpoint %q needs minTemp <= maxTemp", ErrInvalidInput, cp.Name)
		}
	}
	return nil
}

// removedCheckpoints returns the lowercased names present in before but missing
// from after.
func removedCheckpoints(before, after []models.Checkpoint) []string {
	var removed []string
	for _, cp := range before {
		if _, kept := FindCheckpoint(after, cp.Name); !kept {
			removed = append(removed, strings.ToLower(strings.TrimSpace(cp.Name)))
		}
	}
	return removed
}

// refrigeratorCheckpointsInUse counts readings on refrigerators of typeID that
// reference one of names.
func (h *HACCP) refrigeratorCheckpointsInUse(typeID string, names []string) (int64, error) {
	var count int64
	err := h.Db.Conn.Table("readings AS r").
		Joins("JOIN refrigerators AS k ON k.id = r.target_id").
		Where("r.target_type = ?", string(models.TargetTypeRefrigerator)).
		Where("k.type_id = ?", typeID).
		Where("LOWER(TRIM(r.checkpoint_name)) IN ?", names).
		Count(&count).Error
	return count, err
}

// cookingCheckpointsInUse counts menu readings evaluated against
// cookingMethodID, directly or through the facility fallback.
func (h *HACCP) cookingCheckpointsInUse(cookingMethodID string, names []string) (int64, error) {
	var count int64
	err := h.Db.Conn.Table("readings AS r").
		Joins("JOIN menus AS m ON m.id = r.target_id").
		Joins("LEFT JOIN facilities AS f ON f.id = r.facility_id").
		Where("r.target_type = ?", string(models.TargetTypeMenu)).
		Where("m.cooking_method_id = ? OR (COALESCE(m.cooking_method_id, '') = '' AND f.cooking_method_id = ?)", cookingMethodID, cookingMethodID).
		Where("LOWER(TRIM(r.checkpoint_name)) IN ?", names).
		Count(&count).Error
	return count, err
}

func checkpointsInUseError(removed []string, count int64) error {
	if count > 0 {
		return fmt.Errorf("%w: checkpoints %v are referenced by %d readings", ErrInvalidInput, removed, count)
	}
	return nil
}

func (h *HACCP) resolveBand(reading *models.Reading) (models.Checkpoint, bool) {
	logger := coreLogger(common.LoggerCategoryHACCPCatalog)

	checkpoints, err := h.checkpointsFor(reading)
	if err != nil {
		logger.Debug("No band for reading target",
			zap.String("target_id", reading.TargetID),
			zap.String("target_type", string(reading.TargetType)),
			zap.Error(err),
		)
		return models.Checkpoint{}, false
	}

	band, found := FindCheckpoint(checkpoints, reading.CheckpointName)
	if !found {
		logger.Debug("Checkpoint not configured for target",
			zap.String("target_id", reading.TargetID),
			zap.String("checkpoint", reading.CheckpointName),
		)
	}
	return band, found
}

func (h *HACCP) checkpointsFor(reading *models.Reading) ([]models.Checkpoint, error) {
	switch reading.TargetType {
	case models.TargetTypeRefrigerator:
		refrigerator, err := h.getRefrigerator(reading.TargetID)
		if err != nil {
			return nil, err
		}
		var rt models.RefrigeratorType
		if err := h.Db.Conn.First(&rt, "id = ?", refrigerator.TypeID).Error; err != nil {
			return nil, notFound(err)
		}
		return rt.Checkpoints, nil

	case models.TargetTypeMenu:
		menu, err := h.getMenu(reading.TargetID)
		if err != nil {
			return nil, err
		}
		cookingMethodID := menu.CookingMethodID
		if cookingMethodID == "" {
			facility, err := h.getFacility(reading.FacilityID)
			if err != nil {
				return nil, err
			}
			cookingMethodID = facility.CookingMethodID
		}
		var cm models.CookingMethod
		if err := h.Db.Conn.First(&cm, "id = ?", cookingMethodID).Error; err != nil {
			return nil, notFound(err)
		}
		return cm.Checkpoints, nil
	}

	return nil, fmt.Errorf("%w: target type %q", ErrInvalidInput, reading.TargetType)
}

func (h *HACCP) upsertRefrigeratorType(input *models.RefrigeratorType, actor *models.User) error {
	if input.ID == "" || input.Name == "" {
		return fmt.Errorf("%w: id and name are required", ErrInvalidInput)
	}
	if err := validateCheckpoints(input.Checkpoints); err != nil {
		return err
	}

	var existing models.RefrigeratorType
	if err := h.Db.Conn.Limit(1).Find(&existing, "id = ?", input.ID).Error; err != nil {
		return err
	}
	if removed := removedCheckpoints(existing.Checkpoints, input.Checkpoints); len(removed) > 0 {
		count, err := h.refrigeratorCheckpointsInUse(input.ID, removed)
		if err != nil {
			return err
		}
		if err := checkpointsInUseError(removed, count); err != nil {
			return err
		}
	}

	if err := h.upsert(input); err != nil {
		return err
	}
	coreLogger(common.LoggerCategoryHACCPCatalog).Info("Upserted refrigerator type", zap.Reflect("type", input))
	h.audit(models.AuditActionUpdate, AuditEntityCatalog, fmt.Sprintf("Gerätetyp %s gespeichert", input.Name), actor)
	return nil
}

func (h *HACCP) listRefrigeratorTypes() ([]models.RefrigeratorType, error) {
	var types []models.RefrigeratorType
	err := h.Db.Conn.Order("id asc").Find(&types).Error
	return types, err
}

func (h *HACCP) upsertCookingMethod(input *models.CookingMethod, actor *models.User) error {
	if input.ID == "" || input.Name == "" {
		return fmt.Errorf("%w: id and name are required", ErrInvalidInput)
	}
	if err := validateCheckpoints(input.Checkpoints); err != nil {
		return err
	}

	var existing models.CookingMethod
	if err := h.Db.Conn.Limit(1).Find(&existing, "id = ?", input.ID).Error; err != nil {
		return err
	}
	if removed := removedCheckpoints(existing.Checkpoints, input.Checkpoints); len(removed) > 0 {
		count, err := h.cookingCheckpointsInUse(input.ID, removed)
		if err != nil {
			return err
		}
		if err := checkpointsInUseError(removed, count); err != nil {
			return err
		}
	}

	if err := h.upsert(input); err != nil {
		return err
	}
	coreLogger(common.LoggerCategoryHACCPCatalog).Info("Upserted cooking method", zap.Reflect("method", input))
	h.audit(models.AuditActionUpdate, AuditEntityCatalog, fmt.Sprintf("Garmethode %s gespeichert", input.Name), actor)
	return nil
}

func (h *HACCP) listCookingMethods() ([]models.CookingMethod, error) {
	var methods []models.CookingMethod
	err := h.Db.Conn.Order("id asc").Find(&methods).Error
	return methods, err
}

// seedDefaults inserts the default catalog when it is empty. Existing entries
// are left alone.
func (h *HACCP) seedDefaults() error {
	logger := coreLogger(common.LoggerCategoryHACCPCatalog)

	var count int64
	if err := h.Db.Conn.Model(&models.RefrigeratorType{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		types := DefaultRefrigeratorTypes()
		if err := h.Db.Conn.Create(&types).Error; err != nil {
			return err
		}
		logger.Info("Seeded default refrigerator types", zap.Int("count", len(types)))
	}

	if err := h.Db.Conn.Model(&models.CookingMethod{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		methods := DefaultCookingMethods()
		if err := h.Db.Conn.Create(&methods).Error; err != nil {
			return err
		}
		logger.Info("Seeded default cooking methods", zap.Int("count", len(methods)))
	}

	return nil
}

type ICatalogImpl struct {
	haccp *HACCP
}

func (ic *ICatalogImpl) ResolveBand(reading *models.Reading) (models.Checkpoint, bool) {
	return ic.haccp.resolveBand(reading)
}

func (ic *ICatalogImpl) UpsertRefrigeratorType(input *models.RefrigeratorType, actor *models.User) error {
	return ic.haccp.upsertRefrigeratorType(input, actor)
}

func (ic *ICatalogImpl) ListRefrigeratorTypes() ([]models.RefrigeratorType, error) {
	return ic.haccp.listRefrigeratorTypes()
}

func (ic *ICatalogImpl) UpsertCookingMethod(input *models.CookingMethod, actor *models.User) error {
	return ic.haccp.upsertCookingMethod(input, actor)
}

func (ic *ICatalogImpl) ListCookingMethods() ([]models.CookingMethod, error) {
	return ic.haccp.listCookingMethods()
}

func (ic *ICatalogImpl) SeedDefaults() error {
	return ic.haccp.seedDefaults()
}

func (h *HACCP) GetICatalog() ICatalog {
	return &ICatalogImpl{haccp: h}
}
