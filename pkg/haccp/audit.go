package haccp

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

const (
	AuditEntityAlerts        = "ALERTS"
	AuditEntityUsers         = "USERS"
	AuditEntityFacilities    = "FACILITIES"
	AuditEntityRefrigerators = "REFRIGERATORS"
	AuditEntityMenus         = "MENUS"
	AuditEntityCatalog       = "CATALOG"
	AuditEntitySystem        = "SYSTEM"

	systemActorName = "System"

	defaultAuditEntryListLimit = 100
	maximumAuditEntryListLimit = 1000
)

func coreLogger(category string) *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHACCPCore,
		zap.String(common.LoggerFieldHACCPCategory, category),
	)
}

func (h *HACCP) recordAudit(action models.AuditAction, entity, details string, actor *models.User, metadata map[string]any) {
	logger := coreLogger(common.LoggerCategoryHACCPAudit)

	entry := models.AuditEntry{
		Timestamp: time.Now(),
		UserName:  systemActorName,
		Action:    action,
		Entity:    entity,
		Details:   details,
	}
	if actor != nil {
		entry.UserID = actor.ID
		entry.UserName = common.FirstNonEmpty(actor.Name, actor.Username, actor.ID)
	}

	if len(metadata) > 0 {
		raw, err := json.Marshal(metadata)
		if err != nil {
			logger.Warn("Audit metadata dropped", zap.Error(err))
		} else {
			entry.Metadata = datatypes.JSON(raw)
		}
	}

	if err := h.Db.Conn.Create(&entry).Error; err != nil {
		logger.Error("Failed to record audit entry", zap.Reflect("entry", entry), zap.Error(err))
		return
	}

	logger.Info("Audit entry recorded", zap.Reflect("entry", entry))
}

func (h *HACCP) listAuditEntries(limit int) ([]models.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultAuditEntryListLimit
	}
	limit = min(limit, maximumAuditEntryListLimit)

	var entries []models.AuditEntry
	err := h.Db.Conn.
		Order("timestamp desc").
		Order("id desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

type IAuditImpl struct {
	haccp *HACCP
}

func (ia *IAuditImpl) Record(action models.AuditAction, entity, details string, actor *models.User) {
	ia.haccp.recordAudit(action, entity, details, actor, nil)
}

func (ia *IAuditImpl) RecordWithMetadata(action models.AuditAction, entity, details string, actor *models.User, metadata map[string]any) {
	ia.haccp.recordAudit(action, entity, details, actor, metadata)
}

func (ia *IAuditImpl) ListEntries(limit int) ([]models.AuditEntry, error) {
	return ia.haccp.listAuditEntries(limit)
}

func (h *HACCP) GetIAudit() IAudit {
	return &IAuditImpl{haccp: h}
}

// audit forwards to the configured audit service, if any.
func (h *HACCP) audit(action models.AuditAction, entity, details string, actor *models.User) {
	if h.Audit == nil {
		return
	}
	h.Audit.Record(action, entity, details, actor)
}
