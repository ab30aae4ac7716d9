package haccp

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

func actorName(actor *models.User) string {
	if actor == nil {
		return systemActorName
	}
	return common.FirstNonEmpty(actor.Name, actor.Username, actor.ID)
}

func (h *HACCP) appendAlert(alert *models.Alert) error {
	logger := coreLogger(common.LoggerCategoryHACCPAlert)

	band := models.Checkpoint{MinTemp: alert.Min, MaxTemp: alert.Max}
	if band.Contains(alert.Value) {
		return fmt.Errorf("%w: %.2f in [%.2f, %.2f]", ErrInvalidAlert, alert.Value, alert.Min, alert.Max)
	}

	var count int64
	if err := h.Db.Conn.Model(&models.Alert{}).Where("reading_id = ?", alert.ReadingID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateAlert, alert.ReadingID)
	}

	alert.Resolved = false
	if err := h.Db.Conn.Create(alert).Error; err != nil {
		return err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))
	return nil
}

// resolveAlert marks one alert resolved. Resolving an already resolved alert
// keeps its first resolution and still leaves an audit entry.
func (h *HACCP) resolveAlert(alertID uint, actor *models.User) error {
	logger := coreLogger(common.LoggerCategoryHACCPAlert)

	var alert models.Alert
	if err := h.Db.Conn.First(&alert, alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %d", ErrAlertNotFound, alertID)
		}
		return err
	}

	if !alert.Resolved {
		now := time.Now()
		err := h.Db.Conn.Model(&alert).Updates(map[string]any{
			"resolved":    true,
			"resolved_at": now,
			"resolved_by": actorName(actor),
		}).Error
		if err != nil {
			return err
		}
		logger.Info("Alert resolved", zap.Uint("alert_id", alertID), zap.String("by", actorName(actor)))
	} else {
		logger.Debug("Alert already resolved", zap.Uint("alert_id", alertID))
	}

	h.audit(models.AuditActionUpdate, AuditEntityAlerts, fmt.Sprintf("Alarm %d als erledigt markiert", alertID), actor)
	return nil
}

func (h *HACCP) resolveAllAlerts(actor *models.User) (int64, error) {
	logger := coreLogger(common.LoggerCategoryHACCPAlert)

	result := h.Db.Conn.Model(&models.Alert{}).
		Where("resolved = ?", false).
		Updates(map[string]any{
			"resolved":    true,
			"resolved_at": time.Now(),
			"resolved_by": actorName(actor),
		})
	if result.Error != nil {
		return 0, result.Error
	}

	logger.Info("Alerts resolved", zap.Int64("count", result.RowsAffected), zap.String("by", actorName(actor)))

	if h.Audit != nil {
		h.Audit.RecordWithMetadata(models.AuditActionUpdate, AuditEntityAlerts, "Alle Alarme als erledigt markiert", actor,
			map[string]any{"count": result.RowsAffected})
	}
	return result.RowsAffected, nil
}

// unresolvedAlerts returns open alerts in insertion order.
func (h *HACCP) unresolvedAlerts() ([]models.Alert, error) {
	var alerts []models.Alert
	err := h.Db.Conn.
		Where("resolved = ?", false).
		Order("id asc").
		Find(&alerts).Error
	return alerts, err
}

func (h *HACCP) listAlerts(facilityID string) ([]models.Alert, error) {
	var alerts []models.Alert
	query := h.Db.Conn.Order("timestamp desc").Order("id desc")
	if facilityID != "" {
		query = query.Where("facility_id = ?", facilityID)
	}
	err := query.Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	haccp *HACCP
}

func (ia *IAlertImpl) AppendAlert(alert *models.Alert) error {
	return ia.haccp.appendAlert(alert)
}

func (ia *IAlertImpl) ResolveAlert(alertID uint, actor *models.User) error {
	return ia.haccp.resolveAlert(alertID, actor)
}

func (ia *IAlertImpl) ResolveAllAlerts(actor *models.User) (int64, error) {
	return ia.haccp.resolveAllAlerts(actor)
}

func (ia *IAlertImpl) UnresolvedAlerts() ([]models.Alert, error) {
	return ia.haccp.unresolvedAlerts()
}

func (ia *IAlertImpl) ListAlerts(facilityID string) ([]models.Alert, error) {
	return ia.haccp.listAlerts(facilityID)
}

func (h *HACCP) GetIAlert() IAlert {
	return &IAlertImpl{haccp: h}
}
