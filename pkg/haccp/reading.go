package haccp

import (
	"errors"
	"fmt"
	"math"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

const (
	defaultReadingListLimit = 200
	maximumReadingListLimit = 5000
)

// readingInput mirrors models.Reading with plain field types for validation.
type readingInput struct {
	TargetID       string
	TargetType     string
	CheckpointName string
	Value          float64
	Timestamp      time.Time
	UserID         string
	FacilityID     string
}

var readingSchema = z.Struct(z.Shape{
	"TargetID":       z.String().Required(),
	"TargetType":     z.String().Required().OneOf([]string{string(models.TargetTypeRefrigerator), string(models.TargetTypeMenu)}),
	"CheckpointName": z.String().Required(),
	"Timestamp":      z.Time().Required(),
	"UserID":         z.String().Required(),
	"FacilityID":     z.String().Required(),
})

// ValidateReading checks a reading before anything is recorded. A zero
// timestamp is replaced with the current time.
func ValidateReading(reading *models.Reading) error {
	if reading == nil {
		return fmt.Errorf("%w: missing reading", ErrInvalidReading)
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	input := readingInput{
		TargetID:       reading.TargetID,
		TargetType:     string(reading.TargetType),
		CheckpointName: reading.CheckpointName,
		Value:          reading.Value,
		Timestamp:      reading.Timestamp,
		UserID:         reading.UserID,
		FacilityID:     reading.FacilityID,
	}
	if errs := readingSchema.Validate(&input); errs != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReading, errs)
	}

	if math.IsNaN(reading.Value) || math.IsInf(reading.Value, 0) {
		return fmt.Errorf("%w: value must be a finite number", ErrInvalidReading)
	}
	return nil
}

func (h *HACCP) submitReading(input *models.Reading) (*models.Reading, *models.Alert, error) {
	logger := coreLogger(common.LoggerCategoryHACCPReading)

	if err := ValidateReading(input); err != nil {
		logger.Info("Rejected reading", zap.Error(err))
		return nil, nil, err
	}

	reading := *input
	if reading.ID == "" {
		reading.ID = uuid.NewString()
	}

	if err := h.Db.Conn.Create(&reading).Error; err != nil {
		return nil, nil, fmt.Errorf("save reading: %w", err)
	}

	logger.Info("Reading saved", zap.Reflect("reading", reading))

	alert := h.evaluateReading(&reading)
	if alert == nil {
		return &reading, nil, nil
	}

	if h.Alert == nil {
		logger.Error("Alert ledger not available, alert dropped", zap.String("reading_id", reading.ID))
		return &reading, alert, nil
	}
	if err := h.Alert.AppendAlert(alert); err != nil {
		if errors.Is(err, ErrDuplicateAlert) {
			logger.Warn("Alert already raised for reading", zap.String("reading_id", reading.ID))
			return &reading, alert, nil
		}
		logger.Error("Failed to save alert", zap.String("reading_id", reading.ID), zap.Error(err))
	}

	h.notify(alert, &reading)

	return &reading, alert, nil
}

// evaluateReading returns the alert raised by reading, or nil when the reading
// is compliant or no band is configured for it.
func (h *HACCP) evaluateReading(reading *models.Reading) *models.Alert {
	if h.Catalog == nil {
		return nil
	}

	band, found := h.Catalog.ResolveBand(reading)
	if !found {
		return nil
	}

	alert, violated := Evaluate(reading, band, h.lookupAlertNames(reading))
	if !violated {
		return nil
	}

	coreLogger(common.LoggerCategoryHACCPAlert).Info("Alert found", zap.Reflect("alert", alert))
	return alert
}

func (h *HACCP) notify(alert *models.Alert, reading *models.Reading) {
	logger := coreLogger(common.LoggerCategoryHACCPDispatch)

	if h.Notifier == nil || h.Directory == nil {
		logger.Debug("Notifier not configured, skip dispatch", zap.Uint("alert_id", alert.ID))
		return
	}

	users, err := h.Directory.ListAlertRecipients(reading.FacilityID)
	if err != nil {
		logger.Error("Failed to load alert recipients", zap.String("facility_id", reading.FacilityID), zap.Error(err))
		return
	}

	recipients := ResolveRecipients(reading.FacilityID, users)
	if recipients.Empty() {
		logger.Debug("No recipients for alert", zap.String("facility_id", reading.FacilityID))
		return
	}

	h.Notifier.Notify(alert, reading, recipients)
}

func (h *HACCP) listReadings(facilityID string, limit int) ([]models.Reading, error) {
	if limit <= 0 {
		limit = defaultReadingListLimit
	}
	limit = min(limit, maximumReadingListLimit)

	var readings []models.Reading
	query := h.Db.Conn.Order("timestamp desc").Limit(limit)
	if facilityID != "" {
		query = query.Where("facility_id = ?", facilityID)
	}
	err := query.Find(&readings).Error
	return readings, err
}

type IReadingImpl struct {
	haccp *HACCP
}

func (ir *IReadingImpl) SubmitReading(input *models.Reading) (*models.Reading, *models.Alert, error) {
	return ir.haccp.submitReading(input)
}

func (ir *IReadingImpl) ListReadings(facilityID string, limit int) ([]models.Reading, error) {
	return ir.haccp.listReadings(facilityID, limit)
}

func (h *HACCP) GetIReading() IReading {
	return &IReadingImpl{haccp: h}
}
