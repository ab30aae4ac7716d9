package haccp

import (
	"go.uber.org/zap"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

const (
	UnknownFacilityName     = "Unbekannter Standort"
	UnknownUserName         = "Unbekannter Benutzer"
	UnknownRefrigeratorName = "Gerät"
	UnknownMenuName         = "Menü"
)

// AlertNames are the display names copied into an alert.
type AlertNames struct {
	FacilityName string
	TargetName   string
	UserName     string
}

// Evaluate decides whether reading violates band. The band is closed, so
// values equal to MinTemp or MaxTemp are compliant. On violation the returned
// alert copies value and band verbatim and is not yet persisted.
func Evaluate(reading *models.Reading, band models.Checkpoint, names AlertNames) (*models.Alert, bool) {
	if band.Contains(reading.Value) {
		return nil, false
	}

	return &models.Alert{
		ReadingID:      reading.ID,
		FacilityID:     reading.FacilityID,
		FacilityName:   names.FacilityName,
		TargetID:       reading.TargetID,
		TargetName:     names.TargetName,
		CheckpointName: band.Name,
		Value:          reading.Value,
		Min:            band.MinTemp,
		Max:            band.MaxTemp,
		Timestamp:      reading.Timestamp,
		UserID:         reading.UserID,
		UserName:       names.UserName,
	}, true
}

// lookupAlertNames resolves current display names, falling back to
// placeholders for records that no longer exist.
func (h *HACCP) lookupAlertNames(reading *models.Reading) AlertNames {
	logger := coreLogger(common.LoggerCategoryHACCPAlert)

	names := AlertNames{
		FacilityName: UnknownFacilityName,
		UserName:     UnknownUserName,
	}

	if facility, err := h.getFacility(reading.FacilityID); err == nil {
		names.FacilityName = facility.Name
	} else {
		logger.Warn("Facility missing for reading", zap.String("facility_id", reading.FacilityID), zap.Error(err))
	}

	if user, err := h.getUser(reading.UserID); err == nil {
		names.UserName = common.FirstNonEmpty(user.Name, user.Username, UnknownUserName)
	} else {
		logger.Warn("User missing for reading", zap.String("user_id", reading.UserID), zap.Error(err))
	}

	switch reading.TargetType {
	case models.TargetTypeRefrigerator:
		names.TargetName = UnknownRefrigeratorName
		if refrigerator, err := h.getRefrigerator(reading.TargetID); err == nil {
			names.TargetName = refrigerator.Name
		} else {
			logger.Warn("Refrigerator missing for reading", zap.String("target_id", reading.TargetID), zap.Error(err))
		}
	case models.TargetTypeMenu:
		names.TargetName = UnknownMenuName
		if menu, err := h.getMenu(reading.TargetID); err == nil {
			names.TargetName = menu.Name
		} else {
			logger.Warn("Menu missing for reading", zap.String("target_id", reading.TargetID), zap.Error(err))
		}
	}

	return names
}
