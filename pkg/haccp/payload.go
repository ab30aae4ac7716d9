package haccp

import (
	"fmt"
	"time"

	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

// ReadingPayload is the wire shape of a submitted reading, shared by the REST
// and MQTT transports. Value is a pointer so that 0 °C is told apart from a
// missing value.
type ReadingPayload struct {
	ID             string     `json:"id"`
	TargetID       string     `json:"targetId"`
	TargetType     string     `json:"targetType"`
	CheckpointName string     `json:"checkpointName"`
	Value          *float64   `json:"value"`
	Timestamp      *time.Time `json:"timestamp"`
	UserID         string     `json:"userId"`
	FacilityID     string     `json:"facilityId"`
	Reason         string     `json:"reason"`
}

func (p ReadingPayload) Reading() (*models.Reading, error) {
	if p.Value == nil {
		return nil, fmt.Errorf("%w: value is required", ErrInvalidReading)
	}

	reading := &models.Reading{
		ID:             p.ID,
		TargetID:       p.TargetID,
		TargetType:     models.TargetType(p.TargetType),
		CheckpointName: p.CheckpointName,
		Value:          *p.Value,
		UserID:         p.UserID,
		FacilityID:     p.FacilityID,
		Reason:         p.Reason,
	}
	if p.Timestamp != nil {
		reading.Timestamp = *p.Timestamp
	}
	return reading, nil
}
