package haccp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
	_ "liyu1981.xyz/haccp-alert-service/pkg/testing"
)

func TestEvaluate(t *testing.T) {
	fridge := models.Checkpoint{Name: "Luft", MinTemp: 2, MaxTemp: 7}
	freezer := models.Checkpoint{Name: "Luft", MinTemp: -22, MaxTemp: -18}

	tests := []struct {
		name     string
		band     models.Checkpoint
		value    float64
		violated bool
	}{
		{"inside", fridge, 4.5, false},
		{"at min", fridge, 2, false},
		{"at max", fridge, 7, false},
		{"below min", fridge, 1.9, true},
		{"above max", fridge, 9.5, true},
		{"freezer at lower boundary", freezer, -22, false},
		{"freezer too warm", freezer, -17.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading := &models.Reading{ID: "R1", Value: tt.value, Timestamp: time.Now()}
			alert, violated := Evaluate(reading, tt.band, AlertNames{})
			assert.Equal(t, tt.violated, violated)
			if !tt.violated {
				assert.Nil(t, alert)
				return
			}
			require.NotNil(t, alert)
			assert.Equal(t, tt.value, alert.Value)
			assert.Equal(t, tt.band.MinTemp, alert.Min)
			assert.Equal(t, tt.band.MaxTemp, alert.Max)
		})
	}
}

func TestEvaluate_CopiesReadingAndNames(t *testing.T) {
	ts := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	reading := &models.Reading{
		ID:             "R-42",
		TargetID:       "K1",
		TargetType:     models.TargetTypeRefrigerator,
		CheckpointName: "luft",
		Value:          9.5,
		Timestamp:      ts,
		UserID:         "U1",
		FacilityID:     "F1",
		Reason:         "Tür stand offen",
	}
	names := AlertNames{FacilityName: "Kantine Nord", TargetName: "Kühlschrank Küche", UserName: "Anna Koch"}

	alert, violated := Evaluate(reading, models.Checkpoint{Name: "Luft", MinTemp: 2, MaxTemp: 7}, names)
	require.True(t, violated)

	assert.Equal(t, &models.Alert{
		ReadingID:      "R-42",
		FacilityID:     "F1",
		FacilityName:   "Kantine Nord",
		TargetID:       "K1",
		TargetName:     "Kühlschrank Küche",
		CheckpointName: "Luft",
		Value:          9.5,
		Min:            2,
		Max:            7,
		Timestamp:      ts,
		UserID:         "U1",
		UserName:       "Anna Koch",
	}, alert)
}

func TestLookupAlertNames(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, haccpObj, _ := GetMockHACCPWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	seedKitchen(t, haccpObj)

	names := haccpObj.lookupAlertNames(&models.Reading{
		TargetID: "K1", TargetType: models.TargetTypeRefrigerator, UserID: "U1", FacilityID: "F1",
	})
	assert.Equal(t, AlertNames{FacilityName: "Kantine Nord", TargetName: "Kühlschrank Küche", UserName: "Anna Koch"}, names)

	names = haccpObj.lookupAlertNames(&models.Reading{
		TargetID: "gone", TargetType: models.TargetTypeRefrigerator, UserID: "gone", FacilityID: "gone",
	})
	assert.Equal(t, AlertNames{FacilityName: UnknownFacilityName, TargetName: UnknownRefrigeratorName, UserName: UnknownUserName}, names)

	names = haccpObj.lookupAlertNames(&models.Reading{TargetID: "gone", TargetType: models.TargetTypeMenu, UserID: "U1", FacilityID: "F1"})
	assert.Equal(t, UnknownMenuName, names.TargetName)
}

func TestAlertNames_SurviveRenames(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, haccpObj, _ := GetMockHACCPWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	seedKitchen(t, haccpObj)

	_, alert, err := haccpObj.Reading.SubmitReading(fridgeReading(9.5))
	require.NoError(t, err)
	require.NotNil(t, alert)

	require.NoError(t, haccpObj.Directory.UpsertFacility(&models.Facility{ID: "F1", Name: "Kantine Süd", CookingMethodID: "CM1"}, nil))
	require.NoError(t, haccpObj.Directory.UpsertRefrigerator(&models.Refrigerator{ID: "K1", Name: "Getränkekühlschrank", FacilityID: "F1", TypeID: "RT1"}, nil))
	require.NoError(t, haccpObj.Directory.UpsertUser(&models.User{ID: "U1", Name: "Anna Bäcker", Username: "anna"}, nil))

	alerts, err := haccpObj.Alert.ListAlerts("F1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Kantine Nord", alerts[0].FacilityName)
	assert.Equal(t, "Kühlschrank Küche", alerts[0].TargetName)
	assert.Equal(t, "Anna Koch", alerts[0].UserName)

	// new alerts pick up the new names
	_, alert, err = haccpObj.Reading.SubmitReading(fridgeReading(10))
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, "Kantine Süd", alert.FacilityName)
	assert.Equal(t, "Getränkekühlschrank", alert.TargetName)
	assert.Equal(t, "Anna Bäcker", alert.UserName)
}
