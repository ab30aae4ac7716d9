package haccp

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/haccp-alert-service/pkg/db"
	"liyu1981.xyz/haccp-alert-service/pkg/haccp/mocks"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

type testMocks struct {
	Alert    *mocks.MockIAlert
	Audit    *mocks.MockIAudit
	Notifier *mocks.MockINotifier
}

// GetMockHACCPWithMemorySqliteDialector builds a HACCP on its own in-memory
// database. Services flagged true are replaced by mocks.
func GetMockHACCPWithMemorySqliteDialector(t *testing.T, useMockIAlert, useMockIAudit, useMockINotifier bool) (
	*gomock.Controller,
	*HACCP,
	testMocks,
) {
	ctrl := gomock.NewController(t)

	m := testMocks{
		Alert:    mocks.NewMockIAlert(ctrl),
		Audit:    mocks.NewMockIAudit(ctrl),
		Notifier: mocks.NewMockINotifier(ctrl),
	}

	dbInstance, err := db.Open(db.UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbInstance.Close() })

	haccpObj := New(dbInstance)

	opts := ServiceOpts{}
	if useMockIAlert {
		opts.Alert = m.Alert
	}
	if useMockIAudit {
		opts.Audit = m.Audit
	}
	if useMockINotifier {
		opts.Notifier = m.Notifier
	}
	haccpObj.WithServices(opts)

	return ctrl, haccpObj, m
}

// seedKitchen creates facility F1 with one fridge (RT1), one menu without its
// own cooking method, and a recorder.
func seedKitchen(t *testing.T, h *HACCP) {
	require.NoError(t, h.Catalog.SeedDefaults())

	conn := h.Db.Conn
	require.NoError(t, conn.Create(&models.Facility{ID: "F1", Name: "Kantine Nord", CookingMethodID: "CM1"}).Error)
	require.NoError(t, conn.Create(&models.Refrigerator{ID: "K1", Name: "Kühlschrank Küche", FacilityID: "F1", TypeID: "RT1"}).Error)
	require.NoError(t, conn.Create(&models.Menu{ID: "M1", Name: "Gulasch"}).Error)
	require.NoError(t, conn.Create(&models.User{
		ID: "U1", Name: "Anna Koch", Username: "anna", Role: models.RoleUser, Status: models.UserStatusActive, FacilityID: "F1",
	}).Error)
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func logMessages(r io.Reader) []string {
	var msgs []string
	for _, l := range ParseLogs(r) {
		if entry, ok := l.(map[string]any); ok {
			if msg, ok := entry["msg"].(string); ok {
				msgs = append(msgs, msg)
			}
		}
	}
	return msgs
}
