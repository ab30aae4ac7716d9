package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/haccp-alert-service/pkg/haccp/mocks"
	_ "liyu1981.xyz/haccp-alert-service/pkg/testing"

	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/db"
	"liyu1981.xyz/haccp-alert-service/pkg/haccp"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

func setupTestServer(t *testing.T) *RestfulServer {
	return setupTestServerWithLimiter(t, nil)
}

func setupTestServerWithLimiter(t *testing.T, limiter *haccp.RateLimiterStore) *RestfulServer {
	gin.SetMode(gin.TestMode)

	dbInstance, err := db.Open(db.UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbInstance.Close() })

	haccpObj := haccp.New(dbInstance)
	require.NoError(t, haccpObj.Catalog.SeedDefaults())

	rs := &RestfulServer{
		Server: gin.New(),
		Haccp:  haccpObj,
		// default we use no limiter, if need, pass one in
		RateLimiterStore: limiter,
		ChannelTimeout:   time.Second,
	}

	rs.Setup()

	return rs
}

func seedKitchen(t *testing.T, rs *RestfulServer) {
	conn := rs.Haccp.Db.Conn
	require.NoError(t, conn.Create(&models.Facility{ID: "F1", Name: "Kantine Nord", CookingMethodID: "CM1"}).Error)
	require.NoError(t, conn.Create(&models.Refrigerator{ID: "K1", Name: "Kühlschrank Küche", FacilityID: "F1", TypeID: "RT1"}).Error)
	require.NoError(t, conn.Create(&models.User{
		ID: "U1", Name: "Anna Koch", Username: "anna", Role: models.RoleUser, Status: models.UserStatusActive, FacilityID: "F1",
	}).Error)
	require.NoError(t, conn.Create(&models.User{
		ID: "S1", Name: "Sabine Leitung", Username: "sabine", Email: "sabine@kantine.de", Role: models.RoleManager,
		Status: models.UserStatusActive, FacilityID: "F1", EmailAlerts: true, TelegramAlerts: true,
	}).Error)
}

func doJSON(rs *RestfulServer, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func readingBody(value float64) map[string]any {
	return map[string]any{
		"targetId":       "K1",
		"targetType":     "refrigerator",
		"checkpointName": "Luft",
		"value":          value,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"userId":         "U1",
		"facilityId":     "F1",
	}
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer(t)

	w := doJSON(rs, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPostReading_CompliantAndZeroValue(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	seedKitchen(t, rs)

	for _, v := range []float64{4, 0} {
		w := doJSON(rs, http.MethodPost, "/readings", readingBody(v))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(rs, http.MethodGet, "/readings?facility_id=F1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var readings []models.Reading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &readings))
	assert.Len(t, readings, 2)

	// 0 °C is below the fridge band and must alert
	w = doJSON(rs, http.MethodGet, "/alerts", nil)
	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, 0.0, alerts[0].Value)
}

func TestPostReading_ViolationSucceedsWhenEmailFails(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rs := setupTestServer(t)
	seedKitchen(t, rs)

	_, err := rs.Haccp.Settings.UpdateChannelSettings(&models.ChannelSettings{
		SMTPHost: "smtp.kantine.de", SMTPPort: 587, SMTPUser: "alarm@kantine.de", SMTPPassword: "pw",
		TelegramToken: "123:abc", TelegramChatID: "-1001",
	}, nil)
	require.NoError(t, err)

	mailer := mocks.NewMockMailer(ctrl)
	messenger := mocks.NewMockMessenger(ctrl)
	mailer.EXPECT().SendMail(gomock.Any(), gomock.Any(), []string{"sabine@kantine.de"}, gomock.Any(), gomock.Any()).
		Return(errors.New("dial tcp: connection refused")).Times(1)
	messenger.EXPECT().SendMessage(gomock.Any(), "123:abc", "-1001", gomock.Any()).Return(nil).Times(1)

	dispatcher := haccp.NewDispatcher(mailer, messenger, rs.Haccp.Settings, time.Second)
	rs.Haccp.WithServices(haccp.ServiceOpts{Notifier: dispatcher})

	body := readingBody(9.5)
	body["reason"] = "Tür stand offen"
	w := doJSON(rs, http.MethodPost, "/readings", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	dispatcher.Wait()

	var resp PostReadingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Alert)
	assert.Equal(t, 9.5, resp.Alert.Value)
	assert.Equal(t, 2.0, resp.Alert.Min)
	assert.Equal(t, 7.0, resp.Alert.Max)
	assert.Equal(t, resp.Reading.ID, resp.Alert.ReadingID)

	w = doJSON(rs, http.MethodGet, "/alerts?unresolved=true&facility_id=F1", nil)
	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	assert.Len(t, alerts, 1)
}

func TestPostReading_Invalid(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	seedKitchen(t, rs)

	missingValue := readingBody(1)
	delete(missingValue, "value")

	badType := readingBody(1)
	badType["targetType"] = "oven"

	missingUser := readingBody(1)
	missingUser["userId"] = ""

	for _, body := range []any{"{}", "not json", missingValue, badType, missingUser} {
		w := doJSON(rs, http.MethodPost, "/readings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
	}

	var count int64
	require.NoError(t, rs.Haccp.Db.Conn.Model(&models.Reading{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPostReading_StoreError(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rs := setupTestServer(t)
	mockIReading := mocks.NewMockIReading(ctrl)
	rs.Haccp.Reading = mockIReading
	mockIReading.EXPECT().SubmitReading(gomock.Any()).Return(nil, nil, fmt.Errorf("just causing error")).Times(1)

	w := doJSON(rs, http.MethodPost, "/readings", readingBody(5))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPostReadingWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, haccp.NewRateLimiterStore(0.001, 2))
	seedKitchen(t, rs)

	// 3 requests in quick succession, only 2 allowed
	for i := range 3 {
		w := doJSON(rs, http.MethodPost, "/readings", readingBody(5))
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	w := doJSON(rs, http.MethodPost, "/users/U1/limiter", LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")

	w = doJSON(rs, http.MethodPost, "/readings", readingBody(5))
	require.Equal(t, http.StatusOK, w.Code, "request after limiter reset should be allowed")

	// other recorders have their own bucket
	other := readingBody(5)
	other["userId"] = "S1"
	w = doJSON(rs, http.MethodPost, "/readings", other)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPostReadingWithLimiter_InvalidDoesNotSpendTokens(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, haccp.NewRateLimiterStore(0.001, 1))
	seedKitchen(t, rs)

	noUser := readingBody(5)
	delete(noUser, "userId")

	badType := readingBody(5)
	badType["targetType"] = "oven"

	for range 3 {
		assert.Equal(t, http.StatusBadRequest, doJSON(rs, http.MethodPost, "/readings", noUser).Code)
		assert.Equal(t, http.StatusBadRequest, doJSON(rs, http.MethodPost, "/readings", badType).Code)
	}

	w := doJSON(rs, http.MethodPost, "/readings", readingBody(5))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/readings", readingBody(5))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	// empty payload should be rejected
	w := doJSON(rs, http.MethodPost, "/users/U1/limiter", "{}")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// without limiter store setting a limiter is accepted but has no effect
	w = doJSON(rs, http.MethodPost, "/users/U1/limiter", LimiterRequest{Rate: 2, Burst: 2})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	seedKitchen(t, rs)

	for _, v := range []float64{9, 10} {
		require.Equal(t, http.StatusOK, doJSON(rs, http.MethodPost, "/readings", readingBody(v)).Code)
	}

	unresolved, err := rs.Haccp.Alert.UnresolvedAlerts()
	require.NoError(t, err)
	require.Len(t, unresolved, 2)

	asManager := []string{common.HeaderActorUserID, "S1"}

	assert.Equal(t, http.StatusBadRequest, doJSON(rs, http.MethodPost, "/alerts/abc/resolve", nil, asManager...).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(rs, http.MethodPost, "/alerts/999/resolve", nil, asManager...).Code)

	path := fmt.Sprintf("/alerts/%d/resolve", unresolved[0].ID)
	for range 2 {
		w := doJSON(rs, http.MethodPost, path, nil, asManager...)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(rs, http.MethodPost, "/alerts/resolve-all", nil, asManager...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"resolved":1}`, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/alerts/resolve-all", nil, asManager...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"resolved":0}`, w.Body.String())

	w = doJSON(rs, http.MethodGet, "/audit-logs?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.AuditEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 4)
	assert.Equal(t, "Sabine Leitung", entries[0].UserName)
	assert.Equal(t, "S1", entries[0].UserID)
	assert.Equal(t, "Alle Alarme als erledigt markiert", entries[0].Details)
	assert.JSONEq(t, `{"count":0}`, string(entries[0].Metadata))
}

func TestResolveAlerts_RequiresPrivilegedActor(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	seedKitchen(t, rs)
	require.NoError(t, rs.Haccp.Db.Conn.Create(&models.User{
		ID: "A2", Name: "Ex Admin", Username: "exadmin", Role: models.RoleAdmin, Status: models.UserStatusInactive,
	}).Error)

	require.Equal(t, http.StatusOK, doJSON(rs, http.MethodPost, "/readings", readingBody(9)).Code)
	unresolved, err := rs.Haccp.Alert.UnresolvedAlerts()
	require.NoError(t, err)
	require.Len(t, unresolved, 1)
	path := fmt.Sprintf("/alerts/%d/resolve", unresolved[0].ID)

	// no header, plain user, unknown id, inactive admin
	callers := [][]string{
		nil,
		{common.HeaderActorUserID, "U1"},
		{common.HeaderActorUserID, "ghost"},
		{common.HeaderActorUserID, "A2"},
	}
	for _, headers := range callers {
		assert.Equal(t, http.StatusForbidden, doJSON(rs, http.MethodPost, path, nil, headers...).Code, "headers %v", headers)
		assert.Equal(t, http.StatusForbidden, doJSON(rs, http.MethodPost, "/alerts/resolve-all", nil, headers...).Code, "headers %v", headers)
	}

	unresolved, err = rs.Haccp.Alert.UnresolvedAlerts()
	require.NoError(t, err)
	assert.Len(t, unresolved, 1)

	entries, err := rs.Haccp.Audit.ListEntries(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetAlerts_Error(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rs := setupTestServer(t)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	rs.Haccp.Alert = mockIAlert
	mockIAlert.EXPECT().ListAlerts(gomock.Eq("F1")).Return(nil, fmt.Errorf("just causing error")).Times(1)

	w := doJSON(rs, http.MethodGet, "/alerts?facility_id=F1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdminCRUD(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	w := doJSON(rs, http.MethodPost, "/facilities", models.Facility{ID: "F9", Name: "Mensa"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/refrigerators", models.Refrigerator{ID: "K9", Name: "Getränke", FacilityID: "F9", TypeID: "RT1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/menus", models.Menu{ID: "M9", Name: "Suppe", CookingMethodID: "CM1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/users", models.User{ID: "U9", Name: "Tom", Username: "tom", Role: models.RoleAdmin})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/users", models.User{ID: "U10", Name: "Eve", Username: "eve", Role: "Chef"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, http.MethodPost, "/catalog/cooking-methods", models.CookingMethod{
		ID: "CM2", Name: "Heißhalten", Checkpoints: []models.Checkpoint{{Name: "Kern", MinTemp: 65, MaxTemp: 90}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/catalog/refrigerator-types", models.RefrigeratorType{
		ID: "RT9", Name: "Kaputt", Checkpoints: []models.Checkpoint{{Name: "Luft", MinTemp: 9, MaxTemp: 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	lists := map[string]int{
		"/facilities":                  1,
		"/refrigerators?facility_id=F9": 1,
		"/menus":                       1,
		"/users":                       1,
		"/catalog/refrigerator-types":  2,
		"/catalog/cooking-methods":     2,
	}
	for path, want := range lists {
		w := doJSON(rs, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		var items []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Len(t, items, want, path)
	}
}

func TestChannelSettings(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	w := doJSON(rs, http.MethodPost, "/settings/channels", ChannelSettingsRequest{
		SMTPHost: "smtp.kantine.de", SMTPPort: 465, SMTPUser: "alarm@kantine.de", SMTPPassword: "geheim",
		TelegramToken: "123:abc", TelegramChatID: "-1001",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "geheim")
	assert.NotContains(t, w.Body.String(), "123:abc")

	w = doJSON(rs, http.MethodGet, "/settings/channels", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "smtp.kantine.de", resp["smtpHost"])
	assert.Equal(t, true, resp["smtpPasswordSet"])
	assert.Equal(t, true, resp["smtpConfigured"])
	assert.Equal(t, true, resp["chatConfigured"])
	assert.NotContains(t, w.Body.String(), "geheim")
}

func TestTestTelegram(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rs := setupTestServer(t)
	messenger := mocks.NewMockMessenger(ctrl)
	rs.Messenger = messenger

	messenger.EXPECT().VerifyBot(gomock.Any(), "123:abc").
		DoAndReturn(func(ctx context.Context, _ string) (*models.BotInfo, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return &models.BotInfo{OK: true, Name: "HACCP Alarm"}, nil
		})
	messenger.EXPECT().VerifyBot(gomock.Any(), "bad").Return(nil, errors.New("telegram API error: 401 Unauthorized"))

	w := doJSON(rs, http.MethodPost, "/settings/test-telegram", TestTelegramRequest{Token: "123:abc"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"botName":"HACCP Alarm"}`, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/settings/test-telegram", TestTelegramRequest{Token: "bad"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp TestTelegramResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)

	// no token given and none stored
	w = doJSON(rs, http.MethodPost, "/settings/test-telegram", "{}")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTestEmail(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rs := setupTestServer(t)
	mailer := mocks.NewMockMailer(ctrl)
	rs.Mailer = mailer

	w := doJSON(rs, http.MethodPost, "/settings/test-email", TestEmailRequest{To: "chef@kantine.de"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "smtp not configured yet")

	_, err := rs.Haccp.Settings.UpdateChannelSettings(&models.ChannelSettings{
		SMTPHost: "smtp.kantine.de", SMTPPort: 587, SMTPUser: "alarm@kantine.de", SMTPPassword: "pw",
	}, nil)
	require.NoError(t, err)

	mailer.EXPECT().SendMail(gomock.Any(), gomock.Any(), []string{"chef@kantine.de"}, gomock.Any(), gomock.Any()).Return(nil)

	w = doJSON(rs, http.MethodPost, "/settings/test-email", TestEmailRequest{To: "chef@kantine.de"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/settings/test-email", TestEmailRequest{To: "kein-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
