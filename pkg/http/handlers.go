package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/haccp"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

func restLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameRestfulServer)
}

// respondError maps core errors onto status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, haccp.ErrInvalidReading), errors.Is(err, haccp.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, haccp.ErrAlertNotFound), errors.Is(err, haccp.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		restLogger().Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// actor is the user named by the X-User-ID header. A missing header means the
// system itself, an unknown id is kept with a placeholder name.
func (rs *RestfulServer) actor(c *gin.Context) *models.User {
	userID := c.GetHeader(common.HeaderActorUserID)
	if userID == "" {
		return nil
	}
	user, err := rs.Haccp.Directory.GetUser(userID)
	if err != nil {
		return &models.User{ID: userID, Name: haccp.UnknownUserName}
	}
	return user
}

// privilegedActor is the acting user when it is an active Manager, Admin or
// SuperAdmin. Otherwise it responds 403 and returns false.
func (rs *RestfulServer) privilegedActor(c *gin.Context) (*models.User, bool) {
	actor := rs.actor(c)
	if actor == nil || !actor.IsActive() || !actor.IsPrivileged() {
		c.JSON(http.StatusForbidden, gin.H{"error": "resolving alerts requires a manager or admin"})
		return nil, false
	}
	return actor, true
}

func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}

type PostReadingResponse struct {
	Reading *models.Reading `json:"reading"`
	Alert   *models.Alert   `json:"alert"`
}

func (rs *RestfulServer) PostReading(c *gin.Context) {
	var payload haccp.ReadingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := payload.Reading()
	if err == nil {
		err = haccp.ValidateReading(input)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if !rs.CheckUserLimiter(input.UserID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	reading, alert, err := rs.Haccp.Reading.SubmitReading(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostReadingResponse{Reading: reading, Alert: alert})
}

func (rs *RestfulServer) GetReadings(c *gin.Context) {
	readings, err := rs.Haccp.Reading.ListReadings(c.Query("facility_id"), queryLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	var alerts []models.Alert
	var err error
	if c.Query("unresolved") == "true" {
		alerts, err = rs.Haccp.Alert.UnresolvedAlerts()
		if facilityID := c.Query("facility_id"); err == nil && facilityID != "" {
			alerts = common.Filter(alerts, func(a models.Alert) bool { return a.FacilityID == facilityID })
		}
	} else {
		alerts, err = rs.Haccp.Alert.ListAlerts(c.Query("facility_id"))
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) ResolveAlert(c *gin.Context) {
	actor, ok := rs.privilegedActor(c)
	if !ok {
		return
	}

	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	if err := rs.Haccp.Alert.ResolveAlert(uint(alertID), actor); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resolved": alertID})
}

func (rs *RestfulServer) ResolveAllAlerts(c *gin.Context) {
	actor, ok := rs.privilegedActor(c)
	if !ok {
		return
	}

	count, err := rs.Haccp.Alert.ResolveAllAlerts(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resolved": count})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	userID := c.Param("user_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(userID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetAuditLogs(c *gin.Context) {
	entries, err := rs.Haccp.Audit.ListEntries(queryLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	if err := rs.Haccp.Db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
