package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/haccp-alert-service/pkg/haccp"
)

type RestfulServer struct {
	Server           *gin.Engine
	Haccp            *haccp.HACCP
	RateLimiterStore *haccp.RateLimiterStore
	Mailer           haccp.Mailer
	Messenger        haccp.Messenger
	ChannelTimeout   time.Duration
}

func (rs *RestfulServer) GetLimiter(userID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(userID)
	}
}

func (rs *RestfulServer) CheckUserLimiter(userID string) bool {
	limiter := rs.GetLimiter(userID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(userID string, userRate float64, userBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(userID, rate.Limit(userRate), userBurst)
}

func (rs *RestfulServer) channelTimeout() time.Duration {
	if rs.ChannelTimeout <= 0 {
		return haccp.DefaultNotifyTimeout
	}
	return rs.ChannelTimeout
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	readings := rs.Server.Group("/readings")
	{
		readings.POST("", rs.PostReading)
		readings.GET("", rs.GetReadings)
	}

	alerts := rs.Server.Group("/alerts")
	{
		alerts.GET("", rs.GetAlerts)
		alerts.POST("/resolve-all", rs.ResolveAllAlerts)
		alerts.POST("/:alert_id/resolve", rs.ResolveAlert)
	}

	users := rs.Server.Group("/users")
	{
		users.GET("", rs.GetUsers)
		users.POST("", rs.PostUser)
		users.POST("/:user_id/limiter", rs.PostLimiter)
	}

	rs.Server.GET("/facilities", rs.GetFacilities)
	rs.Server.POST("/facilities", rs.PostFacility)
	rs.Server.GET("/refrigerators", rs.GetRefrigerators)
	rs.Server.POST("/refrigerators", rs.PostRefrigerator)
	rs.Server.GET("/menus", rs.GetMenus)
	rs.Server.POST("/menus", rs.PostMenu)

	catalog := rs.Server.Group("/catalog")
	{
		catalog.GET("/refrigerator-types", rs.GetRefrigeratorTypes)
		catalog.POST("/refrigerator-types", rs.PostRefrigeratorType)
		catalog.GET("/cooking-methods", rs.GetCookingMethods)
		catalog.POST("/cooking-methods", rs.PostCookingMethod)
	}

	settings := rs.Server.Group("/settings")
	{
		settings.GET("/channels", rs.GetChannelSettings)
		settings.POST("/channels", rs.PostChannelSettings)
		settings.POST("/test-telegram", rs.TestTelegram)
		settings.POST("/test-email", rs.TestEmail)
	}

	rs.Server.GET("/audit-logs", rs.GetAuditLogs)
}
