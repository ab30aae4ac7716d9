package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

type ChannelSettingsResponse struct {
	models.ChannelSettings
	SMTPPasswordSet  bool `json:"smtpPasswordSet"`
	TelegramTokenSet bool `json:"telegramTokenSet"`
	SMTPConfigured   bool `json:"smtpConfigured"`
	ChatConfigured   bool `json:"chatConfigured"`
}

func newChannelSettingsResponse(settings *models.ChannelSettings) ChannelSettingsResponse {
	_, smtpOK := settings.SMTP()
	_, chatOK := settings.Chat()
	return ChannelSettingsResponse{
		ChannelSettings:  *settings,
		SMTPPasswordSet:  settings.SMTPPassword != "",
		TelegramTokenSet: settings.TelegramToken != "",
		SMTPConfigured:   smtpOK,
		ChatConfigured:   chatOK,
	}
}

// ChannelSettingsRequest carries the secrets that models.ChannelSettings
// never serializes. Empty secrets keep the stored values.
type ChannelSettingsRequest struct {
	SMTPHost       string `json:"smtpHost"`
	SMTPPort       int    `json:"smtpPort"`
	SMTPUser       string `json:"smtpUser"`
	SMTPPassword   string `json:"smtpPassword"`
	SMTPFrom       string `json:"smtpFrom"`
	TelegramToken  string `json:"telegramToken"`
	TelegramChatID string `json:"telegramChatId"`
}

func (rs *RestfulServer) GetChannelSettings(c *gin.Context) {
	settings, err := rs.Haccp.Settings.GetChannelSettings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newChannelSettingsResponse(settings))
}

func (rs *RestfulServer) PostChannelSettings(c *gin.Context) {
	var req ChannelSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := rs.Haccp.Settings.UpdateChannelSettings(&models.ChannelSettings{
		SMTPHost:       req.SMTPHost,
		SMTPPort:       req.SMTPPort,
		SMTPUser:       req.SMTPUser,
		SMTPPassword:   req.SMTPPassword,
		SMTPFrom:       req.SMTPFrom,
		TelegramToken:  req.TelegramToken,
		TelegramChatID: req.TelegramChatID,
	}, rs.actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newChannelSettingsResponse(settings))
}

type TestTelegramRequest struct {
	Token string `json:"token"`
}

type TestTelegramResponse struct {
	Success bool   `json:"success"`
	BotName string `json:"botName,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TestTelegram verifies the given bot token, or the stored one when the body
// carries none.
func (rs *RestfulServer) TestTelegram(c *gin.Context) {
	var req TestTelegramRequest
	_ = c.ShouldBindJSON(&req)

	token := req.Token
	if token == "" {
		settings, err := rs.Haccp.Settings.GetChannelSettings()
		if err != nil {
			respondError(c, err)
			return
		}
		token = settings.TelegramToken
	}
	if token == "" {
		c.JSON(http.StatusBadRequest, TestTelegramResponse{Error: "telegram bot token is required"})
		return
	}
	if rs.Messenger == nil {
		c.JSON(http.StatusServiceUnavailable, TestTelegramResponse{Error: "chat client not available"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), rs.channelTimeout())
	defer cancel()

	info, err := rs.Messenger.VerifyBot(ctx, token)
	if err != nil {
		restLogger().Info("Telegram bot verification failed", zap.Error(err))
		c.JSON(http.StatusOK, TestTelegramResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TestTelegramResponse{Success: true, BotName: info.Name})
}

type TestEmailRequest struct {
	To string `json:"to"`
}

var testEmailRequestSchema = z.Struct(z.Shape{
	"to": z.String().Required().Email(),
})

func (rs *RestfulServer) TestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := testEmailRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	settings, err := rs.Haccp.Settings.GetChannelSettings()
	if err != nil {
		respondError(c, err)
		return
	}
	smtp, ok := settings.SMTP()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "smtp not configured"})
		return
	}
	if rs.Mailer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "mail client not available"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), rs.channelTimeout())
	defer cancel()

	err = rs.Mailer.SendMail(ctx, smtp, []string{req.To}, "HACCP Test-E-Mail", "Die E-Mail-Konfiguration für HACCP-Alarme funktioniert.")
	if err != nil {
		restLogger().Info("Test email failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
