package haccp

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

const channelSettingsRowID uint = 1

func (h *HACCP) getChannelSettings() (*models.ChannelSettings, error) {
	var settings models.ChannelSettings
	err := h.Db.Conn.First(&settings, channelSettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ChannelSettings{ID: channelSettingsRowID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// updateChannelSettings overwrites the stored settings with input. Blank
// secrets keep the stored ones so clients never have to echo them back.
func (h *HACCP) updateChannelSettings(input *models.ChannelSettings, actor *models.User) (*models.ChannelSettings, error) {
	current, err := h.getChannelSettings()
	if err != nil {
		return nil, err
	}

	next := *input
	next.ID = channelSettingsRowID
	if next.SMTPPassword == "" {
		next.SMTPPassword = current.SMTPPassword
	}
	if next.TelegramToken == "" {
		next.TelegramToken = current.TelegramToken
	}

	if err := h.Db.Conn.Save(&next).Error; err != nil {
		return nil, err
	}

	_, smtpOK := next.SMTP()
	_, chatOK := next.Chat()
	coreLogger(common.LoggerCategoryHACCPAdmin).Info("Channel settings updated",
		zap.Bool("smtp_configured", smtpOK),
		zap.Bool("chat_configured", chatOK),
	)
	h.audit(models.AuditActionUpdate, AuditEntitySystem, "Alarm-Kanäle aktualisiert", actor)

	return &next, nil
}

// seedChannelSettings stores initial only when no settings row exists yet.
func (h *HACCP) seedChannelSettings(initial models.ChannelSettings) error {
	var count int64
	if err := h.Db.Conn.Model(&models.ChannelSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	initial.ID = channelSettingsRowID
	if err := h.Db.Conn.Create(&initial).Error; err != nil {
		return err
	}
	coreLogger(common.LoggerCategoryHACCPAdmin).Info("Seeded channel settings from environment")
	return nil
}

type ISettingsImpl struct {
	haccp *HACCP
}

func (is *ISettingsImpl) GetChannelSettings() (*models.ChannelSettings, error) {
	return is.haccp.getChannelSettings()
}

func (is *ISettingsImpl) UpdateChannelSettings(input *models.ChannelSettings, actor *models.User) (*models.ChannelSettings, error) {
	return is.haccp.updateChannelSettings(input, actor)
}

func (is *ISettingsImpl) SeedChannelSettings(initial models.ChannelSettings) error {
	return is.haccp.seedChannelSettings(initial)
}

func (h *HACCP) GetISettings() ISettings {
	return &ISettingsImpl{haccp: h}
}
