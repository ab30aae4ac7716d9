package haccp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
	_ "liyu1981.xyz/haccp-alert-service/pkg/testing"
)

func TestChannelSettings_EmptyByDefault(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, haccpObj, _ := GetMockHACCPWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	settings, err := haccpObj.Settings.GetChannelSettings()
	require.NoError(t, err)

	_, ok := settings.SMTP()
	assert.False(t, ok)
	_, ok = settings.Chat()
	assert.False(t, ok)
}

func TestChannelSettings_SeedOnce(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, haccpObj, _ := GetMockHACCPWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	require.NoError(t, haccpObj.Settings.SeedChannelSettings(models.ChannelSettings{SMTPHost: "smtp.a.de", SMTPPort: 587}))
	require.NoError(t, haccpObj.Settings.SeedChannelSettings(models.ChannelSettings{SMTPHost: "smtp.b.de", SMTPPort: 587}))

	settings, err := haccpObj.Settings.GetChannelSettings()
	require.NoError(t, err)
	assert.Equal(t, "smtp.a.de", settings.SMTPHost)
}

func TestChannelSettings_UpdateKeepsSecrets(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, haccpObj, _ := GetMockHACCPWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := haccpObj.Settings.UpdateChannelSettings(&models.ChannelSettings{
		SMTPHost: "smtp.kantine.de", SMTPPort: 465, SMTPUser: "alarm@kantine.de", SMTPPassword: "pw1",
		TelegramToken: "123:abc", TelegramChatID: "-1001",
	}, nil)
	require.NoError(t, err)

	updated, err := haccpObj.Settings.UpdateChannelSettings(&models.ChannelSettings{
		SMTPHost: "smtp.kantine.de", SMTPPort: 587, SMTPUser: "alarm@kantine.de", SMTPFrom: "HACCP <alarm@kantine.de>",
		TelegramChatID: "-1002",
	}, &models.User{ID: "admin", Name: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, "pw1", updated.SMTPPassword)

	settings, err := haccpObj.Settings.GetChannelSettings()
	require.NoError(t, err)

	smtp, ok := settings.SMTP()
	require.True(t, ok)
	assert.Equal(t, "pw1", smtp.Password)
	assert.False(t, smtp.Secure())
	assert.Equal(t, "HACCP <alarm@kantine.de>", smtp.Sender())

	chat, ok := settings.Chat()
	require.True(t, ok)
	assert.Equal(t, models.ChatConfig{BotToken: "123:abc", ChatID: "-1002"}, chat)

	entries, err := haccpObj.Audit.ListEntries(10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
