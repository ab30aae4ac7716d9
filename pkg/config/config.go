package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/time/rate"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

const (
	DBTypeFile   = "file"
	DBTypeMemory = "memory"
	DBTypeMysql  = "mysql"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	DBType string
	DBPath string
	DBDSN  string

	HttpHostPort string
	GrpcHostPort string

	DefaultRate  rate.Limit
	DefaultBurst int

	NotifyTimeout time.Duration

	SMTP models.SMTPConfig
	Chat models.ChatConfig

	MqttBroker   string
	MqttTopic    string
	MqttClientID string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(common.EnvKeyHACCPDBType, DBTypeFile)
	v.SetDefault(common.EnvKeyHACCPDbPath, "haccp.db")
	v.SetDefault(common.EnvKeyHACCPDbDSN, "")

	v.SetDefault(common.EnvKeyHACCPHttpHostPort, "localhost:8080")
	v.SetDefault(common.EnvKeyHACCPGrpcHostPort, "")

	v.SetDefault(common.EnvKeyHACCPDefaultRate, 1.0)
	v.SetDefault(common.EnvKeyHACCPDefaultBurst, 5)

	v.SetDefault(common.EnvKeyHACCPNotifyTimeout, "10s")

	v.SetDefault(common.EnvKeyHACCPSmtpHost, "")
	v.SetDefault(common.EnvKeyHACCPSmtpPort, 587)
	v.SetDefault(common.EnvKeyHACCPSmtpUser, "")
	v.SetDefault(common.EnvKeyHACCPSmtpPassword, "")
	v.SetDefault(common.EnvKeyHACCPSmtpFrom, "")

	v.SetDefault(common.EnvKeyHACCPTelegramToken, "")
	v.SetDefault(common.EnvKeyHACCPTelegramChatID, "")

	v.SetDefault(common.EnvKeyHACCPMqttBroker, "")
	v.SetDefault(common.EnvKeyHACCPMqttTopic, "haccp/readings")
	v.SetDefault(common.EnvKeyHACCPMqttClientID, "haccp-alert-service")
}

// Load reads the process environment (after any .env has been loaded into it)
// into a Config.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DBType: v.GetString(common.EnvKeyHACCPDBType),
		DBPath: v.GetString(common.EnvKeyHACCPDbPath),
		DBDSN:  v.GetString(common.EnvKeyHACCPDbDSN),

		HttpHostPort: v.GetString(common.EnvKeyHACCPHttpHostPort),
		GrpcHostPort: v.GetString(common.EnvKeyHACCPGrpcHostPort),

		DefaultRate:  rate.Limit(v.GetFloat64(common.EnvKeyHACCPDefaultRate)),
		DefaultBurst: v.GetInt(common.EnvKeyHACCPDefaultBurst),

		NotifyTimeout: v.GetDuration(common.EnvKeyHACCPNotifyTimeout),

		SMTP: models.SMTPConfig{
			Host:     v.GetString(common.EnvKeyHACCPSmtpHost),
			Port:     v.GetInt(common.EnvKeyHACCPSmtpPort),
			User:     v.GetString(common.EnvKeyHACCPSmtpUser),
			Password: v.GetString(common.EnvKeyHACCPSmtpPassword),
			From:     v.GetString(common.EnvKeyHACCPSmtpFrom),
		},
		Chat: models.ChatConfig{
			BotToken: v.GetString(common.EnvKeyHACCPTelegramToken),
			ChatID:   v.GetString(common.EnvKeyHACCPTelegramChatID),
		},

		MqttBroker:   v.GetString(common.EnvKeyHACCPMqttBroker),
		MqttTopic:    v.GetString(common.EnvKeyHACCPMqttTopic),
		MqttClientID: v.GetString(common.EnvKeyHACCPMqttClientID),
	}

	switch cfg.DBType {
	case DBTypeFile, DBTypeMemory:
	case DBTypeMysql:
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("%w: %s is required for mysql", ErrInvalidConfig, common.EnvKeyHACCPDbDSN)
		}
	default:
		return nil, fmt.Errorf("%w: unknown %s %q", ErrInvalidConfig, common.EnvKeyHACCPDBType, cfg.DBType)
	}

	if cfg.NotifyTimeout <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, common.EnvKeyHACCPNotifyTimeout)
	}
	if cfg.DefaultBurst <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, common.EnvKeyHACCPDefaultBurst)
	}

	return cfg, nil
}

// ChannelSettings is the initial channel row seeded from the environment.
func (c *Config) ChannelSettings() models.ChannelSettings {
	return models.ChannelSettings{
		SMTPHost:       c.SMTP.Host,
		SMTPPort:       c.SMTP.Port,
		SMTPUser:       c.SMTP.User,
		SMTPPassword:   c.SMTP.Password,
		SMTPFrom:       c.SMTP.From,
		TelegramToken:  c.Chat.BotToken,
		TelegramChatID: c.Chat.ChatID,
	}
}
