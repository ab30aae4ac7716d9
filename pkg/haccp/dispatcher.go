package haccp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

const DefaultNotifyTimeout = 10 * time.Second

// Dispatcher fans alerts out over email and chat. Every channel is best
// effort: failures are logged and never reach the caller.
type Dispatcher struct {
	mailer    Mailer
	messenger Messenger
	settings  ISettings
	timeout   time.Duration

	inflight sync.WaitGroup
}

func NewDispatcher(mailer Mailer, messenger Messenger, settings ISettings, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	return &Dispatcher{
		mailer:    mailer,
		messenger: messenger,
		settings:  settings,
		timeout:   timeout,
	}
}

func dispatchLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameNotifier,
		zap.String(common.LoggerFieldHACCPCategory, common.LoggerCategoryHACCPDispatch),
	)
}

// Notify loads the current channel settings and dispatches in the background.
func (d *Dispatcher) Notify(alert *models.Alert, reading *models.Reading, recipients models.Recipients) {
	logger := dispatchLogger()

	if d.settings == nil {
		logger.Debug("No channel settings source, skip dispatch")
		return
	}
	settings, err := d.settings.GetChannelSettings()
	if err != nil {
		logger.Error("Failed to load channel settings", zap.Error(err))
		return
	}

	var smtp *models.SMTPConfig
	if cfg, ok := settings.SMTP(); ok {
		smtp = &cfg
	}
	var chat *models.ChatConfig
	if cfg, ok := settings.Chat(); ok {
		chat = &cfg
	}

	alertCopy := *alert
	readingCopy := *reading

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.Dispatch(context.Background(), &alertCopy, &readingCopy, recipients, smtp, chat)
	}()
}

// Wait blocks until every dispatch started by Notify has finished.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

// Dispatch sends one email to all targets and one chat message, concurrently.
// A nil config means the channel is not configured and is skipped.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	alert *models.Alert,
	reading *models.Reading,
	recipients models.Recipients,
	smtp *models.SMTPConfig,
	chat *models.ChatConfig,
) {
	logger := dispatchLogger().With(zap.Uint("alert_id", alert.ID), zap.String("reading_id", alert.ReadingID))

	subject := FormatAlertSubject(alert)
	body := FormatAlertMessage(alert, reading)

	var wg sync.WaitGroup

	switch {
	case len(recipients.EmailTargets) == 0:
		logger.Debug("No email targets")
	case smtp == nil || d.mailer == nil:
		logger.Debug("Email channel not configured")
	default:
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.runChannel(ctx, logger.With(zap.String("channel", "email")), func(ctx context.Context) error {
				return d.mailer.SendMail(ctx, *smtp, recipients.EmailTargets, subject, body)
			})
		}()
	}

	switch {
	case !recipients.ChatEligible:
		logger.Debug("No chat subscribers")
	case chat == nil || d.messenger == nil:
		logger.Debug("Chat channel not configured")
	default:
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.runChannel(ctx, logger.With(zap.String("channel", "chat")), func(ctx context.Context) error {
				return d.messenger.SendMessage(ctx, chat.BotToken, chat.ChatID, body)
			})
		}()
	}

	wg.Wait()
}

func (d *Dispatcher) runChannel(ctx context.Context, logger *zap.Logger, send func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Channel send panicked", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	if err := send(ctx); err != nil {
		logger.Error("Channel send failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return
	}
	logger.Info("Channel send succeeded", zap.Duration("elapsed", time.Since(start)))
}

func FormatAlertSubject(alert *models.Alert) string {
	return fmt.Sprintf("HACCP Alarm: %s / %s", alert.FacilityName, alert.TargetName)
}

// FormatAlertMessage renders the plain text shared by both channels.
func FormatAlertMessage(alert *models.Alert, reading *models.Reading) string {
	var b strings.Builder
	b.WriteString("⚠️ HACCP Grenzwertverletzung\n\n")
	fmt.Fprintf(&b, "Standort: %s\n", alert.FacilityName)
	fmt.Fprintf(&b, "Objekt: %s\n", alert.TargetName)
	fmt.Fprintf(&b, "Messpunkt: %s\n", alert.CheckpointName)
	fmt.Fprintf(&b, "Gemessen: %.1f °C\n", alert.Value)
	fmt.Fprintf(&b, "Grenzwerte: %.1f °C bis %.1f °C\n", alert.Min, alert.Max)
	fmt.Fprintf(&b, "Erfasst von: %s\n", alert.UserName)
	fmt.Fprintf(&b, "Zeitpunkt: %s\n", alert.Timestamp.Local().Format("02.01.2006 15:04"))
	if reading != nil && strings.TrimSpace(reading.Reason) != "" {
		fmt.Fprintf(&b, "Begründung: %s\n", strings.TrimSpace(reading.Reason))
	}
	return b.String()
}
