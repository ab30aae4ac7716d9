package haccp

//go:generate mockgen -source=haccp.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"

	"liyu1981.xyz/haccp-alert-service/pkg/db"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

var (
	ErrInvalidReading = errors.New("invalid reading")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidAlert   = errors.New("alert value is inside its band")
	ErrDuplicateAlert = errors.New("alert already raised for reading")
	ErrAlertNotFound  = errors.New("alert not found")
	ErrNotFound       = errors.New("record not found")
)

type IReading interface {
	SubmitReading(input *models.Reading) (*models.Reading, *models.Alert, error)
	ListReadings(facilityID string, limit int) ([]models.Reading, error)
}

type IAlert interface {
	AppendAlert(alert *models.Alert) error
	ResolveAlert(alertID uint, actor *models.User) error
	ResolveAllAlerts(actor *models.User) (int64, error)
	UnresolvedAlerts() ([]models.Alert, error)
	ListAlerts(facilityID string) ([]models.Alert, error)
}

type ICatalog interface {
	ResolveBand(reading *models.Reading) (models.Checkpoint, bool)
	UpsertRefrigeratorType(input *models.RefrigeratorType, actor *models.User) error
	ListRefrigeratorTypes() ([]models.RefrigeratorType, error)
	UpsertCookingMethod(input *models.CookingMethod, actor *models.User) error
	ListCookingMethods() ([]models.CookingMethod, error)
	SeedDefaults() error
}

type IDirectory interface {
	UpsertUser(input *models.User, actor *models.User) error
	ListUsers() ([]models.User, error)
	GetUser(userID string) (*models.User, error)
	ListAlertRecipients(facilityID string) ([]models.User, error)

	UpsertFacility(input *models.Facility, actor *models.User) error
	ListFacilities() ([]models.Facility, error)
	GetFacility(facilityID string) (*models.Facility, error)

	UpsertRefrigerator(input *models.Refrigerator, actor *models.User) error
	ListRefrigerators(facilityID string) ([]models.Refrigerator, error)
	GetRefrigerator(refrigeratorID string) (*models.Refrigerator, error)

	UpsertMenu(input *models.Menu, actor *models.User) error
	ListMenus() ([]models.Menu, error)
	GetMenu(menuID string) (*models.Menu, error)
}

type IAudit interface {
	Record(action models.AuditAction, entity, details string, actor *models.User)
	RecordWithMetadata(action models.AuditAction, entity, details string, actor *models.User, metadata map[string]any)
	ListEntries(limit int) ([]models.AuditEntry, error)
}

type ISettings interface {
	GetChannelSettings() (*models.ChannelSettings, error)
	UpdateChannelSettings(input *models.ChannelSettings, actor *models.User) (*models.ChannelSettings, error)
	SeedChannelSettings(initial models.ChannelSettings) error
}

type INotifier interface {
	Notify(alert *models.Alert, reading *models.Reading, recipients models.Recipients)
}

// Mailer sends one message to all recipients in a single SMTP transaction.
type Mailer interface {
	SendMail(ctx context.Context, cfg models.SMTPConfig, to []string, subject, body string) error
}

type Messenger interface {
	SendMessage(ctx context.Context, token, chatID, text string) error
	VerifyBot(ctx context.Context, token string) (*models.BotInfo, error)
}

type HACCP struct {
	Db        db.DB
	Reading   IReading
	Alert     IAlert
	Catalog   ICatalog
	Directory IDirectory
	Audit     IAudit
	Settings  ISettings
	Notifier  INotifier
}

type ServiceOpts struct {
	Reading   IReading
	Alert     IAlert
	Catalog   ICatalog
	Directory IDirectory
	Audit     IAudit
	Settings  ISettings
	Notifier  INotifier
}

func (h *HACCP) WithServices(opts ServiceOpts) *HACCP {
	if opts.Reading != nil {
		h.Reading = opts.Reading
	}
	if opts.Alert != nil {
		h.Alert = opts.Alert
	}
	if opts.Catalog != nil {
		h.Catalog = opts.Catalog
	}
	if opts.Directory != nil {
		h.Directory = opts.Directory
	}
	if opts.Audit != nil {
		h.Audit = opts.Audit
	}
	if opts.Settings != nil {
		h.Settings = opts.Settings
	}
	if opts.Notifier != nil {
		h.Notifier = opts.Notifier
	}
	return h
}

// New wires every database-backed service of h. The notifier is left for the
// caller since it needs outbound clients.
func New(database *db.DB) *HACCP {
	h := &HACCP{Db: *database}
	return h.WithServices(ServiceOpts{
		Reading:   h.GetIReading(),
		Alert:     h.GetIAlert(),
		Catalog:   h.GetICatalog(),
		Directory: h.GetIDirectory(),
		Audit:     h.GetIAudit(),
		Settings:  h.GetISettings(),
	})
}
