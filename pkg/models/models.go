package models

import (
	"time"

	"gorm.io/datatypes"
)

type TargetType string

const (
	TargetTypeRefrigerator TargetType = "refrigerator"
	TargetTypeMenu         TargetType = "menu"
)

type Role string

const (
	RoleUser       Role = "User"
	RoleManager    Role = "Manager"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionLogin  AuditAction = "LOGIN"
)

// Checkpoint is a named measuring point with an inclusive temperature band in °C.
type Checkpoint struct {
	Name    string  `json:"name"`
	MinTemp float64 `json:"minTemp"`
	MaxTemp float64 `json:"maxTemp"`
}

// Contains reports whether value lies inside the closed interval [MinTemp, MaxTemp].
func (c Checkpoint) Contains(value float64) bool {
	return value >= c.MinTemp && value <= c.MaxTemp
}

type RefrigeratorType struct {
	ID          string                          `gorm:"primaryKey" json:"id"`
	Name        string                          `json:"name"`
	Checkpoints datatypes.JSONSlice[Checkpoint] `json:"checkpoints"`
}

type CookingMethod struct {
	ID          string                          `gorm:"primaryKey" json:"id"`
	Name        string                          `json:"name"`
	Checkpoints datatypes.JSONSlice[Checkpoint] `json:"checkpoints"`
}

type Facility struct {
	ID              string `gorm:"primaryKey" json:"id"`
	Name            string `json:"name"`
	SupervisorID    string `json:"supervisorId"`
	TypeID          string `json:"typeId"`
	CookingMethodID string `json:"cookingMethodId"`
}

type Refrigerator struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Name       string `json:"name"`
	FacilityID string `gorm:"index" json:"facilityId"`
	TypeID     string `json:"typeId"`
}

type Menu struct {
	ID              string `gorm:"primaryKey" json:"id"`
	Name            string `json:"name"`
	CookingMethodID string `json:"cookingMethodId"`
}

type User struct {
	ID                  string     `gorm:"primaryKey" json:"id"`
	Name                string     `json:"name"`
	Username            string     `gorm:"index" json:"username"`
	Email               string     `json:"email"`
	Role                Role       `gorm:"type:varchar(20)" json:"role"`
	Status              UserStatus `gorm:"type:varchar(20);index" json:"status"`
	FacilityID          string     `gorm:"index" json:"facilityId"`
	EmailAlerts         bool       `json:"emailAlerts"`
	TelegramAlerts      bool       `json:"telegramAlerts"`
	TelegramChatID      string     `json:"telegramChatId"` // not used for delivery, chat alerts go to the shared destination
	AllFacilitiesAlerts bool       `json:"allFacilitiesAlerts"`
}

func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsPrivileged reports whether u may act on alerts for others.
func (u User) IsPrivileged() bool {
	switch u.Role {
	case RoleManager, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Reading is an immutable log entry, never updated after insert.
type Reading struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	TargetID       string     `gorm:"index" json:"targetId"`
	TargetType     TargetType `gorm:"type:varchar(20)" json:"targetType"`
	CheckpointName string     `json:"checkpointName"`
	Value          float64    `json:"value"`
	Timestamp      time.Time  `gorm:"index" json:"timestamp"`
	UserID         string     `gorm:"index" json:"userId"`
	FacilityID     string     `gorm:"index" json:"facilityId"`
	Reason         string     `json:"reason,omitempty"`
}

// Alert is derived from exactly one out-of-range Reading. Display names are
// copied at creation so later renames do not rewrite history.
type Alert struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ReadingID      string     `gorm:"uniqueIndex" json:"readingId"`
	FacilityID     string     `gorm:"index" json:"facilityId"`
	FacilityName   string     `json:"facilityName"`
	TargetID       string     `json:"targetId"`
	TargetName     string     `json:"targetName"`
	CheckpointName string     `json:"checkpointName"`
	Value          float64    `json:"value"`
	Min            float64    `json:"min"`
	Max            float64    `json:"max"`
	Timestamp      time.Time  `json:"timestamp"`
	UserID         string     `json:"userId"`
	UserName       string     `json:"userName"`
	Resolved       bool       `gorm:"index;default:false" json:"resolved"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy     string     `json:"resolvedBy,omitempty"`
}

type AuditEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Timestamp time.Time      `gorm:"index" json:"timestamp"`
	UserID    string         `json:"userId"`
	UserName  string         `json:"userName"`
	Action    AuditAction    `gorm:"type:varchar(10)" json:"action"`
	Entity    string         `json:"entity"`
	Details   string         `json:"details"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
}

// ChannelSettings is the single row holding the outbound channel credentials.
type ChannelSettings struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	SMTPHost       string `json:"smtpHost"`
	SMTPPort       int    `json:"smtpPort"`
	SMTPUser       string `json:"smtpUser"`
	SMTPPassword   string `json:"-"`
	SMTPFrom       string `json:"smtpFrom"`
	TelegramToken  string `json:"-"`
	TelegramChatID string `json:"telegramChatId"`
}

// SMTP returns the email channel configuration, ok is false when the channel
// is not configured.
func (s ChannelSettings) SMTP() (SMTPConfig, bool) {
	if s.SMTPHost == "" || s.SMTPPort <= 0 {
		return SMTPConfig{}, false
	}
	return SMTPConfig{
		Host:     s.SMTPHost,
		Port:     s.SMTPPort,
		User:     s.SMTPUser,
		Password: s.SMTPPassword,
		From:     s.SMTPFrom,
	}, true
}

// Chat returns the chat channel configuration, ok is false when the channel
// is not configured.
func (s ChannelSettings) Chat() (ChatConfig, bool) {
	if s.TelegramToken == "" || s.TelegramChatID == "" {
		return ChatConfig{}, false
	}
	return ChatConfig{BotToken: s.TelegramToken, ChatID: s.TelegramChatID}, true
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Secure reports whether implicit TLS is used; other ports negotiate STARTTLS.
func (c SMTPConfig) Secure() bool {
	return c.Port == 465
}

// Sender is the From address. Some providers reject a From that differs from
// the authenticated user, so it defaults to User.
func (c SMTPConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.User
}

type ChatConfig struct {
	BotToken string
	ChatID   string
}

type BotInfo struct {
	OK       bool   `json:"ok"`
	ID       int64  `json:"id"`
	Name     string `json:"botName"`
	Username string `json:"username"`
}

// Recipients is the outcome of resolving who gets notified for a facility.
type Recipients struct {
	EmailTargets []string `json:"emailTargets"`
	ChatEligible bool     `json:"chatEligible"`
}

func (r Recipients) Empty() bool {
	return len(r.EmailTargets) == 0 && !r.ChatEligible
}
