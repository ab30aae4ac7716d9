package haccp

import (
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

var userSchema = z.Struct(z.Shape{
	"ID":       z.String().Required(),
	"Name":     z.String().Required(),
	"Username": z.String().Required(),
})

var facilitySchema = z.Struct(z.Shape{
	"ID":   z.String().Required(),
	"Name": z.String().Required(),
})

var refrigeratorSchema = z.Struct(z.Shape{
	"ID":         z.String().Required(),
	"Name":       z.String().Required(),
	"FacilityID": z.String().Required(),
	"TypeID":     z.String().Required(),
})

var menuSchema = z.Struct(z.Shape{
	"ID":   z.String().Required(),
	"Name": z.String().Required(),
})

func validRole(role models.Role) bool {
	switch role {
	case models.RoleUser, models.RoleManager, models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// upsert inserts row or, on primary key conflict, overwrites every column.
func (h *HACCP) upsert(row any) error {
	return h.Db.Conn.Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
}

func (h *HACCP) upsertUser(input *models.User, actor *models.User) error {
	logger := coreLogger(common.LoggerCategoryHACCPAdmin)

	if errs := userSchema.Validate(input); errs != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, errs)
	}
	if input.Role == "" {
		input.Role = models.RoleUser
	}
	if !validRole(input.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}
	if input.Status == "" {
		input.Status = models.UserStatusActive
	}

	if err := h.upsert(input); err != nil {
		return err
	}

	logger.Info("Upserted user", zap.String("user_id", input.ID), zap.String("role", string(input.Role)))
	h.audit(models.AuditActionUpdate, AuditEntityUsers, fmt.Sprintf("Benutzer %s gespeichert", input.Name), actor)
	return nil
}

func (h *HACCP) getUser(userID string) (*models.User, error) {
	var user models.User
	if err := h.Db.Conn.First(&user, "id = ?", userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (h *HACCP) listUsers() ([]models.User, error) {
	var users []models.User
	err := h.Db.Conn.Order("name asc").Find(&users).Error
	return users, err
}

// listAlertRecipients is the persistence side of recipient resolution: active
// users subscribed to at least one channel and scoped to facilityID or to all
// facilities.
func (h *HACCP) listAlertRecipients(facilityID string) ([]models.User, error) {
	var users []models.User
	err := h.Db.Conn.
		Where("status = ?", models.UserStatusActive).
		Where("email_alerts = ? OR telegram_alerts = ?", true, true).
		Where("all_facilities_alerts = ? OR facility_id = ?", true, facilityID).
		Order("id asc").
		Find(&users).Error
	return users, err
}

func (h *HACCP) upsertFacility(input *models.Facility, actor *models.User) error {
	if errs := facilitySchema.Validate(input); errs != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, errs)
	}
	if err := h.upsert(input); err != nil {
		return err
	}
	coreLogger(common.LoggerCategoryHACCPAdmin).Info("Upserted facility", zap.Reflect("facility", input))
	h.audit(models.AuditActionUpdate, AuditEntityFacilities, fmt.Sprintf("Standort %s gespeichert", input.Name), actor)
	return nil
}

func (h *HACCP) getFacility(facilityID string) (*models.Facility, error) {
	var facility models.Facility
	if err := h.Db.Conn.First(&facility, "id = ?", facilityID).Error; err != nil {
		return nil, notFound(err)
	}
	return &facility, nil
}

func (h *HACCP) listFacilities() ([]models.Facility, error) {
	var facilities []models.Facility
	err := h.Db.Conn.Order("name asc").Find(&facilities).Error
	return facilities, err
}

func (h *HACCP) upsertRefrigerator(input *models.Refrigerator, actor *models.User) error {
	if errs := refrigeratorSchema.Validate(input); errs != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, errs)
	}
	if err := h.upsert(input); err != nil {
		return err
	}
	coreLogger(common.LoggerCategoryHACCPAdmin).Info("Upserted refrigerator", zap.Reflect("refrigerator", input))
	h.audit(models.AuditActionUpdate, AuditEntityRefrigerators, fmt.Sprintf("Kühlgerät %s gespeichert", input.Name), actor)
	return nil
}

func (h *HACCP) getRefrigerator(refrigeratorID string) (*models.Refrigerator, error) {
	var refrigerator models.Refrigerator
	if err := h.Db.Conn.First(&refrigerator, "id = ?", refrigeratorID).Error; err != nil {
		return nil, notFound(err)
	}
	return &refrigerator, nil
}

func (h *HACCP) listRefrigerators(facilityID string) ([]models.Refrigerator, error) {
	var refrigerators []models.Refrigerator
	query := h.Db.Conn.Order("name asc")
	if facilityID != "" {
		query = query.Where("facility_id = ?", facilityID)
	}
	err := query.Find(&refrigerators).Error
	return refrigerators, err
}

func (h *HACCP) upsertMenu(input *models.Menu, actor *models.User) error {
	if errs := menuSchema.Validate(input); errs != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, errs)
	}
	if err := h.upsert(input); err != nil {
		return err
	}
	coreLogger(common.LoggerCategoryHACCPAdmin).Info("Upserted menu", zap.Reflect("menu", input))
	h.audit(models.AuditActionUpdate, AuditEntityMenus, fmt.Sprintf("Menü %s gespeichert", input.Name), actor)
	return nil
}

func (h *HACCP) getMenu(menuID string) (*models.Menu, error) {
	var menu models.Menu
	if err := h.Db.Conn.First(&menu, "id = ?", menuID).Error; err != nil {
		return nil, notFound(err)
	}
	return &menu, nil
}

func (h *HACCP) listMenus() ([]models.Menu, error) {
	var menus []models.Menu
	err := h.Db.Conn.Order("name asc").Find(&menus).Error
	return menus, err
}

type IDirectoryImpl struct {
	haccp *HACCP
}

func (id *IDirectoryImpl) UpsertUser(input *models.User, actor *models.User) error {
	return id.haccp.upsertUser(input, actor)
}

func (id *IDirectoryImpl) ListUsers() ([]models.User, error) {
	return id.haccp.listUsers()
}

func (id *IDirectoryImpl) GetUser(userID string) (*models.User, error) {
	return id.haccp.getUser(userID)
}

func (id *IDirectoryImpl) ListAlertRecipients(facilityID string) ([]models.User, error) {
	return id.haccp.listAlertRecipients(facilityID)
}

func (id *IDirectoryImpl) UpsertFacility(input *models.Facility, actor *models.User) error {
	return id.haccp.upsertFacility(input, actor)
}

func (id *IDirectoryImpl) ListFacilities() ([]models.Facility, error) {
	return id.haccp.listFacilities()
}

func (id *IDirectoryImpl) GetFacility(facilityID string) (*models.Facility, error) {
	return id.haccp.getFacility(facilityID)
}

func (id *IDirectoryImpl) UpsertRefrigerator(input *models.Refrigerator, actor *models.User) error {
	return id.haccp.upsertRefrigerator(input, actor)
}

func (id *IDirectoryImpl) ListRefrigerators(facilityID string) ([]models.Refrigerator, error) {
	return id.haccp.listRefrigerators(facilityID)
}

func (id *IDirectoryImpl) GetRefrigerator(refrigeratorID string) (*models.Refrigerator, error) {
	return id.haccp.getRefrigerator(refrigeratorID)
}

func (id *IDirectoryImpl) UpsertMenu(input *models.Menu, actor *models.User) error {
	return id.haccp.upsertMenu(input, actor)
}

func (id *IDirectoryImpl) ListMenus() ([]models.Menu, error) {
	return id.haccp.listMenus()
}

func (id *IDirectoryImpl) GetMenu(menuID string) (*models.Menu, error) {
	return id.haccp.getMenu(menuID)
}

func (h *HACCP) GetIDirectory() IDirectory {
	return &IDirectoryImpl{haccp: h}
}
