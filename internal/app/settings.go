package app

import (
	"github.com/printarts/printrec/internal/domain"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

// SettingsManager reads runtime settings from the sys_config table. Values
// are stored as strings and cast on read.
type SettingsManager struct {
	db *gorm.DB
}

func NewSettingsManager(db *gorm.DB) *SettingsManager {
	return &SettingsManager{db: db}
}

func (s *SettingsManager) GetString(category, name string) string {
	var cfg domain.SysConfig
	if err := s.db.Where("type = ? and name = ?", category, name).First(&cfg).Error; err != nil {
		return ""
	}
	return cfg.Value
}

func (s *SettingsManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(s.GetString(category, name))
}

func (s *SettingsManager) GetBool(category, name string) bool {
	return cast.ToBool(s.GetString(category, name))
}

func (s *SettingsManager) Set(category, name, value string) error {
	return s.db.Model(&domain.SysConfig{}).
		Where("type = ? and name = ?", category, name).
		Update("value", value).Error
}
