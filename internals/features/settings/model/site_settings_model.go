package model

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsMainKey is the fixed key of the single site settings row.
const SettingsMainKey = "main"

// SiteSettingsModel is a keyed singleton. The row is created on first
// read with defaults and only ever updated after that.
type SiteSettingsModel struct {
	SiteSettingsKey string `gorm:"column:site_settings_key;primaryKey" json:"site_settings_key"`

	SiteSettingsSiteName     string  `gorm:"column:site_settings_site_name;not null;default:''" json:"site_settings_site_name"`
	SiteSettingsTagline      *string `gorm:"column:site_settings_tagline" json:"site_settings_tagline,omitempty"`
	SiteSettingsAboutText    *string `gorm:"column:site_settings_about_text" json:"site_settings_about_text,omitempty"`
	SiteSettingsHeroImageURL *string `gorm:"column:site_settings_hero_image_url" json:"site_settings_hero_image_url,omitempty"`
	SiteSettingsContactEmail *string `gorm:"column:site_settings_contact_email" json:"site_settings_contact_email,omitempty"`

	// Free-form map of platform → URL (instagram, tiktok, youtube, …).
	SiteSettingsSocialLinks datatypes.JSONMap `gorm:"column:site_settings_social_links;type:jsonb" json:"site_settings_social_links,omitempty"`

	CreatedAt time.Time `gorm:"column:site_settings_created_at;autoCreateTime" json:"site_settings_created_at"`
	UpdatedAt time.Time `gorm:"column:site_settings_updated_at;autoUpdateTime" json:"site_settings_updated_at"`
}

func (SiteSettingsModel) TableName() string { return "site_settings" }

// DefaultSiteSettings is what FirstOrCreate seeds.
func DefaultSiteSettings() SiteSettingsModel {
	return SiteSettingsModel{
		SiteSettingsKey:      SettingsMainKey,
		SiteSettingsSiteName: "Promo",
	}
}
