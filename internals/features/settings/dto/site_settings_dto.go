package dto

import (
	"time"

	"gorm.io/datatypes"

	"promo_backend/internals/features/settings/model"
)

// UpdateSiteSettingsRequest is a sparse patch over the singleton row.
type UpdateSiteSettingsRequest struct {
	SiteSettingsSiteName     *string           `json:"site_settings_site_name,omitempty" validate:"omitempty,max=200"`
	SiteSettingsTagline      *string           `json:"site_settings_tagline,omitempty" validate:"omitempty,max=300"`
	SiteSettingsAboutText    *string           `json:"site_settings_about_text,omitempty" validate:"omitempty,max=5000"`
	SiteSettingsContactEmail *string           `json:"site_settings_contact_email,omitempty" validate:"omitempty,email"`
	SiteSettingsSocialLinks  datatypes.JSONMap `json:"site_settings_social_links,omitempty"`
}

func (r UpdateSiteSettingsRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.SiteSettingsSiteName != nil {
		patch["site_settings_site_name"] = *r.SiteSettingsSiteName
	}
	if r.SiteSettingsTagline != nil {
		patch["site_settings_tagline"] = *r.SiteSettingsTagline
	}
	if r.SiteSettingsAboutText != nil {
		patch["site_settings_about_text"] = *r.SiteSettingsAboutText
	}
	if r.SiteSettingsContactEmail != nil {
		patch["site_settings_contact_email"] = *r.SiteSettingsContactEmail
	}
	if r.SiteSettingsSocialLinks != nil {
		patch["site_settings_social_links"] = r.SiteSettingsSocialLinks
	}
	return patch
}

type SiteSettingsResponse struct {
	SiteSettingsSiteName     string            `json:"site_settings_site_name"`
	SiteSettingsTagline      *string           `json:"site_settings_tagline,omitempty"`
	SiteSettingsAboutText    *string           `json:"site_settings_about_text,omitempty"`
	SiteSettingsHeroImageURL *string           `json:"site_settings_hero_image_url,omitempty"`
	SiteSettingsContactEmail *string           `json:"site_settings_contact_email,omitempty"`
	SiteSettingsSocialLinks  datatypes.JSONMap `json:"site_settings_social_links,omitempty"`
	UpdatedAt                time.Time         `json:"site_settings_updated_at"`
}

func FromSiteSettingsModel(m model.SiteSettingsModel) SiteSettingsResponse {
	return SiteSettingsResponse{
		SiteSettingsSiteName:     m.SiteSettingsSiteName,
		SiteSettingsTagline:      m.SiteSettingsTagline,
		SiteSettingsAboutText:    m.SiteSettingsAboutText,
		SiteSettingsHeroImageURL: m.SiteSettingsHeroImageURL,
		SiteSettingsContactEmail: m.SiteSettingsContactEmail,
		SiteSettingsSocialLinks:  m.SiteSettingsSocialLinks,
		UpdatedAt:                m.UpdatedAt,
	}
}
