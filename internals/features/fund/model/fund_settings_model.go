package model

import (
	"time"
)

// Defaults applied when the singleton row is first created.
const (
	DefaultWeeklyAmount = 5.0
	DefaultLateFee      = 7.0
	DefaultMaxWeeks     = 17
	SettingsMainKey     = "main"
)

// FundSettingsModel is the singleton fund configuration row (key = "main").
// Reads go through FirstOrCreate so a missing row never fails a request.
type FundSettingsModel struct {
	FundSettingsKey string `gorm:"column:fund_settings_key;primaryKey" json:"fund_settings_key"`

	FundSettingsStartDate    time.Time `gorm:"column:fund_settings_start_date;not null" json:"fund_settings_start_date"`
	FundSettingsWeeklyAmount float64   `gorm:"column:fund_settings_weekly_amount;not null;default:5" json:"fund_settings_weekly_amount"`
	FundSettingsLateFee      float64   `gorm:"column:fund_settings_late_fee;not null;default:7" json:"fund_settings_late_fee"`
	FundSettingsMaxWeeks     int       `gorm:"column:fund_settings_max_weeks;not null;default:17;check:fund_settings_max_weeks >= 1" json:"fund_settings_max_weeks"`
	FundSettingsGoal         float64   `gorm:"column:fund_settings_goal;not null;default:0" json:"fund_settings_goal"`

	UpdatedAt time.Time `gorm:"column:fund_settings_updated_at;autoUpdateTime" json:"fund_settings_updated_at"`
}

func (FundSettingsModel) TableName() string { return "fund_settings" }

// DefaultFundSettings is what FirstOrCreate seeds when no row exists yet.
// The start date defaults to today so a fresh install owes nothing.
func DefaultFundSettings(now time.Time) FundSettingsModel {
	return FundSettingsModel{
		FundSettingsKey:          SettingsMainKey,
		FundSettingsStartDate:    now,
		FundSettingsWeeklyAmount: DefaultWeeklyAmount,
		FundSettingsLateFee:      DefaultLateFee,
		FundSettingsMaxWeeks:     DefaultMaxWeeks,
	}
}
