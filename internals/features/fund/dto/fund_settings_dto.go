package dto

import (
	"time"

	"promo_backend/internals/features/fund/model"
)

// UpdateFundSettingsRequest is a sparse patch of the singleton row.
type UpdateFundSettingsRequest struct {
	FundSettingsStartDate    *time.Time `json:"fund_settings_start_date,omitempty"`
	FundSettingsWeeklyAmount *float64   `json:"fund_settings_weekly_amount,omitempty" validate:"omitempty,gt=0"`
	FundSettingsLateFee      *float64   `json:"fund_settings_late_fee,omitempty" validate:"omitempty,gte=0"`
	FundSettingsMaxWeeks     *int       `json:"fund_settings_max_weeks,omitempty" validate:"omitempty,min=1,max=200"`
	FundSettingsGoal         *float64   `json:"fund_settings_goal,omitempty" validate:"omitempty,gte=0"`
}

// Patch returns the column map for gorm Updates; empty when nothing is set.
func (r UpdateFundSettingsRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.FundSettingsStartDate != nil {
		patch["fund_settings_start_date"] = *r.FundSettingsStartDate
	}
	if r.FundSettingsWeeklyAmount != nil {
		patch["fund_settings_weekly_amount"] = *r.FundSettingsWeeklyAmount
	}
	if r.FundSettingsLateFee != nil {
		patch["fund_settings_late_fee"] = *r.FundSettingsLateFee
	}
	if r.FundSettingsMaxWeeks != nil {
		patch["fund_settings_max_weeks"] = *r.FundSettingsMaxWeeks
	}
	if r.FundSettingsGoal != nil {
		patch["fund_settings_goal"] = *r.FundSettingsGoal
	}
	return patch
}

type FundSettingsResponse struct {
	FundSettingsStartDate    time.Time `json:"fund_settings_start_date"`
	FundSettingsWeeklyAmount float64   `json:"fund_settings_weekly_amount"`
	FundSettingsLateFee      float64   `json:"fund_settings_late_fee"`
	FundSettingsMaxWeeks     int       `json:"fund_settings_max_weeks"`
	FundSettingsGoal         float64   `json:"fund_settings_goal"`
	UpdatedAt                time.Time `json:"fund_settings_updated_at"`
}

func FromSettingsModel(m model.FundSettingsModel) FundSettingsResponse {
	return FundSettingsResponse{
		FundSettingsStartDate:    m.FundSettingsStartDate,
		FundSettingsWeeklyAmount: m.FundSettingsWeeklyAmount,
		FundSettingsLateFee:      m.FundSettingsLateFee,
		FundSettingsMaxWeeks:     m.FundSettingsMaxWeeks,
		FundSettingsGoal:         m.FundSettingsGoal,
		UpdatedAt:                m.UpdatedAt,
	}
}
