package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promo_backend/internals/features/fund/model"
	"promo_backend/internals/features/fund/service"
	studentModel "promo_backend/internals/features/students/model"
	helper "promo_backend/internals/helpers"
)

// PaymentRepository is the gorm-backed service.PaymentStore.
type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

var _ service.PaymentStore = (*PaymentRepository)(nil)

func (r *PaymentRepository) StudentExists(ctx context.Context, studentID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&studentModel.StudentModel{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepository) WeekTaken(ctx context.Context, studentID uuid.UUID, week int, excludeID *uuid.UUID) (bool, error) {
	q := r.DB.WithContext(ctx).
		Model(&model.FundPaymentModel{}).
		Where("fund_payment_student_id = ? AND fund_payment_week_number = ?", studentID, week)
	if excludeID != nil {
		q = q.Where("fund_payment_id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PaymentRepository) Insert(ctx context.Context, p *model.FundPaymentModel) error {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		// Concurrent writers can both pass the pre-check; the unique index
		// decides, and the loser gets the same duplicate-week error.
		if helper.IsUniqueViolation(err) {
			return service.ErrDuplicateWeek
		}
		return err
	}
	return nil
}

func (r *PaymentRepository) Get(ctx context.Context, id uuid.UUID) (*model.FundPaymentModel, error) {
	var row model.FundPaymentModel
	if err := r.DB.WithContext(ctx).
		First(&row, "fund_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *model.FundPaymentModel) error {
	if err := r.DB.WithContext(ctx).Save(p).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return service.ErrDuplicateWeek
		}
		return err
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&model.FundPaymentModel{}, "fund_payment_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrPaymentNotFound
	}
	return nil
}

// ListByStudent returns every payment of one student, ordered by week.
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.FundPaymentModel, error) {
	var rows []model.FundPaymentModel
	err := r.DB.WithContext(ctx).
		Where("fund_payment_student_id = ?", studentID).
		Order("fund_payment_week_number ASC").
		Find(&rows).Error
	return rows, err
}

// LoadSettings fetches the singleton configuration, creating it with
// defaults when absent.
func (r *PaymentRepository) LoadSettings(ctx context.Context) (model.FundSettingsModel, error) {
	defaults := model.DefaultFundSettings(nowDate())
	var row model.FundSettingsModel
	err := r.DB.WithContext(ctx).
		Where("fund_settings_key = ?", model.SettingsMainKey).
		Attrs(defaults).
		FirstOrCreate(&row).Error
	return row, err
}
