package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"promo_backend/internals/features/fund/model"
	"promo_backend/internals/features/fund/service"
	studentModel "promo_backend/internals/features/students/model"
)

func nowDate() time.Time {
	n := time.Now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// LoadActiveStudentEntries fetches every active student with their payments,
// shaped for service.Aggregate. Two queries instead of N+1.
func LoadActiveStudentEntries(ctx context.Context, db *gorm.DB) ([]service.StudentEntry, error) {
	var students []studentModel.StudentModel
	if err := db.WithContext(ctx).
		Where("student_is_active = true").
		Order("student_name ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	var payments []model.FundPaymentModel
	if err := db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, err
	}

	byStudent := make(map[string][]service.PaymentRecord, len(students))
	for _, p := range payments {
		key := p.FundPaymentStudentID.String()
		byStudent[key] = append(byStudent[key], service.PaymentRecord{
			WeekNumber: p.FundPaymentWeekNumber,
			Amount:     p.FundPaymentAmount,
		})
	}

	entries := make([]service.StudentEntry, 0, len(students))
	for _, s := range students {
		entries = append(entries, service.StudentEntry{
			StudentID: s.StudentID,
			Name:      s.StudentName,
			Payments:  byStudent[s.StudentID.String()],
		})
	}
	return entries, nil
}
