package dto

import (
	"time"

	"github.com/google/uuid"

	"promo_backend/internals/features/students/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateStudentRequest struct {
	StudentName        string  `json:"student_name" validate:"required,max=200"`
	StudentNickname    *string `json:"student_nickname,omitempty" validate:"omitempty,max=100"`
	StudentDescription *string `json:"student_description,omitempty" validate:"omitempty,max=1000"`
	StudentQuote       *string `json:"student_quote,omitempty" validate:"omitempty,max=500"`
	StudentInstagram   *string `json:"student_instagram,omitempty" validate:"omitempty,max=100"`
	StudentOrderIndex  *int    `json:"student_order_index,omitempty"`
	StudentIsActive    *bool   `json:"student_is_active,omitempty"`
}

// UpdateStudentRequest is a sparse patch.
type UpdateStudentRequest struct {
	StudentName        *string `json:"student_name,omitempty" validate:"omitempty,max=200"`
	StudentNickname    *string `json:"student_nickname,omitempty" validate:"omitempty,max=100"`
	StudentDescription *string `json:"student_description,omitempty" validate:"omitempty,max=1000"`
	StudentQuote       *string `json:"student_quote,omitempty" validate:"omitempty,max=500"`
	StudentInstagram   *string `json:"student_instagram,omitempty" validate:"omitempty,max=100"`
	StudentOrderIndex  *int    `json:"student_order_index,omitempty"`
	StudentIsActive    *bool   `json:"student_is_active,omitempty"`
}

func (r UpdateStudentRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.StudentName != nil {
		patch["student_name"] = *r.StudentName
	}
	if r.StudentNickname != nil {
		patch["student_nickname"] = *r.StudentNickname
	}
	if r.StudentDescription != nil {
		patch["student_description"] = *r.StudentDescription
	}
	if r.StudentQuote != nil {
		patch["student_quote"] = *r.StudentQuote
	}
	if r.StudentInstagram != nil {
		patch["student_instagram"] = *r.StudentInstagram
	}
	if r.StudentOrderIndex != nil {
		patch["student_order_index"] = *r.StudentOrderIndex
	}
	if r.StudentIsActive != nil {
		patch["student_is_active"] = *r.StudentIsActive
	}
	return patch
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type StudentResponse struct {
	StudentID          uuid.UUID `json:"student_id"`
	StudentName        string    `json:"student_name"`
	StudentNickname    *string   `json:"student_nickname,omitempty"`
	StudentDescription *string   `json:"student_description,omitempty"`
	StudentQuote       *string   `json:"student_quote,omitempty"`
	StudentInstagram   *string   `json:"student_instagram,omitempty"`
	StudentPhotoURL    *string   `json:"student_photo_url,omitempty"`
	StudentOrderIndex  int       `json:"student_order_index"`
	StudentIsActive    bool      `json:"student_is_active"`
	CreatedAt          time.Time `json:"student_created_at"`
	UpdatedAt          time.Time `json:"student_updated_at"`
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:          m.StudentID,
		StudentName:        m.StudentName,
		StudentNickname:    m.StudentNickname,
		StudentDescription: m.StudentDescription,
		StudentQuote:       m.StudentQuote,
		StudentInstagram:   m.StudentInstagram,
		StudentPhotoURL:    m.StudentPhotoURL,
		StudentOrderIndex:  m.StudentOrderIndex,
		StudentIsActive:    m.StudentIsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func FromStudentModels(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromStudentModel(r))
	}
	return out
}
