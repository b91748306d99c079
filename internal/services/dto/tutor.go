package dto

import "tutorlux_backend/internal/models"

// MaxSearchResults caps a category search.
const MaxSearchResults = 50

// TutorSearchQuery - query string of GET /api/tutors/search
type TutorSearchQuery struct {
	Category string `form:"category" validate:"max=200"`
}

// TutorIDParam - path parameter of GET /api/tutors/:id
type TutorIDParam struct {
	ID string `uri:"id" validate:"required,objectid"`
}

// TutorSummary - search result row
type TutorSummary struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Categories []string `json:"categories"`
	Bio        string   `json:"bio,omitempty"`
	HourlyRate float64  `json:"hourlyRate"`
}

type TutorSearchResponse struct {
	Tutors []TutorSummary `json:"tutors"`
}

// TutorDetail - single tutor. Phone is not exposed here.
type TutorDetail struct {
	ID         string   `json:"_id"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	Categories []string `json:"categories"`
	Bio        string   `json:"bio,omitempty"`
	HourlyRate float64  `json:"hourlyRate"`
}

type TutorDetailResponse struct {
	Tutor TutorDetail `json:"tutor"`
}

// ContactTutorRequest - body of POST /api/tutors/contact
type ContactTutorRequest struct {
	TutorID    string `json:"tutorId" validate:"omitempty,objectid"`
	TutorEmail string `json:"tutorEmail" validate:"notblank"`
	TutorName  string `json:"tutorName" validate:"notblank"`
	Message    string `json:"message" validate:"notblank"`
	Locale     string `json:"locale"`
}

func NewTutorSummary(t *models.Tutor) TutorSummary {
	categories := t.Categories
	if categories == nil {
		categories = []string{}
	}
	return TutorSummary{
		ID:         t.ID.Hex(),
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		Email:      t.Email,
		Phone:      t.Phone,
		Categories: categories,
		Bio:        t.Bio,
		HourlyRate: t.HourlyRate,
	}
}

func NewTutorDetail(t *models.Tutor) TutorDetail {
	categories := t.Categories
	if categories == nil {
		categories = []string{}
	}
	return TutorDetail{
		ID:         t.ID.Hex(),
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		Email:      t.Email,
		Categories: categories,
		Bio:        t.Bio,
		HourlyRate: t.HourlyRate,
	}
}
