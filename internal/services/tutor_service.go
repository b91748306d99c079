package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tutorlux_backend/internal/auth"
	"tutorlux_backend/internal/email"
	"tutorlux_backend/internal/repositories"
	"tutorlux_backend/internal/services/dto"
	"tutorlux_backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TutorService interface {
	Search(ctx context.Context, category string) (*dto.TutorSearchResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TutorDetailResponse, error)
	Contact(ctx context.Context, sender auth.Identity, req *dto.ContactTutorRequest) error
}

type TutorServiceImpl struct {
	tutorRepo    repositories.TutorRepository
	emailService EmailService
}

func NewTutorService(tutorRepo repositories.TutorRepository, emailService EmailService) TutorService {
	return &TutorServiceImpl{
		tutorRepo:    tutorRepo,
		emailService: emailService,
	}
}

// Search matches category exactly. There is no list-all mode: an empty
// category returns no tutors.
func (s *TutorServiceImpl) Search(ctx context.Context, category string) (*dto.TutorSearchResponse, error) {
	resp := &dto.TutorSearchResponse{Tutors: []dto.TutorSummary{}}
	if category == "" {
		return resp, nil
	}

	tutors, err := s.tutorRepo.FindByCategory(ctx, category, dto.MaxSearchResults)
	if err != nil {
		return nil, fmt.Errorf("search tutors: %w", err)
	}

	for i := range tutors {
		resp.Tutors = append(resp.Tutors, dto.NewTutorSummary(&tutors[i]))
	}
	return resp, nil
}

func (s *TutorServiceImpl) GetByID(ctx context.Context, id string) (*dto.TutorDetailResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidTutorID
	}

	tutor, err := s.tutorRepo.FindByID(ctx, oid)
	if errors.Is(err, repositories.ErrTutorNotFound) {
		return nil, apperrors.ErrTutorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find tutor: %w", err)
	}

	return &dto.TutorDetailResponse{Tutor: dto.NewTutorDetail(tutor)}, nil
}

// Contact emails a tutor on behalf of sender and waits for the provider.
func (s *TutorServiceImpl) Contact(ctx context.Context, sender auth.Identity, req *dto.ContactTutorRequest) error {
	if strings.TrimSpace(req.TutorEmail) == "" ||
		strings.TrimSpace(req.TutorName) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return apperrors.ErrContactFieldsRequired
	}

	return s.emailService.SendContact(ctx, email.ContactRequest{
		From: email.Recipient{
			Email:     sender.Email,
			FirstName: sender.FirstName,
			LastName:  sender.LastName,
		},
		TutorEmail: strings.TrimSpace(req.TutorEmail),
		TutorName:  strings.TrimSpace(req.TutorName),
		Message:    req.Message,
		Locale:     req.Locale,
	})
}
