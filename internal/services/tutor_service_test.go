package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tutorlux_backend/internal/auth"
	"tutorlux_backend/internal/models"
	"tutorlux_backend/internal/services/dto"
	"tutorlux_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTutorService_Search(t *testing.T) {
	repo := &fakeTutorRepo{tutors: []models.Tutor{
		{ID: primitive.NewObjectID(), FirstName: "Ann", Categories: []string{"math.algebra", "languages.french"}},
		{ID: primitive.NewObjectID(), FirstName: "Ben", Categories: []string{"sports.tennis"}},
		{ID: primitive.NewObjectID(), FirstName: "Cy", Categories: []string{"math.algebra"}},
	}}
	svc := NewTutorService(repo, newRecordingEmailService())

	resp, err := svc.Search(context.Background(), "math.algebra")
	require.NoError(t, err)

	require.Len(t, resp.Tutors, 2)
	for _, tutor := range resp.Tutors {
		assert.Contains(t, tutor.Categories, "math.algebra")
	}
	assert.EqualValues(t, 50, repo.lastLimit)

	resp, err = svc.Search(context.Background(), "math")
	require.NoError(t, err)
	assert.Empty(t, resp.Tutors)
}

func TestTutorService_SearchEmptyCategory(t *testing.T) {
	repo := &fakeTutorRepo{tutors: []models.Tutor{{ID: primitive.NewObjectID(), Categories: []string{""}}}}

	resp, err := NewTutorService(repo, newRecordingEmailService()).Search(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, resp.Tutors)
	assert.Empty(t, resp.Tutors)
	assert.Zero(t, repo.lastLimit)
}

func TestTutorService_SearchCapsResults(t *testing.T) {
	repo := &fakeTutorRepo{}
	for i := 0; i < 60; i++ {
		repo.tutors = append(repo.tutors, models.Tutor{
			ID:         primitive.NewObjectID(),
			FirstName:  fmt.Sprintf("T%d", i),
			Categories: []string{"math"},
		})
	}

	resp, err := NewTutorService(repo, newRecordingEmailService()).Search(context.Background(), "math")

	require.NoError(t, err)
	assert.Len(t, resp.Tutors, dto.MaxSearchResults)
}

func TestTutorService_GetByID(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeTutorRepo{tutors: []models.Tutor{{ID: id, FirstName: "Ann", LastName: "Roe", Phone: "555"}}}
	svc := NewTutorService(repo, newRecordingEmailService())

	resp, err := svc.GetByID(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), resp.Tutor.ID)
	assert.Equal(t, []string{}, resp.Tutor.Categories)

	_, err = svc.GetByID(context.Background(), "123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTutorID)

	_, err = svc.GetByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrTutorNotFound)

	repo.err = errors.New("connection reset")
	_, err = svc.GetByID(context.Background(), id.Hex())
	require.Error(t, err)
	_, isAppErr := apperrors.AsAppError(err)
	assert.False(t, isAppErr)
}

func TestTutorService_Contact(t *testing.T) {
	mail := newRecordingEmailService()
	svc := NewTutorService(&fakeTutorRepo{}, mail)
	sender := auth.Identity{UserID: "u1", Email: "jo@example.com", FirstName: "Jo", LastName: "Lee"}

	err := svc.Contact(context.Background(), sender, &dto.ContactTutorRequest{
		TutorEmail: "ann@example.com",
		TutorName:  "Ann Roe",
		Message:    "Hello",
		Locale:     "fr",
	})
	require.NoError(t, err)
	require.Len(t, mail.contacts, 1)
	assert.Equal(t, "jo@example.com", mail.contacts[0].From.Email)
	assert.Equal(t, "Jo Lee", mail.contacts[0].From.FullName())
	assert.Equal(t, "fr", mail.contacts[0].Locale)

	for _, req := range []dto.ContactTutorRequest{
		{TutorName: "Ann", Message: "Hi"},
		{TutorEmail: "ann@example.com", Message: "Hi"},
		{TutorEmail: "ann@example.com", TutorName: "Ann", Message: "  "},
	} {
		err := svc.Contact(context.Background(), sender, &req)
		assert.ErrorIs(t, err, apperrors.ErrContactFieldsRequired)
	}
	assert.Len(t, mail.contacts, 1)
}

func TestTutorService_ContactSurfacesSendFailure(t *testing.T) {
	mail := newRecordingEmailService()
	mail.err = apperrors.ErrEmailSendFailed
	svc := NewTutorService(&fakeTutorRepo{}, mail)

	err := svc.Contact(context.Background(), auth.Identity{Email: "jo@example.com"}, &dto.ContactTutorRequest{
		TutorEmail: "ann@example.com", TutorName: "Ann", Message: "Hi",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailSendFailed)
}
