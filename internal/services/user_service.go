package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tutorlux_backend/internal/auth"
	"tutorlux_backend/internal/logger"
	"tutorlux_backend/internal/models"
	"tutorlux_backend/internal/repositories"
	"tutorlux_backend/internal/services/dto"
	"tutorlux_backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// UpdateProfile stages every provided field and writes them in one update.
// Nothing is written when any field is rejected.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	var changes repositories.UserChanges

	if req.CurrentPassword != nil || req.NewPassword != nil {
		hash, err := changePassword(user, req.CurrentPassword, req.NewPassword)
		if err != nil {
			return err
		}
		changes.PasswordHash = &hash
	}

	if req.FirstName != nil {
		name := normalizeName(*req.FirstName)
		if name == "" {
			return apperrors.ErrFirstNameRequired
		}
		changes.FirstName = &name
	}

	if req.LastName != nil {
		name := normalizeName(*req.LastName)
		if name == "" {
			return apperrors.ErrLastNameRequired
		}
		changes.LastName = &name
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email == "" {
			return apperrors.ErrEmailRequired
		}
		taken, err := s.userRepo.EmailTakenByOther(ctx, email, user.ID)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return apperrors.ErrEmailAlreadyRegistered
		}
		changes.Email = &email
	}

	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		changes.Phone = &phone
	}

	if changes.IsEmpty() {
		logger.CtxDebug(ctx, "profile update with no fields")
		return nil
	}

	err = s.userRepo.Update(ctx, user.ID, changes)
	switch {
	case errors.Is(err, repositories.ErrUserAlreadyExists):
		return apperrors.ErrEmailAlreadyRegistered
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrUserNotFound
	case err != nil:
		return fmt.Errorf("update user: %w", err)
	}

	logger.CtxInfo(ctx, "profile updated",
		"user_id", user.ID.Hex(),
		"password_changed", changes.PasswordHash != nil,
	)
	return nil
}

func (s *UserServiceImpl) loadUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// changePassword verifies the current password before hashing the new one.
func changePassword(user *models.User, current, next *string) (string, error) {
	if current == nil || !auth.CheckPasswordHash(*current, user.PasswordHash) {
		return "", apperrors.ErrCurrentPasswordIncorrect
	}
	if next == nil || auth.ValidatePassword(*next) != nil {
		return "", apperrors.ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(*next)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
