package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tutorlux_backend/internal/auth"
	"tutorlux_backend/internal/logger"
	"tutorlux_backend/internal/metrics"
	"tutorlux_backend/internal/models"
	"tutorlux_backend/internal/repositories"
	"tutorlux_backend/internal/services/dto"
	"tutorlux_backend/pkg/apperrors"
)

// TokenIssuer signs bearer tokens.
type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}

type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	tokens       TokenIssuer
	emailService EmailService
	now          func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenIssuer, emailService EmailService) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		tokens:       tokens,
		emailService: emailService,
		now:          time.Now,
	}
}

// SignUp creates an account and returns it with a token. Checks run in a
// fixed order: email, first name, last name, password.
func (s *AuthServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := validateSignUp(req); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	// Fast path; the unique index still catches concurrent sign-ups in Create.
	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperrors.ErrEmailAlreadyRegistered
	case !errors.Is(err, repositories.ErrUserNotFound):
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FirstName:    normalizeName(req.FirstName),
		LastName:     normalizeName(req.LastName),
		PasswordHash: hash,
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		user.Phone = &phone
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	resp, err := s.buildAuthResponse(user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	logger.CtxInfo(ctx, "user signed up", "user_id", user.ID.Hex())

	s.emailService.SendWelcomeAsync(ctx, user)

	return resp, nil
}

// SignIn never tells an unknown email apart from a wrong password.
func (s *AuthServiceImpl) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if req.Password == "" {
		return nil, apperrors.ErrPasswordRequired
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		auth.BurnVerification(req.Password)
		metrics.SigninFailuresTotal.Inc()
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		metrics.SigninFailuresTotal.Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(auth.Identity{
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}

func validateSignUp(req *dto.SignUpRequest) error {
	switch {
	case normalizeEmail(req.Email) == "":
		return apperrors.ErrEmailRequired
	case strings.TrimSpace(req.FirstName) == "":
		return apperrors.ErrFirstNameRequired
	case strings.TrimSpace(req.LastName) == "":
		return apperrors.ErrLastNameRequired
	case auth.ValidatePassword(req.Password) != nil:
		return apperrors.ErrPasswordTooShort
	}
	return nil
}
