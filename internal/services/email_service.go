package services

import (
	"context"
	"errors"
	"time"

	"tutorlux_backend/internal/email"
	"tutorlux_backend/internal/logger"
	"tutorlux_backend/internal/metrics"
	"tutorlux_backend/internal/models"
	"tutorlux_backend/pkg/apperrors"
)

// EmailService composes and delivers the application's outbound mail.
type EmailService interface {
	// SendWelcomeAsync queues the welcome email and returns at once. The
	// outcome is only logged.
	SendWelcomeAsync(ctx context.Context, user *models.User)
	// SendContact delivers a user to tutor message and reports failure.
	SendContact(ctx context.Context, req email.ContactRequest) error
}

type EmailServiceImpl struct {
	provider email.Provider
	composer *email.Composer
	timeout  time.Duration
}

func NewEmailService(provider email.Provider, composer *email.Composer, timeout time.Duration) EmailService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EmailServiceImpl{
		provider: provider,
		composer: composer,
		timeout:  timeout,
	}
}

func (s *EmailServiceImpl) SendWelcomeAsync(ctx context.Context, user *models.User) {
	// The request may finish first; keep its values (request id) but not its deadline.
	detached := context.WithoutCancel(ctx)
	recipient := email.Recipient{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	go func() {
		ctx, cancel := context.WithTimeout(detached, s.timeout)
		defer cancel()

		if err := s.provider.Validate(); err != nil {
			logger.CtxWarn(ctx, "welcome email skipped", "reason", err.Error())
			return
		}

		msg, err := s.composer.Welcome(recipient)
		if err == nil {
			err = s.provider.Send(ctx, msg)
		}
		metrics.RecordEmail(email.KindWelcome, err)
		logger.WorkerLog(ctx, "welcome_email", "send", err)
	}()
}

func (s *EmailServiceImpl) SendContact(ctx context.Context, req email.ContactRequest) error {
	if err := s.provider.Validate(); err != nil {
		return apperrors.ErrEmailNotConfigured.WithError(err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.provider.Send(sendCtx, s.composer.Contact(req))
	metrics.RecordEmail(email.KindContact, err)
	if errors.Is(err, email.ErrNotConfigured) {
		return apperrors.ErrEmailNotConfigured.WithError(err)
	}
	if err != nil {
		logger.CtxWithError(ctx, "contact email failed", err, "tutor_email", req.TutorEmail)
		return apperrors.ErrEmailSendFailed.WithError(err)
	}

	logger.CtxInfo(ctx, "contact email sent", "tutor_email", req.TutorEmail)
	return nil
}
