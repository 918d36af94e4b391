package email

import "ticketdesk/internal/shared/logger"

// NoopEmailService is used when SMTP delivery is not configured. It logs the
// would-be delivery so local development still shows the flow.
type NoopEmailService struct {
	logger logger.Interface
}

func NewNoopEmailService(logger logger.Interface) *NoopEmailService {
	return &NoopEmailService{logger: logger}
}

func (s *NoopEmailService) SendPasswordResetEmail(to, token string) error {
	s.logger.Infow("email delivery disabled, skipping password reset email", "to", to)
	return nil
}
