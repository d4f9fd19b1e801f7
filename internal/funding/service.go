package funding

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/creditlens/internal/auth"
	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/session"
)

// ErrSubmitFailed wraps every error returned by the funding endpoint.
var ErrSubmitFailed = errors.New("failed to submit application")

// Submitter posts an application to the remote API.
type Submitter interface {
	SubmitFundingApplication(ctx context.Context, sess session.Session, app models.FundingApplication) error
}

// SessionRestorer returns the logged-in user's state, if any.
type SessionRestorer interface {
	Restore(ctx context.Context) (auth.State, error)
}

// Receipt describes how an application was submitted.
type Receipt struct {
	Guest    bool
	Username string
}

// Service validates and submits funding applications.
type Service struct {
	api    Submitter
	auth   SessionRestorer
	logger logging.Logger
}

// NewService creates a funding Service.
func NewService(api Submitter, restorer SessionRestorer, logger logging.Logger) *Service {
	return &Service{api: api, auth: restorer, logger: logger}
}

// Submit validates app and posts it. Unless guest is set, the stored session
// is used when it can be restored; otherwise the application goes out as a
// guest submission.
func (s *Service) Submit(ctx context.Context, app models.FundingApplication, guest bool) (Receipt, error) {
	app = Normalize(app)
	if err := Validate(app); err != nil {
		return Receipt{}, err
	}

	var sess session.Session
	receipt := Receipt{Guest: true}
	if !guest {
		state, err := s.auth.Restore(ctx)
		switch {
		case err == nil:
			sess = state.Session
			receipt = Receipt{Username: state.User.Username}
		case errors.Is(err, auth.ErrNotAuthenticated), errors.Is(err, auth.ErrSessionExpired):
			s.logger.Info("No valid session, submitting as guest", logging.F("reason", err.Error()))
		default:
			return Receipt{}, err
		}
	}

	if err := s.api.SubmitFundingApplication(ctx, sess, app); err != nil {
		return Receipt{}, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	s.logger.Info("Submitted funding application",
		logging.F("guest", receipt.Guest),
		logging.F(logging.FieldUsername, receipt.Username))
	return receipt, nil
}
