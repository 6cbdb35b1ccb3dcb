package signup

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/avlorenzana/jobtrail/internal/domain/identity"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type SignUpUseCase struct {
	identitySvc identity.Service
	logger      logger.Logger
}

func NewSignUpUseCase(svc identity.Service, log logger.Logger) *SignUpUseCase {
	return &SignUpUseCase{
		identitySvc: svc,
		logger:      log,
	}
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

type SignUpOutput struct {
	Identity *identity.Identity
}

var tracer = otel.Tracer("signup_usecase")

func (uc *SignUpUseCase) Execute(ctx context.Context, input SignUpInput) (*SignUpOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, apperror.NewInvalidInput("email and password are required", nil)
	}

	// Password policy, duplicate detection and account custody all belong
	// to the provider.
	id, err := uc.identitySvc.SignUp(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		span.RecordError(err)
		uc.logger.Warn("Sign up failed", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.String("identity_id", id.ID))
	uc.logger.Info("Account created", zap.String("identity_id", id.ID))
	return &SignUpOutput{Identity: id}, nil
}
