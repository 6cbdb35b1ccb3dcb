package notification

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/avlorenzana/jobtrail/internal/application/service"
	"github.com/avlorenzana/jobtrail/internal/domain/application"
	"github.com/avlorenzana/jobtrail/internal/domain/identity"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

// DispatchUseCase runs one notification request through resolve caller →
// check provider configured → build message → send. An unconfigured mail
// provider ends the pipeline in a skip, which is a success: email is an
// optional feature and the CRUD operation it reports on already happened.
type DispatchUseCase struct {
	identitySvc identity.Service
	mailer      service.Mailer
	logger      logger.Logger
}

func NewDispatchUseCase(svc identity.Service, mailer service.Mailer, log logger.Logger) *DispatchUseCase {
	return &DispatchUseCase{
		identitySvc: svc,
		mailer:      mailer,
		logger:      log,
	}
}

type DispatchInput struct {
	AuthorizationHeader string
	Kind                string
	Application         application.JobApplication
}

type DispatchOutput struct {
	Sent    bool
	Skipped bool
	Message string
}

var tracer = otel.Tracer("notification_usecase")

func (uc *DispatchUseCase) Execute(ctx context.Context, input DispatchInput) (*DispatchOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	caller, err := uc.identitySvc.ResolveCaller(ctx, input.AuthorizationHeader)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("caller_id", caller.ID))

	if !uc.mailer.Configured() {
		uc.logger.Info("Mail provider not configured, notification skipped",
			zap.String("caller_id", caller.ID), zap.String("kind", input.Kind))
		return &DispatchOutput{
			Skipped: true,
			Message: "Email service not configured, notification skipped",
		}, nil
	}

	kind, ok := ParseEventKind(input.Kind)
	if !ok {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown notification type '%s'", input.Kind), nil)
	}

	msg, err := buildMessage(kind, input.Application)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to build notification message", err)
	}

	if err := uc.mailer.Send(ctx, caller.Email, msg.Subject, msg.HTML); err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to send notification email", err, zap.String("caller_id", caller.ID))
		return nil, err
	}

	uc.logger.Info("Email notification sent", zap.String("caller_id", caller.ID), zap.String("kind", string(kind)))
	return &DispatchOutput{
		Sent:    true,
		Message: "Email notification sent successfully",
	}, nil
}
