package emailsending

import (
	"context"
	"errors"
	"log/slog"

	"github.com/silentraja/Medskls/pkg/survey/wizardengine"

	messagingTypes "github.com/silentraja/Medskls/pkg/messaging/types"
)

// SubmissionNotifier sends the new-application email to the clinician roles
// configured for notifications. It satisfies the wizard engine's Notifier.
type SubmissionNotifier struct {
	Configs messagingTypes.MessagingConfigs
}

func NewSubmissionNotifier(configs messagingTypes.MessagingConfigs) *SubmissionNotifier {
	return &SubmissionNotifier{Configs: configs}
}

func (n *SubmissionNotifier) NotifySubmission(ctx context.Context, notification wizardengine.Notification) (int, error) {
	recipients := n.Configs.RecipientsForRoles(notification.RecipientRoles)
	if len(recipients) < 1 {
		return 0, errors.New("no notification recipients configured")
	}

	outgoing := &messagingTypes.OutgoingEmail{
		MessageType: messagingTypes.EMAIL_TYPE_NEW_PATIENT_APPLICATION,
		To:          recipients,
		Subject:     notification.Subject,
		Content:     notification.Body,
		HighPrio:    true,
	}
	if err := SendOutgoingEmail(outgoing); err != nil {
		return 0, err
	}

	slog.Info("submission notification sent",
		slog.String("patient", notification.PatientName),
		slog.Int("recipients", len(recipients)))
	return len(recipients), nil
}
