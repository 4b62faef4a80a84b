package emailsending

import (
	"errors"
	"log/slog"

	httpclient "github.com/silentraja/Medskls/pkg/http-client"
	messagingTypes "github.com/silentraja/Medskls/pkg/messaging/types"
	smtpclient "github.com/silentraja/Medskls/pkg/smtp-client"
)

var (
	HttpClient  *httpclient.ClientConfig
	SmtpClients *smtpclient.SmtpClients

	GlobalTemplateInfos = map[string]string{}
)

func InitMessageSendingVariables(
	newClientConfig *httpclient.ClientConfig,
	smtpClients *smtpclient.SmtpClients,
	globalTemplateInfos map[string]string,
) {
	HttpClient = newClientConfig
	SmtpClients = smtpClients
	GlobalTemplateInfos = globalTemplateInfos
}

type SendEmailReq struct {
	To              []string                        `json:"to"`
	Subject         string                          `json:"subject"`
	Content         string                          `json:"content"`
	HighPrio        bool                            `json:"highPrio"`
	HeaderOverrides *messagingTypes.HeaderOverrides `json:"headerOverrides"`
}

// SendOutgoingEmail delivers one email, preferring the direct SMTP pool and
// falling back to the SMTP bridge service when no pool is configured or the
// direct send failed.
func SendOutgoingEmail(
	outgoing *messagingTypes.OutgoingEmail,
) error {
	if len(outgoing.To) < 1 {
		return errors.New("no recipients defined")
	}

	if SmtpClients != nil {
		err := SmtpClients.SendMail(
			outgoing.To,
			outgoing.Subject,
			outgoing.Content,
			outgoing.HeaderOverrides,
		)
		if err == nil {
			return nil
		}
		slog.Warn("direct email sending failed, trying smtp bridge", slog.String("error", err.Error()))
	}

	return sendViaBridge(outgoing)
}

func sendViaBridge(outgoing *messagingTypes.OutgoingEmail) error {
	if HttpClient == nil || HttpClient.RootURL == "" {
		return errors.New("connection to smtp bridge not initialized")
	}

	sendEmailReq := SendEmailReq{
		To:              outgoing.To,
		Subject:         outgoing.Subject,
		Content:         outgoing.Content,
		HighPrio:        outgoing.HighPrio,
		HeaderOverrides: outgoing.HeaderOverrides,
	}
	resp, err := HttpClient.RunHTTPcall("/send-email", sendEmailReq)
	if err == nil && resp != nil {
		errMsg, hasError := resp["error"]
		if hasError {
			err = errors.New(errMsg.(string))
		}
	}
	return err
}
