package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	smtpclient "github.com/silentraja/Medskls/pkg/smtp-client"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	apiKeys             []string
	highPrioSmtpClients *smtpclient.SmtpClients
	smtpClients         *smtpclient.SmtpClients
}

func NewHTTPHandler(
	apiKeys []string,
	highPrioSmtpClients *smtpclient.SmtpClients,
	smtpClients *smtpclient.SmtpClients,
) *HttpEndpoints {
	return &HttpEndpoints{
		apiKeys:             apiKeys,
		highPrioSmtpClients: highPrioSmtpClients,
		smtpClients:         smtpClients,
	}
}
