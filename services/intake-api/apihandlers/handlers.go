package apihandlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	emailsending "github.com/silentraja/Medskls/pkg/messaging/email-sending"
	messagingTypes "github.com/silentraja/Medskls/pkg/messaging/types"

	intakeDB "github.com/silentraja/Medskls/pkg/db/intake"

	mw "github.com/silentraja/Medskls/pkg/apihelpers/middlewares"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	intakeDBConn   *intakeDB.IntakeDBService
	tokenSignKey   string
	tokenExpiresIn time.Duration
	notifier       *emailsending.SubmissionNotifier
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	intakeDBConn *intakeDB.IntakeDBService,
	messagingConfigs messagingTypes.MessagingConfigs,
) *HttpEndpoints {
	return &HttpEndpoints{
		intakeDBConn:   intakeDBConn,
		tokenSignKey:   tokenSignKey,
		tokenExpiresIn: tokenExpiresIn,
		notifier:       emailsending.NewSubmissionNotifier(messagingConfigs),
	}
}

func (h *HttpEndpoints) AddIntakeAPI(rg *gin.RouterGroup) {
	intakeGroup := rg.Group("/intake")

	intakeGroup.GET("/questions", h.getIntakeQuestions)

	intakeGroup.POST("/uploads", mw.RequirePayload(), h.uploadPatientImages)

	intakeGroup.POST("/applications",
		mw.RequirePayload(),
		mw.GetPatientUserJWTIfPresent(h.tokenSignKey),
		h.submitPatientApplication)

	draftsGroup := intakeGroup.Group("/drafts")
	draftsGroup.Use(mw.RequireSessionID())
	{
		draftsGroup.POST("", mw.RequirePayload(), h.savePendingDraft)
		draftsGroup.POST("/take", mw.RequirePayload(), h.takePendingDraft)
		draftsGroup.GET("/exists", h.pendingDraftExists)
	}
}
