package survey

import (
	"log/slog"
	"time"

	intakedb "github.com/silentraja/Medskls/pkg/db/intake"
	surveyTypes "github.com/silentraja/Medskls/pkg/survey/types"
	"github.com/silentraja/Medskls/pkg/survey/wizardengine"
)

var (
	intakeDBService *intakedb.IntakeDBService
	filestorePath   string
)

func Init(
	intakeDB *intakedb.IntakeDBService,
	fsPath string,
) {
	intakeDBService = intakeDB
	filestorePath = fsPath
}

// GetIntakeQuestions returns the flat rows plus the grouped view the intake
// form renders from.
func GetIntakeQuestions() ([]surveyTypes.QuestionRow, []surveyTypes.Question, error) {
	rows, err := intakeDBService.GetQuestionAndOptionRows()
	if err != nil {
		return nil, nil, err
	}
	grouped := wizardengine.GroupQuestions(rows)
	return rows, grouped.Sorted(), nil
}

// SaveApplication persists one completed submission.
func SaveApplication(submission surveyTypes.Submission) (surveyTypes.PatientApplication, error) {
	application := surveyTypes.PatientApplication{
		UserID:      submission.UserID,
		Responses:   submission.Responses,
		SubmittedAt: time.Now(),
	}
	saved, err := intakeDBService.SavePatientApplication(application)
	if err != nil {
		slog.Error("failed to save patient application", slog.Int64("userID", submission.UserID), slog.String("error", err.Error()))
		return saved, err
	}
	slog.Info("patient application saved", slog.Int64("userID", saved.UserID), slog.String("applicationID", saved.ID))
	return saved, nil
}

// GetApplicationsForUser returns the stored submissions of one patient,
// newest first.
func GetApplicationsForUser(userID int64) ([]surveyTypes.PatientApplication, error) {
	return intakeDBService.GetPatientApplications(userID)
}
