package intake

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/silentraja/Medskls/pkg/survey/types"
)

// SavePatientApplication persists one completed submission and returns the
// stored application with its assigned id.
func (dbService *IntakeDBService) SavePatientApplication(application types.PatientApplication) (types.PatientApplication, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if application.UserID < 1 {
		return application, errors.New("userId must be set")
	}
	if application.SubmittedAt.IsZero() {
		application.SubmittedAt = time.Now()
	}
	application.ID = ""

	res, err := dbService.collectionApplications().InsertOne(ctx, application)
	if err != nil {
		return application, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		application.ID = id.Hex()
	}
	return application, nil
}

// GetPatientApplications returns all stored applications for one user, newest
// first.
func (dbService *IntakeDBService) GetPatientApplications(userID int64) ([]types.PatientApplication, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	cur, err := dbService.collectionApplications().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	applications := []types.PatientApplication{}
	if err := cur.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}
