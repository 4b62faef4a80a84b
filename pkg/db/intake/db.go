package intake

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/silentraja/Medskls/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_QUESTIONS    = "intakeQuestions"
	COLLECTION_NAME_APPLICATIONS = "patientApplications"
	COLLECTION_NAME_DRAFTS       = "intakeDrafts"
	COLLECTION_NAME_FILE_INFOS   = "patientFileInfos"
)

type IntakeDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBName          string
}

func NewIntakeDBService(configs db.DBConfig) (*IntakeDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()
	if err != nil {
		return nil, err
	}

	intakeDBSc := &IntakeDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBName:          configs.DBName,
	}

	if err := intakeDBSc.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for intake DB", slog.String("error", err.Error()))
	}

	return intakeDBSc, nil
}

func (dbService *IntakeDBService) collectionQuestions() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection(COLLECTION_NAME_QUESTIONS)
}

func (dbService *IntakeDBService) collectionApplications() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection(COLLECTION_NAME_APPLICATIONS)
}

func (dbService *IntakeDBService) collectionDrafts() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection(COLLECTION_NAME_DRAFTS)
}

func (dbService *IntakeDBService) collectionFileInfos() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection(COLLECTION_NAME_FILE_INFOS)
}

func (dbService *IntakeDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *IntakeDBService) ensureIndexes() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionQuestions().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "questionId", Value: 1},
				{Key: "optionId", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "displayOrder", Value: 1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = dbService.collectionApplications().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "submittedAt", Value: 1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = dbService.collectionDrafts().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "sessionId", Value: 1},
				{Key: "key", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "savedAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(REMOVE_DRAFTS_AFTER),
		},
	})
	if err != nil {
		return err
	}

	_, err = dbService.collectionFileInfos().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "path", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "uploadedAt", Value: 1},
			},
		},
	})
	return err
}
