package intake

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/silentraja/Medskls/pkg/survey/types"
)

// GetQuestionAndOptionRows returns the full flat question catalogue in stored
// display order. Grouping into questions happens in the engine, not here.
func (dbService *IntakeDBService) GetQuestionAndOptionRows() ([]types.QuestionRow, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "displayOrder", Value: 1},
		{Key: "questionId", Value: 1},
		{Key: "optionId", Value: 1},
	})
	if dbService.noCursorTimeout {
		opts.SetNoCursorTimeout(dbService.noCursorTimeout)
	}

	cur, err := dbService.collectionQuestions().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []types.QuestionRow{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceQuestionCatalogue swaps the whole stored catalogue for a new one.
// Used by seeding tooling, not by the patient facing endpoints.
func (dbService *IntakeDBService) ReplaceQuestionCatalogue(rows []types.QuestionRow) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if _, err := dbService.collectionQuestions().DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	docs := make([]interface{}, len(rows))
	for i, row := range rows {
		docs[i] = row
	}
	if len(docs) < 1 {
		return nil
	}
	_, err := dbService.collectionQuestions().InsertMany(ctx, docs)
	return err
}
