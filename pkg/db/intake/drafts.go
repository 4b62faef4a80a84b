package intake

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Drafts older than this are expired by the TTL index (in seconds).
const REMOVE_DRAFTS_AFTER = 60 * 60 * 24 * 30

// StoredDraft wraps one durable wizard snapshot. Payload is kept as the raw
// JSON the client handed in so the engine alone defines the snapshot format.
type StoredDraft struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Key       string    `bson:"key" json:"key"`
	Payload   []byte    `bson:"payload" json:"payload"`
	SavedAt   time.Time `bson:"savedAt" json:"savedAt"`
}

// SaveDraft upserts the snapshot stored under (sessionID, key). A later save
// for the same key replaces the earlier one.
func (dbService *IntakeDBService) SaveDraft(sessionID string, key string, payload []byte) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"sessionId": sessionID, "key": key}
	update := bson.M{"$set": bson.M{
		"payload": payload,
		"savedAt": time.Now(),
	}}
	_, err := dbService.collectionDrafts().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// TakeDraft atomically fetches and deletes the snapshot stored under
// (sessionID, key), so a draft can be resumed at most once. Returns
// mongo.ErrNoDocuments when nothing is stored.
func (dbService *IntakeDBService) TakeDraft(sessionID string, key string) ([]byte, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"sessionId": sessionID, "key": key}
	var draft StoredDraft
	if err := dbService.collectionDrafts().FindOneAndDelete(ctx, filter).Decode(&draft); err != nil {
		return nil, err
	}
	return draft.Payload, nil
}

// DraftExists reports whether a snapshot is currently stored under
// (sessionID, key) without consuming it.
func (dbService *IntakeDBService) DraftExists(sessionID string, key string) (bool, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"sessionId": sessionID, "key": key}
	count, err := dbService.collectionDrafts().CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsErrNoDraft reports whether err means no draft was stored.
func IsErrNoDraft(err error) bool {
	return err == mongo.ErrNoDocuments
}
