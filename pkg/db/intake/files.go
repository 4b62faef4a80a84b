package intake

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PatientFileInfo records one stored upload so files on disk can be traced
// back to the submission flow that produced them.
type PatientFileInfo struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty"`
	SubjectName string    `bson:"subjectName" json:"subjectName"`
	Title       string    `bson:"title" json:"title"`
	FileName    string    `bson:"fileName" json:"fileName"`
	FileType    string    `bson:"fileType" json:"fileType"`
	Path        string    `bson:"path" json:"path"`
	Size        int64     `bson:"size" json:"size"`
	UploadedAt  time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

func (dbService *IntakeDBService) SaveFileInfo(fileInfo PatientFileInfo) (PatientFileInfo, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if fileInfo.UploadedAt.IsZero() {
		fileInfo.UploadedAt = time.Now()
	}
	fileInfo.ID = ""

	res, err := dbService.collectionFileInfos().InsertOne(ctx, fileInfo)
	if err != nil {
		return fileInfo, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		fileInfo.ID = id.Hex()
	}
	return fileInfo, nil
}

func (dbService *IntakeDBService) GetFileInfoByPath(path string) (PatientFileInfo, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var fileInfo PatientFileInfo
	err := dbService.collectionFileInfos().FindOne(ctx, bson.M{"path": path}).Decode(&fileInfo)
	return fileInfo, err
}

func (dbService *IntakeDBService) GetFileInfosForSubject(subjectName string) ([]PatientFileInfo, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cur, err := dbService.collectionFileInfos().Find(ctx, bson.M{"subjectName": subjectName}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	fileInfos := []PatientFileInfo{}
	if err := cur.All(ctx, &fileInfos); err != nil {
		return nil, err
	}
	return fileInfos, nil
}
