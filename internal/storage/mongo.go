package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/court-monitor/scraper/internal/models"
)

const casesCollection = "cases"

// CaseRepo is the optional MongoDB sink. Cases are upserted by
// (case_no, institution_date) so re-runs over the same window refresh rather
// than duplicate records.
type CaseRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewCaseRepo(mongoURI, dbName string) (*CaseRepo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	coll := client.Database(dbName).Collection(casesCollection)

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "case_no", Value: 1}, {Key: "institution_date", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hearing_date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	// Indexes might already exist, that is fine.
	_, _ = coll.Indexes().CreateMany(ctx, indexes)

	return &CaseRepo{client: client, coll: coll}, nil
}

func (r *CaseRepo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}

func (r *CaseRepo) Upsert(ctx context.Context, c *models.Case) error {
	filter := bson.M{"case_no": c.CaseNo, "institution_date": c.InstitutionDate}
	update := bson.M{"$set": c}
	opts := options.Update().SetUpsert(true)

	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *CaseRepo) FindByDate(ctx context.Context, institutionDate string) ([]models.Case, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"institution_date": institutionDate})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cases []models.Case
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
