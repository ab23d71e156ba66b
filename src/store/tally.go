// Package store keeps survey tallies in MongoDB and rendered report images in Redis.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

// ErrNotFound is returned when no tallies are stored for a question.
var ErrNotFound = errors.New("no tallies stored")

// TallyDoc is one category count of one survey question.
type TallyDoc struct {
	SurveyID    string    `bson:"surveyId" json:"surveyId"`
	QuestionKey string    `bson:"questionKey" json:"questionKey"`
	Label       string    `bson:"label" json:"label"`
	Order       int       `bson:"order" json:"order"`
	Count       int       `bson:"count" json:"count"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TallyRepo handles MongoDB operations for question tallies.
type TallyRepo struct {
	tallies *mongo.Collection
}

// NewTallyRepo creates a tally repository over the "tallies" collection.
func NewTallyRepo(db *mongo.Database) *TallyRepo {
	return &TallyRepo{tallies: db.Collection("tallies")}
}

// EnsureIndexes creates the unique (surveyId, questionKey, label) index.
func (r *TallyRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.tallies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "surveyId", Value: 1}, {Key: "questionKey", Value: 1}, {Key: "label", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Load returns the stored responses of a question in their saved order.
func (r *TallyRepo) Load(ctx context.Context, surveyID, questionKey string) (survey.ResponseSet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.tallies.Find(ctx, questionFilter(surveyID, questionKey), opts)
	if err != nil {
		return survey.ResponseSet{}, fmt.Errorf("find tallies: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []TallyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return survey.ResponseSet{}, fmt.Errorf("decode tallies: %w", err)
	}
	return ResponsesFromDocs(docs)
}

// Save replaces the tallies of a question with rs. Categories missing from rs are
// removed.
func (r *TallyRepo) Save(ctx context.Context, surveyID, questionKey string, rs survey.ResponseSet) error {
	docs := DocsFromResponses(surveyID, questionKey, rs, time.Now().UTC())
	if len(docs) == 0 {
		return survey.ErrNoCategories
	}
	models := make([]mongo.WriteModel, 0, len(docs))
	for _, d := range docs {
		filter := bson.M{"surveyId": d.SurveyID, "questionKey": d.QuestionKey, "label": d.Label}
		models = append(models, mongo.NewReplaceOneModel().SetFilter(filter).SetReplacement(d).SetUpsert(true))
	}
	if _, err := r.tallies.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("write tallies: %w", err)
	}

	stale := questionFilter(surveyID, questionKey)
	stale["label"] = bson.M{"$nin": rs.Labels()}
	if _, err := r.tallies.DeleteMany(ctx, stale); err != nil {
		return fmt.Errorf("prune tallies: %w", err)
	}
	return nil
}

func questionFilter(surveyID, questionKey string) bson.M {
	return bson.M{"surveyId": surveyID, "questionKey": questionKey}
}

// DocsFromResponses lays rs out as documents, order following the set.
func DocsFromResponses(surveyID, questionKey string, rs survey.ResponseSet, at time.Time) []TallyDoc {
	docs := make([]TallyDoc, 0, rs.Len())
	for i, resp := range rs.Responses() {
		docs = append(docs, TallyDoc{
			SurveyID:    surveyID,
			QuestionKey: questionKey,
			Label:       resp.Label,
			Order:       i,
			Count:       resp.Count,
			UpdatedAt:   at,
		})
	}
	return docs
}

// ResponsesFromDocs rebuilds a response set from documents sorted by order.
func ResponsesFromDocs(docs []TallyDoc) (survey.ResponseSet, error) {
	if len(docs) == 0 {
		return survey.ResponseSet{}, ErrNotFound
	}
	out := make([]survey.Response, 0, len(docs))
	for i, d := range docs {
		if i > 0 && d.Order <= docs[i-1].Order {
			return survey.ResponseSet{}, fmt.Errorf("tally %q: order %d after %d", d.Label, d.Order, docs[i-1].Order)
		}
		out = append(out, survey.Response{Label: d.Label, Count: d.Count})
	}
	return survey.NewResponseSet(out...)
}
