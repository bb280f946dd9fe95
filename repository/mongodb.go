package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mapleleafu/cheesechase/config"
	"github.com/mapleleafu/cheesechase/models"
)

var ErrMatchNotFound = errors.New("match not found")

func ConnectMongoDB(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// EventLog stores each finished match with its full journal, keyed by match id.
type EventLog struct {
	collection *mongo.Collection
}

func NewEventLog(client *mongo.Client, database string) *EventLog {
	return &EventLog{collection: client.Database(database).Collection("match_sessions")}
}

func (l *EventLog) Name() string { return "mongodb" }

func (l *EventLog) SaveMatch(ctx context.Context, rec models.MatchRecord) error {
	if _, err := l.collection.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert match session %s: %w", rec.ID, err)
	}
	return nil
}

func (l *EventLog) FindMatch(ctx context.Context, id string) (models.MatchRecord, error) {
	var rec models.MatchRecord
	err := l.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MatchRecord{}, ErrMatchNotFound
	}
	if err != nil {
		return models.MatchRecord{}, fmt.Errorf("find match session %s: %w", id, err)
	}
	return rec, nil
}
