package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindhaven/mindhaven-backend/internal/database"
)

// ChatExchange is one message/reply pair from the supportive chat responder.
// Transcripts are kept for product review only; the responder itself is
// stateless and never reads them back.
type ChatExchange struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message   string             `bson:"message" json:"message"`
	Reply     string             `bson:"reply" json:"reply"`
	Matched   bool               `bson:"matched" json:"matched"`
	Transport string             `bson:"transport" json:"transport"` // "http" or "ws"
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// EnsureChatIndexes configures indexes for the chat_exchanges collection.
// Called on startup from main after Mongo has connected.
func EnsureChatIndexes(ctx context.Context) error {
	col := database.MongoDB.Collection("chat_exchanges")

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_timestamp"),
		},
	}

	for _, m := range indexModels {
		if _, err := col.Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// SaveChatExchangeAsync persists an exchange to MongoDB asynchronously.
// Fire-and-forget: the chat reply never waits on transcript persistence.
func SaveChatExchangeAsync(exchange ChatExchange) {
	if database.MongoDB == nil {
		return
	}
	go func(ex ChatExchange) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if ex.Timestamp.IsZero() {
			ex.Timestamp = time.Now().UTC()
		}

		col := database.MongoDB.Collection("chat_exchanges")
		_, _ = col.InsertOne(ctx, ex)
	}(exchange)
}

// LoadChatExchanges returns recent exchanges, newest first.
func LoadChatExchanges(ctx context.Context, before *time.Time, limit int64) ([]ChatExchange, bool, error) {
	if database.MongoDB == nil {
		return nil, false, errors.New("mongodb not connected")
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	col := database.MongoDB.Collection("chat_exchanges")

	filter := bson.M{}
	if before != nil {
		filter["timestamp"] = bson.M{"$lt": before.UTC()}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit + 1)

	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, false, err
	}
	defer cur.Close(ctx)

	var exchanges []ChatExchange
	for cur.Next(ctx) {
		var ex ChatExchange
		if err := cur.Decode(&ex); err != nil {
			continue
		}
		exchanges = append(exchanges, ex)
	}
	if err := cur.Err(); err != nil {
		return nil, false, err
	}

	hasMore := int64(len(exchanges)) > limit
	if hasMore {
		exchanges = exchanges[:len(exchanges)-1]
	}

	return exchanges, hasMore, nil
}
