package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	snapshotCollectionName = "snapshots"
	mongoConnectTimeout    = 10 * time.Second
)

// MongoPersister keeps the snapshot as a single document in a snapshots
// collection, upserted on every save. The blob travels as raw JSON so the
// document shape stays identical to the file backend.
type MongoPersister struct {
	collection *mongo.Collection
}

type snapshotDoc struct {
	ID      string    `bson:"_id"`
	Data    []byte    `bson:"data"`
	SavedAt time.Time `bson:"savedAt"`
}

// ConnectMongo establishes and pings a MongoDB connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// NewMongoPersister returns a persister writing to the named database.
func NewMongoPersister(db *mongo.Database) *MongoPersister {
	return &MongoPersister{
		collection: db.Collection(snapshotCollectionName),
	}
}

func (p *MongoPersister) Load(ctx context.Context) (*Snapshot, error) {
	var doc snapshotDoc
	err := p.collection.FindOne(ctx, bson.M{"_id": SnapshotKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(doc.Data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func (p *MongoPersister) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	doc := snapshotDoc{
		ID:      SnapshotKey,
		Data:    data,
		SavedAt: time.Now().UTC(),
	}
	_, err = p.collection.ReplaceOne(
		ctx,
		bson.M{"_id": SnapshotKey},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
