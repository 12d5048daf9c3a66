package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/graphcanvas/pkg/errors"
)

// Mongo defaults.
const (
	DefaultDatabase   = "graphcanvas"
	DefaultCollection = "graphs"
)

// MongoStore keeps records in a MongoDB collection with the record ID as _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	now    func() time.Time
}

// NewMongoStore connects to uri and pings the primary. Empty database and
// collection names use the defaults.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	if uri == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "mongo uri is required")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect mongo")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongo")
	}
	if database == "" {
		database = DefaultDatabase
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return NewMongoStoreFromCollection(client, client.Database(database).Collection(collection)), nil
}

// NewMongoStoreFromCollection wraps an existing collection. The store takes
// ownership of client and disconnects it on Close.
func NewMongoStoreFromCollection(client *mongo.Client, coll *mongo.Collection) *MongoStore {
	return &MongoStore{client: client, coll: coll, now: time.Now}
}

func (s *MongoStore) List(ctx context.Context) ([]*Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list graphs")
	}
	var out []*Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode graphs")
	}
	return out, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var r Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "get graph %s", id)
	}
	return &r, nil
}

func (s *MongoStore) Create(ctx context.Context, r *Record) (*Record, error) {
	rec, err := newRecord(r, s.now())
	if err != nil {
		return nil, err
	}
	// Mongo stores times at millisecond precision.
	rec.CreatedAt = rec.CreatedAt.Truncate(time.Millisecond)
	rec.UpdatedAt = rec.CreatedAt
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "insert graph")
	}
	return rec, nil
}

func (s *MongoStore) Update(ctx context.Context, r *Record) (*Record, error) {
	existing, err := s.Get(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	rec, err := applyUpdate(existing, r, s.now())
	if err != nil {
		return nil, err
	}
	rec.UpdatedAt = rec.UpdatedAt.Truncate(time.Millisecond)
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "update graph %s", rec.ID)
	}
	if res.MatchedCount == 0 {
		return nil, notFound(rec.ID)
	}
	return rec, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete graph %s", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
