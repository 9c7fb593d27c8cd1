package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps each object as one document: {key, content_type, data}.
// Suits the small-PDF workload; objects above the 16MB document limit are
// rejected upstream by the upload size ceiling anyway.
type MongoStore struct {
	coll *mongo.Collection
}

type mongoObject struct {
	Key         string `bson:"key"`
	ContentType string `bson:"content_type"`
	Data        []byte `bson:"data"`
}

func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", ErrStorage, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%w: ping: %v", ErrStorage, err)
	}

	return &MongoStore{coll: client.Database(database).Collection(collection)}, nil
}

func (m *MongoStore) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: read upload %s: %v", ErrStorage, key, err)
	}
	if size >= 0 && int64(len(data)) != size {
		return fmt.Errorf("%w: upload %s: size mismatch", ErrStorage, key)
	}

	_, err = m.coll.ReplaceOne(ctx,
		bson.M{"key": key},
		mongoObject{Key: key, ContentType: contentType, Data: data},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: upload %s: %v", ErrStorage, key, err)
	}
	return nil
}

func (m *MongoStore) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	var obj mongoObject
	err := m.coll.FindOne(ctx, bson.M{"key": key}).Decode(&obj)
	if err == mongo.ErrNoDocuments {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: download %s: %v", ErrStorage, key, err)
	}

	return io.NopCloser(bytes.NewReader(obj.Data)), int64(len(obj.Data)), nil
}

func (m *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"key": key}); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrStorage, key, err)
	}
	return nil
}

func (m *MongoStore) List(ctx context.Context) ([]string, error) {
	cur, err := m.coll.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"key": 1}))
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStorage, err)
	}
	defer cur.Close(ctx)

	var keys []string
	for cur.Next(ctx) {
		var obj mongoObject
		if err := cur.Decode(&obj); err != nil {
			return nil, fmt.Errorf("%w: list decode: %v", ErrStorage, err)
		}
		keys = append(keys, obj.Key)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStorage, err)
	}

	return keys, nil
}
