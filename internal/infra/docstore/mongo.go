package docstore

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to MongoDB and verifies the connection with a ping.
func NewMongo(ctx context.Context, uri, database string, timeout time.Duration) (Store, error) {
	opts := options.Client().ApplyURI(uri)
	if timeout > 0 {
		opts.SetTimeout(timeout)
	}
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &mongoStore{client: client, db: client.Database(database)}, nil
}

func (s *mongoStore) Collection(name string) Collection {
	return &mongoCollection{c: s.db.Collection(name)}
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type mongoCollection struct {
	c *mongo.Collection
}

func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func mongoFilter(f Filter) bson.M {
	m := bson.M{}
	for k, v := range f {
		m[k] = v
	}
	return m
}

// rawID extracts the _id of a raw document as a string.
func rawID(raw bson.Raw) string {
	v := raw.Lookup("_id")
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if s, ok := v.StringValueOK(); ok {
		return s
	}
	return ""
}

func decodeRaw(raw bson.Raw, dst any) error {
	if err := bson.Unmarshal(raw, dst); err != nil {
		return err
	}
	if ided, ok := dst.(Identified); ok {
		ided.SetID(rawID(raw))
	}
	return nil
}

func (m *mongoCollection) Find(ctx context.Context, q Query, out any) error {
	slice, err := sliceElem(out)
	if err != nil {
		return err
	}

	opts := options.Find()
	if q.SortDesc != "" {
		if err := checkField(q.SortDesc); err != nil {
			return err
		}
		opts.SetSort(bson.D{{Key: q.SortDesc, Value: -1}})
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := m.c.Find(ctx, mongoFilter(q.Filter), opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	elemType := slice.Type().Elem()
	result := reflect.MakeSlice(slice.Type(), 0, 8)
	for cur.Next(ctx) {
		isPtr := elemType.Kind() == reflect.Pointer
		base := elemType
		if isPtr {
			base = elemType.Elem()
		}
		elem := reflect.New(base)
		if err := decodeRaw(cur.Current, elem.Interface()); err != nil {
			return err
		}
		if isPtr {
			result = reflect.Append(result, elem)
		} else {
			result = reflect.Append(result, elem.Elem())
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	slice.Set(result)
	return nil
}

func (m *mongoCollection) FindOne(ctx context.Context, filter Filter, out any) error {
	raw, err := m.c.FindOne(ctx, mongoFilter(filter)).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return decodeRaw(raw, out)
}

func (m *mongoCollection) Count(ctx context.Context, filter Filter) (int64, error) {
	return m.c.CountDocuments(ctx, mongoFilter(filter))
}

func (m *mongoCollection) Insert(ctx context.Context, doc any) (string, error) {
	res, err := m.c.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return insertedID(res.InsertedID), nil
}

func (m *mongoCollection) InsertMany(ctx context.Context, docs []any) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	res, err := m.c.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, insertedID(id))
	}
	return ids, nil
}

func insertedID(v any) string {
	if oid, ok := v.(bson.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(v)
}

func (m *mongoCollection) Set(ctx context.Context, id string, fields map[string]any) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	fields = stripID(fields)
	if len(fields) == 0 {
		return m.c.CountDocuments(ctx, bson.M{"_id": oid})
	}
	res, err := m.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *mongoCollection) Upsert(ctx context.Context, filter Filter, fields map[string]any) error {
	fields = stripID(fields)
	if len(fields) == 0 {
		return nil
	}
	_, err := m.c.UpdateOne(ctx, mongoFilter(filter), bson.M{"$set": fields}, options.UpdateOne().SetUpsert(true))
	return err
}

func (m *mongoCollection) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := m.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *mongoCollection) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	res, err := m.c.DeleteMany(ctx, mongoFilter(filter))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
