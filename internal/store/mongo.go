package store

import (
	"context"
	"fmt"
	"time"

	"budgetmaster/internal/ledger"
	"budgetmaster/internal/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type dateSetter interface {
	SetRecordDate(t *time.Time)
}

type amountSetter interface {
	SetRecordAmount(v float64)
}

type mongoBackend[T any, PT Owned[T]] struct {
	coll *mongo.Collection
	name string
}

// NewMongoBackend returns a document backend for the model T. Documents are
// stored in the collection named by T's TableName.
func NewMongoBackend[T any, PT Owned[T]](db *mongo.Database) Backend[T] {
	name := collectionOf[T, PT]()
	return &mongoBackend[T, PT]{coll: db.Collection(name), name: name}
}

func (b *mongoBackend[T, PT]) Collection() string { return b.name }

func (b *mongoBackend[T, PT]) Add(ctx context.Context, ownerID string, rec *T) (string, error) {
	p := PT(rec)
	p.SetOwnerID(ownerID)
	p.Prepare(time.Now().UTC())
	if _, err := b.coll.InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("insert into %s: %w", b.name, err)
	}
	return p.GetID(), nil
}

func (b *mongoBackend[T, PT]) List(ctx context.Context, ownerID string) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := b.coll.Find(ctx, bson.D{{Key: "owner_id", Value: ownerID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", b.name, err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	for cursor.Next(ctx) {
		rec, err := decodeTolerant[T, PT](cursor.Current)
		if err != nil {
			logger.Get().Warnw("Skipping undecodable document",
				"collection", b.name,
				"owner_id", ownerID,
				"error", err,
			)
			continue
		}
		out = append(out, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error on %s: %w", b.name, err)
	}
	return out, nil
}

func (b *mongoBackend[T, PT]) Delete(ctx context.Context, ownerID, id string) error {
	filter := bson.D{
		{Key: "_id", Value: idFilter(id)},
		{Key: "owner_id", Value: ownerID},
	}
	result, err := b.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", b.name, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// idFilter matches both string IDs and ObjectIDs. ObjectIDs come from
// documents imported with their original driver-generated ids.
func idFilter(id string) any {
	if oid, err := bson.ObjectIDFromHex(id); err == nil {
		return bson.D{{Key: "$in", Value: bson.A{id, oid}}}
	}
	return id
}

// legacyKeys maps the camelCase field names of imported documents to the
// stored names. A document only becomes visible once it also has an owner_id.
var legacyKeys = map[string]string{
	"periodType": "period_type",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"ownerId":    "owner_id",
}

// decodeTolerant decodes a stored document into T. The date and amount
// fields are decoded loosely: a missing or unparseable date yields an undated
// record, and a non-numeric amount yields zero. Neither is an error.
// camelCase keys are renamed unless the stored name is also present.
func decodeTolerant[T any, PT Owned[T]](raw bson.Raw) (T, error) {
	var rec T

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return rec, err
	}

	present := make(map[string]bool, len(doc))
	for _, e := range doc {
		present[e.Key] = true
	}
	for i, e := range doc {
		if to, ok := legacyKeys[e.Key]; ok && !present[to] {
			doc[i].Key = to
		}
	}

	var (
		rawDate, rawAmount any
		hasAmount          bool
	)
	kept := make(bson.D, 0, len(doc))
	for _, e := range doc {
		switch e.Key {
		case "date":
			rawDate = e.Value
		case "amount":
			rawAmount, hasAmount = e.Value, true
		case "_id":
			if oid, ok := e.Value.(bson.ObjectID); ok {
				e.Value = oid.Hex()
			}
			kept = append(kept, e)
		default:
			kept = append(kept, e)
		}
	}

	data, err := bson.Marshal(kept)
	if err != nil {
		return rec, err
	}
	if err := bson.Unmarshal(data, &rec); err != nil {
		return rec, err
	}

	p := any(PT(&rec))
	if s, ok := p.(dateSetter); ok {
		s.SetRecordDate(coerceDate(rawDate))
	}
	if s, ok := p.(amountSetter); ok && hasAmount {
		s.SetRecordAmount(ledger.CoerceAmount(normalizeNumber(rawAmount)))
	}
	return rec, nil
}

func coerceDate(v any) *time.Time {
	var t time.Time
	switch d := v.(type) {
	case bson.DateTime:
		t = d.Time().UTC()
	case time.Time:
		t = d.UTC()
	case string:
		parsed, err := ledger.ParseDate(d)
		if err != nil {
			return nil
		}
		t = parsed
	default:
		return nil
	}
	if t.IsZero() {
		return nil
	}
	return &t
}

func normalizeNumber(v any) any {
	if d, ok := v.(bson.Decimal128); ok {
		return d.String()
	}
	return v
}

// EnsureIndexes creates the owner lookup index on each named collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database, collections ...string) error {
	for _, name := range collections {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("create index on %s: %w", name, err)
		}
	}
	return nil
}
