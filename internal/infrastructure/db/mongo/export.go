package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Export is a point-in-time dump of the two persisted collections.
type Export struct {
	ExportedAt   time.Time `json:"exported_at"`
	Users        []bson.M  `json:"users"`
	Reservations []bson.M  `json:"reservations"`
}

// Dump reads both collections in full. Users are projected without the
// password hash; reservations are returned as stored.
func Dump(ctx context.Context, db *mongo.Database) (*Export, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	users, err := readAll(ctx, db.Collection(usersCollection),
		options.Find().SetProjection(bson.M{"password_hash": 0}))
	if err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}

	reservations, err := readAll(ctx, db.Collection(reservationsCollection), options.Find())
	if err != nil {
		return nil, fmt.Errorf("export reservations: %w", err)
	}

	return &Export{
		ExportedAt:   time.Now().UTC(),
		Users:        users,
		Reservations: reservations,
	}, nil
}

func readAll(ctx context.Context, coll *mongo.Collection, opts *options.FindOptions) ([]bson.M, error) {
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Diagnostics describes the datastore as seen from the running process.
type Diagnostics struct {
	Database    string           `json:"database"`
	PingOK      bool             `json:"ping_ok"`
	PingError   string           `json:"ping_error,omitempty"`
	Collections map[string]int64 `json:"collections"`
	ServerTime  time.Time        `json:"server_time"`
}

// Diagnose pings the datastore and counts both collections.
func Diagnose(ctx context.Context, db *mongo.Database) *Diagnostics {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	d := &Diagnostics{
		Database:    db.Name(),
		Collections: make(map[string]int64),
		ServerTime:  time.Now().UTC(),
	}

	if err := db.Client().Ping(ctx, nil); err != nil {
		d.PingError = err.Error()
		return d
	}
	d.PingOK = true

	for _, name := range []string{usersCollection, reservationsCollection} {
		n, err := db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			d.Collections[name] = -1
			continue
		}
		d.Collections[name] = n
	}
	return d
}
