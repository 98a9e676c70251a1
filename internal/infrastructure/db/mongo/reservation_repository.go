package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

const reservationsCollection = "reservations"

type ReservationRepository struct {
	coll *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{coll: db.Collection(reservationsCollection)}
}

type mongoReservation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	Name        string             `bson:"name"`
	Role        string             `bson:"role"`
	StartDate   string             `bson:"start_date"`
	EndDate     string             `bson:"end_date"`
	Status      string             `bson:"status"`
	Workstation string             `bson:"workstation,omitempty"`
	Renewals    *int               `bson:"renewals,omitempty"`
}

func toDoc(r *domain.Reservation) mongoReservation {
	return mongoReservation{
		CreatedAt:   r.CreatedAt,
		Name:        r.Name,
		Role:        r.Role,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      string(r.Status),
		Workstation: r.Workstation,
		Renewals:    r.Renewals,
	}
}

func fromDoc(m mongoReservation) *domain.Reservation {
	return &domain.Reservation{
		ID:          m.ID.Hex(),
		CreatedAt:   m.CreatedAt,
		Name:        m.Name,
		Role:        m.Role,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      domain.ReservationStatus(m.Status),
		Workstation: m.Workstation,
		Renewals:    m.Renewals,
	}
}

// Create inserts a new reservation document and fills in the assigned id.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, toDoc(res))
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		res.ID = oid.Hex()
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoReservation
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return fromDoc(m), nil
}

// ListByStatus returns reservations with the given status ordered by role
// ascending then creation time ascending.
func (r *ReservationRepository) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	sort := bson.D{{Key: "role", Value: 1}, {Key: "created_at", Value: 1}}
	return r.list(ctx, bson.M{"status": string(status)}, sort)
}

// ListAll returns every reservation, newest first.
func (r *ReservationRepository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	return r.list(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *ReservationRepository) list(ctx context.Context, filter bson.M, sort bson.D) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Reservation
	for cursor.Next(ctx) {
		var m mongoReservation
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode reservation: %w", err)
		}
		out = append(out, fromDoc(m))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}

// Update replaces the mutable fields of an existing reservation.
func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	oid, err := primitive.ObjectIDFromHex(res.ID)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":      string(res.Status),
		"workstation": res.Workstation,
		"start_date":  res.StartDate,
		"end_date":    res.EndDate,
		"renewals":    res.Renewals,
	}}

	result, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// DeleteByStatus removes every reservation with the given status.
func (r *ReservationRepository) DeleteByStatus(ctx context.Context, status domain.ReservationStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("delete reservations by status: %w", err)
	}
	return result.DeletedCount, nil
}

// EnsureIndexes creates the indexes backing the status listings.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "role", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
