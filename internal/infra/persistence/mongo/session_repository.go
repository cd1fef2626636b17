package mongo

import (
	"context"
	"time"

	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const sessionsCollection = "sessions"

// sessionRepository implements repository.SessionRepository on a Mongo
// collection with a TTL index on expiresAt.
type sessionRepository struct {
	coll *mongo.Collection
}

// SessionRepositoryParams defines the required parameters
type SessionRepositoryParams struct {
	fx.In
	fx.Lifecycle

	DB *mongo.Database
}

// NewSessionRepository is the constructor for the sessions collection repository.
func NewSessionRepository(params SessionRepositoryParams) repository.SessionRepository {
	repo := &sessionRepository{coll: params.DB.Collection(sessionsCollection)}

	params.Append(fx.Hook{
		OnStart: repo.ensureIndexes,
	})

	return repo
}

// ensureIndexes creates the TTL index that reaps expired sessions.
func (repo *sessionRepository) ensureIndexes(ctx context.Context) error {
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})

	return errors.Wrap(err, "failed to create session TTL index")
}

// FindByToken retrieves the session for the given token.
func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var session entity.Session
	if err := repo.coll.FindOne(ctx, bson.M{"_id": token}).Decode(&session); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	// The TTL reaper runs periodically, so an expired document may still be
	// present. Expired means unauthenticated either way.
	if time.Now().After(session.ExpiresAt) {
		return nil, repository.ErrSessionNotFound
	}

	return &session, nil
}

// Save persists the session with an acknowledged write.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	_, err := repo.coll.ReplaceOne(ctx,
		bson.M{"_id": session.Token},
		session,
		options.Replace().SetUpsert(true),
	)

	return errors.Wrap(err, "failed to save session")
}

// Delete destroys the session stored under the token.
func (repo *sessionRepository) Delete(ctx context.Context, token string) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": token})
	if err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	if result.DeletedCount == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}
