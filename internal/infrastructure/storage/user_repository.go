package storage

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

const usersFile = "users.json"

// userRecord is the on-disk shape of a user. It exists so the password
// hash is persisted without ever appearing in domain.User's JSON form.
type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRepository persists user accounts to users.json. Create serializes
// concurrent registrations so the email uniqueness check and the write
// cannot interleave.
type UserRepository struct {
	coll *Collection[userRecord]
	mu   sync.Mutex
}

func NewUserRepository(dataDir string) *UserRepository {
	return &UserRepository{coll: NewCollection[userRecord](filepath.Join(dataDir, usersFile))}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	records, err := r.coll.Load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if strings.EqualFold(rec.Email, email) {
			return toUser(rec), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.coll.Load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if strings.EqualFold(rec.Email, user.Email) {
			return nil, domain.ErrUserExists
		}
	}

	records = append(records, userRecord{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		CreatedAt:    user.CreatedAt,
	})
	if err := r.coll.Save(records); err != nil {
		return nil, err
	}

	created := *user
	return &created, nil
}

func toUser(rec userRecord) *domain.User {
	return &domain.User{
		ID:           rec.ID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Name:         rec.Name,
		CreatedAt:    rec.CreatedAt,
	}
}
