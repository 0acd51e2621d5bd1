package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"petconnect/internal/domain/entity"
	"petconnect/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var seedCounter int

func seedUser(t *testing.T, db *gorm.DB, role string) *entity.User {
	t.Helper()

	seedCounter++
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &entity.User{
		Username: fmt.Sprintf("user%d", seedCounter),
		Email:    fmt.Sprintf("user%d@example.com", seedCounter),
		Password: string(hashed),
		Name:     fmt.Sprintf("User %d", seedCounter),
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return user
}

func seedAnimal(t *testing.T, db *gorm.DB, status entity.AnimalStatus) *entity.Animal {
	t.Helper()

	seedCounter++
	animal := &entity.Animal{
		Name:    fmt.Sprintf("Animal %d", seedCounter),
		Species: "Dog",
		Breed:   "Mixed",
		Status:  status,
		Fee:     decimal.NewFromInt(50),
	}
	if err := db.Create(animal).Error; err != nil {
		t.Fatalf("failed to seed animal: %v", err)
	}

	return animal
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) *entity.Product {
	t.Helper()

	seedCounter++
	product := &entity.Product{
		Name:  fmt.Sprintf("Product %d", seedCounter),
		Price: decimal.NewFromInt(10),
		Stock: stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	return product
}

// fakeTokenStore is an in-memory stand-in for the redis-backed session store.
type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]bool{}}
}

func (s *fakeTokenStore) key(userID uuid.UUID, tokenID string) string {
	return userID.String() + ":" + tokenID
}

func (s *fakeTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[s.key(userID, tokenID)] = true
	return nil
}

func (s *fakeTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[s.key(userID, tokenID)], nil
}

func (s *fakeTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, s.key(userID, tokenID))
	return nil
}
