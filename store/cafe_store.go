package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jvk36/cafes-with-wifi/model"
)

// ErrDuplicateName reports an insert that lost to the unique index on
// cafe.name. Callers distinguish it from other storage failures with
// errors.Is.
var ErrDuplicateName = errors.New("cafe with this name already exists")

// CafeStore is the minimal persistence interface the HTTP handlers depend on,
// keeping the GORM backing an internal detail.
type CafeStore interface {
	ListAll(ctx context.Context) ([]model.Cafe, error)
	FindByName(ctx context.Context, name string) (model.Cafe, bool, error)
	Insert(ctx context.Context, cafe model.Cafe) (model.Cafe, error)
}

// GormStore backs CafeStore with a gorm connection. Every call runs under a
// bounded timeout so a stuck database surfaces as a storage error instead of
// a hung request. Uniqueness of cafe names is enforced only by the table's
// unique index; there is deliberately no read-then-insert check here.
type GormStore struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormStore(db *gorm.DB, timeout time.Duration) *GormStore {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GormStore{db: db, timeout: timeout}
}

// ListAll returns every cafe ordered by id. The slice is non-nil even when
// the table is empty so it serializes as a JSON array.
func (s *GormStore) ListAll(ctx context.Context) ([]model.Cafe, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cafes := make([]model.Cafe, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("list cafes: %w", err)
	}
	return cafes, nil
}

// FindByName looks up a cafe by exact, case-sensitive name. Absence is
// reported through the ok bool, not as an error.
func (s *GormStore) FindByName(ctx context.Context, name string) (model.Cafe, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var cafe model.Cafe
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&cafe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cafe{}, false, nil
	}
	if err != nil {
		return model.Cafe{}, false, fmt.Errorf("find cafe %q: %w", name, err)
	}
	return cafe, true, nil
}

// Insert persists a new cafe and returns it with the assigned id. A
// single-row INSERT commits fully or not at all.
func (s *GormStore) Insert(ctx context.Context, cafe model.Cafe) (model.Cafe, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Cafe{}, ErrDuplicateName
		}
		return model.Cafe{}, fmt.Errorf("insert cafe: %w", err)
	}
	return cafe, nil
}

// Ping reports whether the underlying database answers; the api command uses
// it for its health endpoint.
func (s *GormStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
