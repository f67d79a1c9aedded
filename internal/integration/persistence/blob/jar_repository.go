package blob

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// JarRepository persists the jar collection as a single keyed blob.
type JarRepository struct {
	store *Store
}

// NewJarRepository creates a new blob-backed jar repository.
func NewJarRepository(store *Store) *JarRepository {
	return &JarRepository{
		store: store,
	}
}

// List retrieves the current jar snapshot in stored order.
func (r *JarRepository) List(ctx context.Context) ([]*entity.Jar, error) {
	var records []jarRecord
	if err := r.store.load(ctx, KeyJars, &records); err != nil {
		return nil, err
	}

	jars := make([]*entity.Jar, 0, len(records))
	for _, record := range records {
		jar, err := record.toEntity()
		if err != nil {
			return nil, err
		}
		jars = append(jars, jar)
	}
	return jars, nil
}

// Replace overwrites the jar snapshot wholesale.
func (r *JarRepository) Replace(ctx context.Context, jars []*entity.Jar) error {
	records := make([]jarRecord, len(jars))
	for i, jar := range jars {
		records[i] = jarFromEntity(jar)
	}
	return r.store.store(ctx, KeyJars, records)
}
