package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/avlorenzana/jobtrail/internal/domain/application"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

// kvApplicationRepo stores each application as one JSON document under
// application:<ownerID>:<id>, mirroring the per-user rows of the original
// KV table.
type kvApplicationRepo struct {
	store  KV
	logger logger.Logger
}

func NewKVApplicationRepo(store KV, log logger.Logger) application.Repository {
	return &kvApplicationRepo{store: store, logger: log}
}

func applicationKey(ownerID, id string) string {
	return fmt.Sprintf("application:%s:%s", ownerID, id)
}

func applicationPrefix(ownerID string) string {
	return fmt.Sprintf("application:%s:", ownerID)
}

func (r *kvApplicationRepo) Create(ctx context.Context, ownerID string, app *application.JobApplication) error {
	key := applicationKey(ownerID, app.ID)

	// IDs are immutable and unique within the store; reusing one is a
	// conflict, not a silent overwrite.
	if _, err := r.store.Get(ctx, key); err == nil {
		return apperror.NewConflict("application", "id", app.ID)
	} else if !errors.Is(err, ErrKeyNotFound) {
		return err
	}

	return r.put(ctx, key, app)
}

func (r *kvApplicationRepo) Update(ctx context.Context, ownerID string, app *application.JobApplication) error {
	key := applicationKey(ownerID, app.ID)

	if _, err := r.store.Get(ctx, key); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return apperror.NewNotFound("application", app.ID)
		}
		return err
	}

	return r.put(ctx, key, app)
}

func (r *kvApplicationRepo) Delete(ctx context.Context, ownerID, id string) error {
	key := applicationKey(ownerID, id)

	if _, err := r.store.Get(ctx, key); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return apperror.NewNotFound("application", id)
		}
		return err
	}

	return r.store.Delete(ctx, key)
}

func (r *kvApplicationRepo) GetByID(ctx context.Context, ownerID, id string) (*application.JobApplication, error) {
	value, err := r.store.Get(ctx, applicationKey(ownerID, id))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, apperror.NewNotFound("application", id)
		}
		return nil, err
	}

	var app application.JobApplication
	if err := json.Unmarshal(value, &app); err != nil {
		return nil, apperror.NewInternal("failed to unmarshal application record", err)
	}
	return &app, nil
}

func (r *kvApplicationRepo) List(ctx context.Context, ownerID string) ([]application.JobApplication, error) {
	values, err := r.store.ListByPrefix(ctx, applicationPrefix(ownerID))
	if err != nil {
		return nil, err
	}

	apps := make([]application.JobApplication, 0, len(values))
	for _, value := range values {
		var app application.JobApplication
		if err := json.Unmarshal(value, &app); err != nil {
			r.logger.Warn("Skipping unreadable application record", zap.String("owner_id", ownerID), zap.Error(err))
			continue
		}
		apps = append(apps, app)
	}

	// The KV contract makes no ordering promise, so insertion order is
	// reconstructed from creation time.
	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].ID < apps[j].ID
		}
		return apps[i].CreatedAt.Before(apps[j].CreatedAt)
	})
	return apps, nil
}

func (r *kvApplicationRepo) put(ctx context.Context, key string, app *application.JobApplication) error {
	value, err := json.Marshal(app)
	if err != nil {
		return apperror.NewInternal("failed to marshal application record", err)
	}
	return r.store.Set(ctx, key, value)
}
