package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avlorenzana/jobtrail/internal/domain/profile"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type kvProfileRepo struct {
	store  KV
	logger logger.Logger
}

func NewKVProfileRepo(store KV, log logger.Logger) profile.Repository {
	return &kvProfileRepo{store: store, logger: log}
}

func profileKey(ownerID string) string {
	return fmt.Sprintf("profile:%s", ownerID)
}

func (r *kvProfileRepo) GetByOwner(ctx context.Context, ownerID string) (*profile.PersonalInfo, error) {
	value, err := r.store.Get(ctx, profileKey(ownerID))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			// First load: defaults, not an error.
			return &profile.PersonalInfo{}, nil
		}
		return nil, err
	}

	var info profile.PersonalInfo
	if err := json.Unmarshal(value, &info); err != nil {
		return nil, apperror.NewInternal("failed to unmarshal profile record", err)
	}
	return &info, nil
}

func (r *kvProfileRepo) Upsert(ctx context.Context, ownerID string, info *profile.PersonalInfo) error {
	value, err := json.Marshal(info)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile record", err)
	}
	return r.store.Set(ctx, profileKey(ownerID), value)
}
