package profile

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avlorenzana/jobtrail/internal/application/service"
	"github.com/avlorenzana/jobtrail/internal/domain/profile"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	uploader    service.Uploader
	logger      logger.Logger
}

// NewProfileUseCase takes a nil uploader when Cloudinary is not configured;
// data-URI images are then stored inline.
func NewProfileUseCase(repo profile.Repository, uploader service.Uploader, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		uploader:    uploader,
		logger:      log,
	}
}

type GetProfileInput struct {
	OwnerID string
}

type GetProfileOutput struct {
	Profile *profile.PersonalInfo
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type SaveProfileInput struct {
	OwnerID string
	Info    profile.PersonalInfo
}

type SaveProfileOutput struct {
	Profile *profile.PersonalInfo
}

// ExecuteSaveProfile overwrites the record wholesale. When the image is a
// freshly picked data URI and an uploader is available, the image moves to
// media storage and the record keeps the returned URL instead of the blob.
func (uc *ProfileUseCase) ExecuteSaveProfile(ctx context.Context, input SaveProfileInput) (*SaveProfileOutput, error) {
	info := input.Info
	info.UpdatedAt = time.Now().UTC()

	if uc.uploader != nil && strings.HasPrefix(info.ImageURL, "data:") {
		if url, err := uc.uploadAvatar(ctx, input.OwnerID, info.ImageURL); err != nil {
			// The profile save must not fail because media storage is down.
			uc.logger.Warn("Avatar upload failed, storing data URI inline",
				zap.String("owner_id", input.OwnerID), zap.Error(err))
		} else {
			info.ImageURL = url
		}
	}

	if err := uc.profileRepo.Upsert(ctx, input.OwnerID, &info); err != nil {
		return nil, fmt.Errorf("save profile failed: %w", err)
	}

	return &SaveProfileOutput{Profile: &info}, nil
}

func (uc *ProfileUseCase) uploadAvatar(ctx context.Context, ownerID, dataURI string) (string, error) {
	_, payload, found := strings.Cut(dataURI, ";base64,")
	if !found {
		return "", fmt.Errorf("image is not a base64 data URI")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("cannot decode image payload: %w", err)
	}

	folder := fmt.Sprintf("users/%s", ownerID)
	return uc.uploader.Upload(ctx, bytes.NewReader(raw), folder, "avatar")
}
