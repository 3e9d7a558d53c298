package domain

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/influencerflow/backend/internal/entity"
	"github.com/influencerflow/backend/internal/model"
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/errorx"
	"github.com/influencerflow/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProfileDomain interface {
	GetMine(context.Context, *model.GetMyProfileRequest) (*model.GetMyProfileResponse, error)
	UpdateMine(context.Context, *model.UpdateMyProfileRequest) (*model.UpdateMyProfileResponse, error)
}

type profileDomain struct {
	profileRepo repository.ProfileRepository
}

func NewProfileDomain(profileRepo repository.ProfileRepository) *profileDomain {
	return &profileDomain{profileRepo: profileRepo}
}

func (d *profileDomain) GetMine(
	ctx context.Context, req *model.GetMyProfileRequest,
) (*model.GetMyProfileResponse, error) {
	profile, err := d.getOrEmpty(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	resp := model.GetMyProfileResponse(model.ConvertProfile(profile))
	return &resp, nil
}

func (d *profileDomain) UpdateMine(
	ctx context.Context, req *model.UpdateMyProfileRequest,
) (*model.UpdateMyProfileResponse, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.AvatarURL = strings.TrimSpace(req.AvatarURL)
	if err := validate.Struct(req); err != nil {
		switch firstInvalidField(err) {
		case "FullName":
			return nil, errorx.New(errorx.BadRequest, "Full name is too long")
		case "AvatarURL":
			return nil, errorx.New(errorx.BadRequest, "Invalid avatar url")
		}

		xcontext.Logger(ctx).Errorf("Cannot validate profile: %v", err)
		return nil, errorx.Unknown
	}

	profile, err := d.getOrEmpty(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	profile.FullName = sql.NullString{String: req.FullName, Valid: req.FullName != ""}
	profile.AvatarURL = sql.NullString{String: req.AvatarURL, Valid: req.AvatarURL != ""}
	if err := d.profileRepo.Upsert(ctx, profile); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert profile: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateMyProfileResponse(model.ConvertProfile(profile))
	return &resp, nil
}

// getOrEmpty returns the stored profile of userID, or an unsaved profile
// carrying only the id when the user has none yet.
func (d *profileDomain) getOrEmpty(ctx context.Context, userID string) (*entity.Profile, error) {
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	profile, err := d.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Profile{Base: entity.Base{ID: userID}}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	return profile, nil
}
