package model

type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
}

type GetMyProfileRequest struct{}

type GetMyProfileResponse Profile

type UpdateMyProfileRequest struct {
	FullName  string `json:"full_name" form:"full_name" validate:"max=128"`
	AvatarURL string `json:"avatar_url" form:"avatar_url" validate:"omitempty,url"`
}

type UpdateMyProfileResponse Profile
