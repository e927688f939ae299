package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Profile roles supported by the platform.
const (
	RoleActor    = "actor"
	RoleDirector = "director"
)

// Profile is the persistent record behind every account. One row per
// identity, created when sign-up completes and mutated only by its owner.
type Profile struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Role     string `json:"role" gorm:"index"`
	Location string `json:"location"`
	Bio      string `json:"bio"`

	AvatarURL string `json:"avatar_url"`
	CoverURL  string `json:"cover_url"`

	// Contact block
	Email   string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all profiles
	Phone   string `json:"phone"`
	Website string `json:"website"`

	// Social handles
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Linkedin  string `json:"linkedin"`

	PasswordHash string  `json:"-"` // Store hashed password, ignore for JSON serialization
	FirebaseUID  *string `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // Link to Firebase User UID, nil for local accounts

	FollowersCount int `json:"followers_count" gorm:"default:0"`
	FollowingCount int `json:"following_count" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileSummary is the projection exposed by follow-graph queries. Only
// these four fields leak through followers/following listings.
type ProfileSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

// SignUpRequest carries the credentials plus the profile-seed fields
// collected by the sign-up wizard.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=actor director"`
	Location string `json:"location" validate:"omitempty,max=120"`
	Bio      string `json:"bio" validate:"omitempty,max=2000"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is a patch: only non-nil fields are written. The key
// set is fixed to the Profile schema, so unknown columns cannot be injected.
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=actor director"`
	Location  *string `json:"location,omitempty" validate:"omitempty,max=120"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	CoverURL  *string `json:"cover_url,omitempty" validate:"omitempty,url"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Website   *string `json:"website,omitempty" validate:"omitempty,url"`
	Instagram *string `json:"instagram,omitempty" validate:"omitempty,max=80"`
	Twitter   *string `json:"twitter,omitempty" validate:"omitempty,max=80"`
	Linkedin  *string `json:"linkedin,omitempty" validate:"omitempty,max=120"`
}

// Changes returns the column map for a partial update. Only fields present
// in the request appear; column names are fixed here, never caller-supplied.
func (r *UpdateProfileRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			changes[column] = *v
		}
	}
	set("name", r.Name)
	set("role", r.Role)
	set("location", r.Location)
	set("bio", r.Bio)
	set("avatar_url", r.AvatarURL)
	set("cover_url", r.CoverURL)
	set("email", r.Email)
	set("phone", r.Phone)
	set("website", r.Website)
	set("instagram", r.Instagram)
	set("twitter", r.Twitter)
	set("linkedin", r.Linkedin)
	return changes
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	ProfileID uint   `json:"profile_id"`
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
