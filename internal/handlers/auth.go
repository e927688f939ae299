package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/medetk/castlink/backend/internal/models"
	"github.com/medetk/castlink/backend/internal/repositories"
	"github.com/medetk/castlink/backend/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 72 * time.Hour

// AuthHandler handles identity operations: sign-up, sign-in, sign-out and
// the Firebase token exchange. Every issued token is backed by a session
// row, so sign-out works by revoking the row rather than by any
// client-held state.
type AuthHandler struct {
	profileRepository repositories.ProfileRepository
	sessionRepository repositories.SessionRepository
	firebaseAuth      *auth.Client
	jwtSecret         string
}

// NewAuthHandler creates a new AuthHandler. firebaseAuthClient may be nil
// when the Firebase sign-in path is not configured.
func NewAuthHandler(profileRepo repositories.ProfileRepository, sessionRepo repositories.SessionRepository, firebaseAuthClient *auth.Client, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		profileRepository: profileRepo,
		sessionRepository: sessionRepo,
		firebaseAuth:      firebaseAuthClient,
		jwtSecret:         jwtSecret,
	}
}

// RegisterAuthRoutes registers the unauthenticated identity routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.SignUp)
	g.POST("/signin", h.SignIn)
	g.POST("/firebase", h.FirebaseSignIn)
}

// RegisterSessionRoutes registers identity routes that need a valid session
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.POST("/auth/signout", h.SignOut)
}

type sessionResponse struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

// SignUp creates the account and its profile row in one step, then issues a
// session. The profile-seed fields from the sign-up wizard land directly on
// the new row.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal(err)
	}

	profile := &models.Profile{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Location:     req.Location,
		Bio:          req.Bio,
		PasswordHash: string(hashedPassword),
	}

	if err := h.profileRepository.CreateProfile(profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.AlreadyExists("account with this email")
		}
		return apperrors.Database(err)
	}

	token, err := h.issueSession(profile)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, sessionResponse{Token: token, Profile: profile})
}

// SignIn exchanges credentials for a session token
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileRepository.GetProfileByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.InvalidCredentials()
		}
		return apperrors.Database(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return apperrors.InvalidCredentials()
	}

	token, err := h.issueSession(profile)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, sessionResponse{Token: token, Profile: profile})
}

// SignOut revokes the session backing the presented token. Revoking twice
// is a no-op, so the operation is idempotent.
func (h *AuthHandler) SignOut(c echo.Context) error {
	claims := claimsFromContext(c)
	if claims == nil {
		return apperrors.Unauthorized("not authenticated")
	}
	if err := h.sessionRepository.RevokeSession(claims.SessionID); err != nil {
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, nil)
}

// FirebaseSignInRequest defines the request body for the Firebase token exchange
type FirebaseSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
	Role    string `json:"role" validate:"omitempty,oneof=actor director"`
}

// FirebaseSignIn verifies a Firebase ID token, provisions or links the
// profile, and issues a local session token.
func (h *AuthHandler) FirebaseSignIn(c echo.Context) error {
	if h.firebaseAuth == nil {
		return apperrors.Unauthorized("firebase sign-in is not configured")
	}

	var req FirebaseSignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.firebaseAuth.VerifyIDToken(context.Background(), req.IDToken)
	if err != nil {
		return apperrors.New(apperrors.CodeInvalidToken, "invalid firebase ID token", http.StatusUnauthorized)
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)

	profile, err := h.profileRepository.GetProfileByFirebaseUID(token.UID)
	switch {
	case err == nil:
		// Known account, nothing to provision.
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile, err = h.linkOrCreateFirebaseProfile(token.UID, email, name, req.Role)
		if err != nil {
			return err
		}
	default:
		return apperrors.Database(err)
	}

	sessionToken, err := h.issueSession(profile)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, sessionResponse{Token: sessionToken, Profile: profile})
}

// linkOrCreateFirebaseProfile attaches the Firebase UID to an existing
// profile with the same email, or creates a fresh one.
func (h *AuthHandler) linkOrCreateFirebaseProfile(firebaseUID, email, name, role string) (*models.Profile, error) {
	if role == "" {
		role = models.RoleActor
	}

	profile, err := h.profileRepository.GetProfileByEmail(email)
	if err == nil {
		profile.FirebaseUID = &firebaseUID
		if err := h.profileRepository.SaveProfile(profile); err != nil {
			return nil, apperrors.Database(err)
		}
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Database(err)
	}

	profile = &models.Profile{
		Name:        name,
		Email:       email,
		Role:        role,
		FirebaseUID: &firebaseUID,
	}
	if err := h.profileRepository.CreateProfile(profile); err != nil {
		return nil, apperrors.Database(err)
	}
	return profile, nil
}

// issueSession creates the session row and signs the JWT carrying its id.
func (h *AuthHandler) issueSession(profile *models.Profile) (string, error) {
	now := time.Now()
	session := &models.Session{
		ID:        uuid.NewString(),
		ProfileID: profile.ID,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := h.sessionRepository.CreateSession(session); err != nil {
		return "", apperrors.Database(err)
	}

	claims := &models.JwtCustomClaims{
		ProfileID: profile.ID,
		SessionID: session.ID,
		Email:     profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return signed, nil
}
