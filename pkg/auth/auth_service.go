package auth

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/internal/logger"
	"Meal-Planner/internal/utils"
	"Meal-Planner/pkg/jwt"
	"Meal-Planner/pkg/user"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	GoogleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	ProviderGoogle    = "google"

	stateTTL = 10 * time.Minute
)

type (
	AuthService interface {
		// LoginURL returns the consent page address and the state that must come back with the callback.
		LoginURL() (string, string, error)
		Callback(ctx context.Context, state, expectedState, code string) (domain.LoginResponse, error)
	}

	authService struct {
		userRepository user.UserRepository
		jwtService     jwt.JWTService
		oauthConfig    *oauth2.Config
		userInfoURL    string
	}
)

func GoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     utils.GetConfig("GOOGLE_CLIENT_ID"),
		ClientSecret: utils.GetConfig("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  utils.GetConfig("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     endpoints.Google,
	}
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.JWTService, oauthConfig *oauth2.Config, userInfoURL string) AuthService {
	return &authService{
		userRepository: userRepository,
		jwtService:     jwtService,
		oauthConfig:    oauthConfig,
		userInfoURL:    userInfoURL,
	}
}

func (s *authService) LoginURL() (string, string, error) {
	state, err := s.jwtService.GenerateStateToken(uuid.NewString(), stateTTL)
	if err != nil {
		return "", "", err
	}
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline), state, nil
}

func (s *authService) Callback(ctx context.Context, state, expectedState, code string) (domain.LoginResponse, error) {
	if state == "" || state != expectedState {
		return domain.LoginResponse{}, domain.ErrOAuthStateMismatch
	}
	if _, err := s.jwtService.ValidateStateToken(state); err != nil {
		return domain.LoginResponse{}, domain.ErrOAuthStateMismatch
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Warn("oauth code exchange failed", zap.Error(err))
		return domain.LoginResponse{}, domain.ErrOAuthExchange
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		logger.Warn("oauth profile fetch failed", zap.Error(err))
		return domain.LoginResponse{}, domain.ErrOAuthProfile
	}
	if !profile.EmailVerified {
		return domain.LoginResponse{}, domain.ErrEmailNotVerified
	}

	u := &entities.User{
		Email:     strings.ToLower(profile.Email),
		Name:      profile.Name,
		AvatarURL: profile.Picture,
		Provider:  ProviderGoogle,
		Subject:   profile.Subject,
		Role:      domain.RoleUser,
	}
	if err := s.userRepository.UpsertUser(ctx, u); err != nil {
		return domain.LoginResponse{}, err
	}

	jwtToken, err := s.jwtService.GenerateTokenUser(u.ID.String(), u.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	logger.Info("user logged in", zap.String("user_id", u.ID.String()))
	return domain.LoginResponse{
		Token: jwtToken,
		User:  user.ToResponse(u),
	}, nil
}

func (s *authService) fetchProfile(ctx context.Context, token *oauth2.Token) (domain.GoogleProfile, error) {
	client := s.oauthConfig.Client(ctx, token)

	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return domain.GoogleProfile{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.GoogleProfile{}, fmt.Errorf("userinfo: %s", resp.Status)
	}

	var profile domain.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return domain.GoogleProfile{}, err
	}
	if profile.Email == "" {
		return domain.GoogleProfile{}, fmt.Errorf("userinfo: missing email")
	}
	return profile, nil
}
