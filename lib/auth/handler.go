package authhandler

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	platformclient "event-staffing-bff/lib/platform/client"
	authapimodels "event-staffing-bff/models/api/auth"
	"event-staffing-bff/models"
)

type Provider interface {
	SignIn(ctx context.Context, req authapimodels.SignInRequest) (*authapimodels.JWTResponse, error)
	SignUp(ctx context.Context, req authapimodels.SignUpRequest) (*authapimodels.SignUpResponse, error)
	DecodeSession(token string) (models.UserSession, error)
}

var Instance Provider

func NewHandler(jwtSecret string) {
	Instance = &impl{
		jwtSecret: []byte(jwtSecret),
	}
}

type impl struct {
	jwtSecret []byte
}

func (i impl) SignIn(ctx context.Context, req authapimodels.SignInRequest) (*authapimodels.JWTResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := platformclient.Instance.SignIn(ctx, req)
	if err != nil {
		log.WithError(err).WithField("username", req.Username).Warn("sign in failed")
		return nil, err
	}
	return resp, nil
}

func (i impl) SignUp(ctx context.Context, req authapimodels.SignUpRequest) (*authapimodels.SignUpResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return platformclient.Instance.SignUp(ctx, req)
}

// DecodeSession verifies the access token and extracts the typed session.
// The platform issues HS256 tokens whose subject carries the user identity.
func (i impl) DecodeSession(token string) (models.UserSession, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.Errorf("unexpected signing method (%v)", t.Method.Alg())
		}
		return i.jwtSecret, nil
	})
	if err != nil {
		return models.UserSession{}, errors.Wrap(err, "failed to decode token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.UserSession{}, errors.New("unexpected token claims")
	}
	sub, ok := claims["sub"].(map[string]interface{})
	if !ok {
		return models.UserSession{}, errors.New("token subject is missing")
	}
	username, _ := sub["username"].(string)
	if username == "" {
		return models.UserSession{}, errors.New("token subject has no username")
	}
	rawRole, _ := sub["role"].(string)
	role, err := models.ParseUserRole(rawRole)
	if err != nil {
		return models.UserSession{}, err
	}
	var userID int64
	if id, exist := sub["user_id"].(float64); exist {
		userID = int64(id)
	}
	return models.UserSession{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}
