package service

import (
	"context"
	"errors"
	"time"

	"github.com/rakib-hossain32/doha-popular/internal/infra/cache"
	"github.com/rakib-hossain32/doha-popular/internal/pkg/utils/tokens"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "admin:session:"

// AuthService is the admin gate: one configured email/password pair, opaque session tokens in redis.
type AuthService interface {
	// Authenticate succeeds only when both values equal the configured pair.
	Authenticate(email, password string) error
	Login(ctx context.Context, email, password string) (*AdminSession, error)
	Verify(ctx context.Context, token string) (*AdminSession, error)
	Logout(ctx context.Context, token string) error
}

type AuthConfig struct {
	Email    string
	Password string
	// Secret keys the HMAC under which tokens are stored.
	Secret string
	TTL    time.Duration
}

type AdminSession struct {
	Token     string    `json:"-"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type authService struct {
	cfg AuthConfig
	rdb redis.Cmdable
}

func NewAuthService(cfg AuthConfig, rdb redis.Cmdable) AuthService {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &authService{cfg: cfg, rdb: rdb}
}

func (s *authService) Authenticate(email, password string) error {
	configured := s.cfg.Email != "" && s.cfg.Password != ""
	emailOK := tokens.Equal(email, s.cfg.Email)
	passwordOK := tokens.Equal(password, s.cfg.Password)
	if !configured || !emailOK || !passwordOK {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *authService) key(token string) string {
	return sessionKeyPrefix + tokens.HMAC256Hex(s.cfg.Secret, token)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AdminSession, error) {
	if err := s.Authenticate(email, password); err != nil {
		return nil, err
	}
	token, err := tokens.Random(32)
	if err != nil {
		return nil, err
	}
	sess := &AdminSession{Token: token, Email: s.cfg.Email, ExpiresAt: now().Add(s.cfg.TTL)}
	if err := cache.SetJSON(ctx, s.rdb, s.key(token), sess, s.cfg.TTL); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *authService) Verify(ctx context.Context, token string) (*AdminSession, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	var sess AdminSession
	ok, err := cache.GetJSON(ctx, s.rdb, s.key(token), &sess)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.Token = token
	return &sess, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := s.rdb.Del(ctx, s.key(token)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
