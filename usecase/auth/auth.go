package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/passhash"
	"github.com/taskdeck/backend/repository"
)

// Config carries the token-signing settings for the auth use case.
type Config struct {
	JWTSecret  string
	Issuer     string
	SessionTTL time.Duration
}

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      Config
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, cfg Config, logger *zap.Logger) *UseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register digests the password and inserts a new user. A duplicate email is
// reported as (false, nil) rather than an error; any other storage failure
// propagates.
func (uc *UseCase) Register(ctx context.Context, email, password string) (bool, error) {
	user := &domain.User{
		Email:        email,
		PasswordHash: passhash.Digest(password),
	}

	if err := uc.users.Create(ctx, user); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeConflict) {
			return false, nil
		}
		return false, err
	}

	uc.logger.Info("user registered", zap.String("email", email))
	return true, nil
}

// Credentials is what a successful login hands back to the client.
type Credentials struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login verifies the email/digest pair, creates a server-side session, and
// returns a signed token referencing it. A wrong password and an unknown email
// both yield domain.ErrBadCredentials.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*Credentials, error) {
	ok, err := uc.users.ExistsByCredentials(ctx, email, passhash.Digest(password))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrBadCredentials
	}

	now := time.Now()
	session := &domain.Session{
		ID:         uuid.NewString(),
		OwnerEmail: email,
		CreatedAt:  now,
		ExpiresAt:  now.Add(uc.cfg.SessionTTL),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := uc.signToken(session)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("session created", zap.String("email", email), zap.String("session_id", session.ID))
	return &Credentials{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate resolves a bearer token to the owner email it was issued for.
// Expired and revoked sessions fail with an UNAUTHORIZED error.
func (uc *UseCase) Authenticate(ctx context.Context, token string) (string, error) {
	sessionID, err := uc.sessionIDFromToken(token)
	if err != nil {
		return "", domain.WrapError(domain.ErrCodeUnauthorized, "invalid token", err)
	}

	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return "", domain.ErrUnauthorized
	}

	return session.OwnerEmail, nil
}

// Logout revokes the session behind the token. Revoking an already-dead
// session is not an error.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	sessionID, err := uc.sessionIDFromToken(token)
	if err != nil {
		return domain.WrapError(domain.ErrCodeUnauthorized, "invalid token", err)
	}
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *UseCase) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   session.ID,
		"email": session.OwnerEmail,
		"iss":   uc.cfg.Issuer,
		"iat":   session.CreatedAt.Unix(),
		"exp":   session.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.cfg.JWTSecret))
}

func (uc *UseCase) sessionIDFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(uc.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = jwt.ErrTokenUnverifiable
		}
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sid, nil
}
