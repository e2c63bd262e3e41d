package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"print-order-server/internal/domain"
)

const tokenValidity = 24 * time.Hour

type staticCredentialVerifier struct {
	username string
	password string
}

// NewStaticCredentialVerifier checks against one fixed username/password
// pair. A real deployment would substitute hashed secrets behind the same
// interface without touching the API contract.
func NewStaticCredentialVerifier(username, password string) domain.CredentialVerifier {
	return &staticCredentialVerifier{username: username, password: password}
}

func (v *staticCredentialVerifier) Verify(username, password string) bool {
	return username == v.username && password == v.password
}

type jwtTokenIssuer struct {
	secret []byte
}

// NewJWTTokenIssuer mints HS256 tokens. The token is only a success marker;
// no endpoint validates it afterwards.
func NewJWTTokenIssuer(secret []byte) domain.TokenIssuer {
	return &jwtTokenIssuer{secret: secret}
}

func (i *jwtTokenIssuer) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenValidity)),
	})
	return token.SignedString(i.secret)
}

type authService struct {
	verifier domain.CredentialVerifier
	issuer   domain.TokenIssuer
	logger   domain.Logger
}

// NewAuthService creates the admin login service.
func NewAuthService(verifier domain.CredentialVerifier, issuer domain.TokenIssuer, logger domain.Logger) domain.AuthService {
	return &authService{verifier: verifier, issuer: issuer, logger: logger}
}

// Login verifies the credential pair and returns a signed token on success.
func (s *authService) Login(username, password string) (string, error) {
	if !s.verifier.Verify(username, password) {
		s.logger.Warn("Admin login rejected", "username", username)
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(username)
	if err != nil {
		return "", err
	}
	s.logger.Info("Admin login", "username", username)
	return token, nil
}
