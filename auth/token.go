package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "chat-archive"

// NodeClaims identifies the cluster node that signed a request.
type NodeClaims struct {
	NodeID string `json:"node_id"`
	jwt.RegisteredClaims
}

// Signer issues and checks node tokens with the secret shared by the cluster.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("cluster secret must be at least 32 bytes, got %d", len(secret))
	}
	return &Signer{secret: []byte(secret), ttl: ttl}, nil
}

// GenerateToken creates a signed JWT for the given node.
func (s *Signer) GenerateToken(nodeID string) (string, error) {
	now := time.Now()
	claims := &NodeClaims{
		NodeID: nodeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   nodeID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken parses and validates the signature, issuer and expiration of a JWT string.
func (s *Signer) ValidateToken(tokenString string) (*NodeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &NodeClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*NodeClaims); ok && token.Valid && claims.NodeID != "" {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
