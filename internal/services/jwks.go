package services

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/clearhire/clearhire-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentityClaims are the claims this API reads from the identity
// provider's access tokens. The subject is the user id.
type IdentityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (c *IdentityClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// jwk is a JSON Web Key as published in the provider's JWKS document.
// Only RSA signing keys are used here.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

// KeySet verifies bearer tokens against the identity provider's published
// signing keys, cached in memory and refreshed on a fixed interval (or
// eagerly when a token references an unknown kid).
type KeySet struct {
	url             string
	issuer          string
	refreshInterval time.Duration
	client          *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

func NewKeySet(cfg config.IdentityConfig) *KeySet {
	return &KeySet{
		url:             cfg.JWKSURL,
		issuer:          cfg.Issuer,
		refreshInterval: cfg.KeyRefreshInterval,
		client:          &http.Client{Timeout: 10 * time.Second},
		keys:            make(map[string]*rsa.PublicKey),
	}
}

func (k *KeySet) Verify(tokenString string) (*IdentityClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256"})}
	if k.issuer != "" {
		opts = append(opts, jwt.WithIssuer(k.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, k.keyfunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (k *KeySet) keyfunc(token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("token has no kid header")
	}

	if key := k.cachedKey(kid); key != nil {
		return key, nil
	}

	// Unknown or stale kid: re-fetch the key set once before giving up.
	if err := k.refresh(); err != nil {
		return nil, err
	}
	if key := k.cachedKey(kid); key != nil {
		return key, nil
	}
	return nil, fmt.Errorf("unknown signing key %q", kid)
}

func (k *KeySet) cachedKey(kid string) *rsa.PublicKey {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if time.Since(k.fetchedAt) > k.refreshInterval {
		return nil
	}
	return k.keys[kid]
}

func (k *KeySet) refresh() error {
	resp, err := k.client.Get(k.url)
	if err != nil {
		return fmt.Errorf("failed to fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned status %d", resp.StatusCode)
	}

	var doc jwks
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, key := range doc.Keys {
		if key.Kty != "RSA" || (key.Use != "" && key.Use != "sig") {
			continue
		}
		pub, err := key.rsaPublicKey()
		if err != nil {
			return fmt.Errorf("failed to parse jwk %q: %w", key.Kid, err)
		}
		keys[key.Kid] = pub
	}

	k.mu.Lock()
	k.keys = keys
	k.fetchedAt = time.Now()
	k.mu.Unlock()
	return nil
}

func (j jwk) rsaPublicKey() (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(j.N)
	if err != nil {
		return nil, err
	}
	eb, err := base64.RawURLEncoding.DecodeString(j.E)
	if err != nil {
		return nil, err
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(new(big.Int).SetBytes(eb).Int64()),
	}, nil
}
