package auth

import (
	"encoding/base64"
	"strings"
)

// HS512MinKeyLen is the minimum key material HMAC-SHA-512 requires: 64
// bytes, 512 bits.
const HS512MinKeyLen = 64

// DeriveSigningKey builds the process-wide HS512 key from the configured
// secret. The trimmed secret is Base64-decoded first; decoded bytes are
// used only when they already meet the HS512 minimum, otherwise the raw
// UTF-8 text is taken as key material. Material shorter than the minimum
// is extended cyclically (key[i] = material[i mod len]) to exactly 64
// bytes.
//
// The extension is deterministic and keeps previously issued tokens
// verifiable, but it does not add entropy: a short secret stays weak.
// Deployments that prefer to fail instead use DeriveStrictSigningKey.
func DeriveSigningKey(secret string) ([]byte, error) {
	material, err := signingKeyMaterial(secret)
	if err != nil {
		return nil, err
	}

	if len(material) >= HS512MinKeyLen {
		return material, nil
	}

	extended := make([]byte, HS512MinKeyLen)
	for i := range extended {
		extended[i] = material[i%len(material)]
	}

	return extended, nil
}

// DeriveStrictSigningKey behaves like DeriveSigningKey but rejects secrets
// whose key material falls short of the HS512 minimum instead of extending
// them.
func DeriveStrictSigningKey(secret string) ([]byte, error) {
	material, err := signingKeyMaterial(secret)
	if err != nil {
		return nil, err
	}

	if len(material) < HS512MinKeyLen {
		return nil, ErrWeakSigningSecret
	}

	return material, nil
}

func signingKeyMaterial(secret string) ([]byte, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, ErrMissingSigningSecret
	}

	if decoded, err := base64.StdEncoding.DecodeString(trimmed); err == nil && len(decoded) >= HS512MinKeyLen {
		return decoded, nil
	}

	return []byte(trimmed), nil
}
