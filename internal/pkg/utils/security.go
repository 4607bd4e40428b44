package utils

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
)

var errSealedTooShort = errors.New("sealed payload shorter than nonce")

// DraftSealer encrypts session drafts before they leave the process. Drafts
// carry identity and clinical answers, so they are never stored in clear.
type DraftSealer struct {
	aead cipher.AEAD
}

// NewDraftSealer derives a 256-bit key from secret.
func NewDraftSealer(secret string) (*DraftSealer, error) {
	key := blake2b.Sum256([]byte(secret))
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, err
	}
	return &DraftSealer{aead: aead}, nil
}

// Seal returns nonce||ciphertext. associatedData binds the payload to its key.
func (s *DraftSealer) Seal(plaintext, associatedData []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return s.aead.Seal(nonce, nonce, plaintext, associatedData), nil
}

func (s *DraftSealer) Open(sealed, associatedData []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, errSealedTooShort
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	return s.aead.Open(nil, nonce, ciphertext, associatedData)
}
