package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"shramikadmin/internal/util/memzero"
)

// sealedFormatVersion is the current version of the on-disk sealed format.
const sealedFormatVersion = 1

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed file has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted storage")

// sealed is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// scryptParams are the KDF cost parameters for new files.
type scryptParams struct{ N, R, P int }

func defaultScryptParams() scryptParams { return scryptParams{N: 1 << 15, R: 8, P: 1} }

// encrypt derives a key from passphrase and seals raw into a JSON blob.
func encrypt(passphrase string, raw []byte, kp scryptParams) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, salt, kp)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, salt)

	return json.Marshal(sealed{
		V:      sealedFormatVersion,
		Salt:   salt,
		N:      kp.N,
		R:      kp.R,
		P:      kp.P,
		Nonce:  nonce,
		Cipher: ct,
	})
}

// decrypt opens a JSON blob produced by encrypt.
func decrypt(passphrase string, b []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode sealed storage: %w", err)
	}
	if s.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported storage version %d", s.V)
	}

	key, err := deriveKey(passphrase, s.Salt, scryptParams{N: s.N, R: s.R, P: s.P})
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(s.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, s.Nonce, s.Cipher, s.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func deriveKey(passphrase string, salt []byte, kp scryptParams) ([]byte, error) {
	pass := []byte(passphrase)
	defer memzero.Zero(pass)
	return scrypt.Key(pass, salt, kp.N, kp.R, kp.P, chacha20poly1305.KeySize)
}
