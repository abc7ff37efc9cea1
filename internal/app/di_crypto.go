package app

import (
	"fmt"

	cryptoDomain "github.com/tokenvault/tokenvault/internal/crypto/domain"
	cryptoService "github.com/tokenvault/tokenvault/internal/crypto/service"
)

// MasterKey returns the master encryption key loaded from configuration.
// The key is validated once and shared by reference; it is never re-read
// from the environment after startup.
func (c *Container) MasterKey() (*cryptoDomain.MasterKey, error) {
	var err error
	c.masterKeyInit.Do(func() {
		c.masterKey, err = c.initMasterKey()
		if err != nil {
			c.initErrors["masterKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["masterKey"]; exists {
		return nil, storedErr
	}
	return c.masterKey, nil
}

// KeyDeriver returns the PBKDF2 key derivation service.
func (c *Container) KeyDeriver() cryptoService.KeyDeriver {
	c.keyDeriverInit.Do(func() {
		c.keyDeriver = cryptoService.NewPBKDF2KeyDeriver()
	})
	return c.keyDeriver
}

// TokenCipher returns the authenticated token encryption service.
func (c *Container) TokenCipher() (cryptoService.TokenCipher, error) {
	var err error
	c.tokenCipherInit.Do(func() {
		c.tokenCipher, err = c.initTokenCipher()
		if err != nil {
			c.initErrors["tokenCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCipher"]; exists {
		return nil, storedErr
	}
	return c.tokenCipher, nil
}

// Hasher returns the SHA-256 digest service used for token fingerprints.
func (c *Container) Hasher() cryptoService.Hasher {
	c.hasherInit.Do(func() {
		c.hasher = cryptoService.NewSHA256Hasher()
	})
	return c.hasher
}

// initMasterKey validates and loads the master key from configuration.
func (c *Container) initMasterKey() (*cryptoDomain.MasterKey, error) {
	masterKey, err := cryptoDomain.NewMasterKey(c.config.OAuthEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load master key: %w", err)
	}
	return masterKey, nil
}

// initTokenCipher creates the token cipher with the master key and key deriver.
func (c *Container) initTokenCipher() (cryptoService.TokenCipher, error) {
	masterKey, err := c.MasterKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get master key for token cipher: %w", err)
	}

	return cryptoService.NewTokenCipher(masterKey, c.KeyDeriver()), nil
}
