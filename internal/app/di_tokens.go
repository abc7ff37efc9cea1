package app

import (
	"fmt"

	tokensHTTP "github.com/tokenvault/tokenvault/internal/tokens/http"
	tokensRepository "github.com/tokenvault/tokenvault/internal/tokens/repository"
	tokensUseCase "github.com/tokenvault/tokenvault/internal/tokens/usecase"
)

// TokenRepository returns the token repository instance.
func (c *Container) TokenRepository() (tokensUseCase.TokenRepository, error) {
	var err error
	c.tokenRepoInit.Do(func() {
		c.tokenRepo, err = c.initTokenRepository()
		if err != nil {
			c.initErrors["tokenRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenRepo"]; exists {
		return nil, storedErr
	}
	return c.tokenRepo, nil
}

// TokenUseCase returns the token use case instance, wrapped with business metrics.
func (c *Container) TokenUseCase() (tokensUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// TokenHandler returns the token HTTP handler instance.
func (c *Container) TokenHandler() (*tokensHTTP.TokenHandler, error) {
	var err error
	c.tokenHandlerInit.Do(func() {
		var useCase tokensUseCase.TokenUseCase
		useCase, err = c.TokenUseCase()
		if err != nil {
			c.initErrors["tokenHandler"] = err
			return
		}
		c.tokenHandler = tokensHTTP.NewTokenHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

// initTokenRepository creates the token repository based on the database driver.
func (c *Container) initTokenRepository() (tokensUseCase.TokenRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for token repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return tokensRepository.NewPostgreSQLTokenRepository(db), nil
	case "mysql":
		return tokensRepository.NewMySQLTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenUseCase creates the token use case with all its dependencies.
func (c *Container) initTokenUseCase() (tokensUseCase.TokenUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for token use case: %w", err)
	}

	tokenRepo, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for token use case: %w", err)
	}

	tokenCipher, err := c.TokenCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get token cipher for token use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
	}

	useCase := tokensUseCase.NewTokenUseCase(txManager, tokenRepo, tokenCipher, c.Hasher())

	return tokensUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics), nil
}
