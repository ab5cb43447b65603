package session

import "github.com/getgradient/gradient/core"

// NewServiceMock returns the service for tests.
func NewServiceMock(repo Repository, log core.Logger) Service {
	return NewService(repo, log)
}
