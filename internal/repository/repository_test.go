package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoriesWithoutPool(t *testing.T) {
	_, err := NewRoleRepository(nil).ListByUser(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNoDatabase)

	_, err = NewProfileRepository(nil).GetByUserID(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestRoleCacheKey(t *testing.T) {
	assert.Equal(t, "portal:roles:7b0c6f1e", roleCacheKey("7b0c6f1e"))
}
