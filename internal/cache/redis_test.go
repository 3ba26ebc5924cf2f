package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient(t *testing.T) {
	assert.Nil(t, NewRedisClient(context.Background(), ""))
	assert.Nil(t, NewRedisClient(context.Background(), "127.0.0.1:1"))
}
