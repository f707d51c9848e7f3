package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://host:notaport/%zz")
	assert.Error(t, err)
}

func TestConnectHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool, err := Connect(ctx, "postgres://expenses@127.0.0.1:1/expenses")
	assert.Error(t, err)
	assert.Nil(t, pool)
}
