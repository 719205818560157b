package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil trending service returns error", func(t *testing.T) {
		ports := &Ports{Readme: &mockReadmeService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingTrendingService)
	})

	t.Run("nil readme service returns error", func(t *testing.T) {
		ports := &Ports{Trending: &mockTrendingService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingReadmeService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Trending: &mockTrendingService{},
			Readme:   &mockReadmeService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports fail", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingTrendingService)
	})

	t.Run("both services are required", func(t *testing.T) {
		ports := &Ports{
			Trending: &mockTrendingService{},
			Readme:   &mockReadmeService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
