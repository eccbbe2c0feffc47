package resp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/http/resp"
)

func TestDefaultInjector(t *testing.T) {
	// Arrange
	ctx := context.WithValue(context.Background(), microapp.RequestIDKey, "id")
	props := map[string]any{"page": "x"}

	// Act
	resp.DefaultInjector{Keys: []microapp.Key{microapp.RequestIDKey, microapp.IpAddrKey}}.Inject(props, ctx)

	// Assert
	require.Equal(t, map[string]any{"page": "x", "RequestIDKey": "id"}, props)
}

func TestNoopInjector(t *testing.T) {
	// Arrange
	props := map[string]any{}

	// Act
	resp.NoopInjector{}.Inject(props, context.Background())

	// Assert
	require.Empty(t, props)
}
