package resource

import (
	"context"
	"testing"

	"github.com/narender/store-manager/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func TestNewResourceCarriesServiceIdentity(t *testing.T) {
	cfg := config.NewConfig(config.WithServiceName("store-manager-test"), config.WithEnvironment("staging"))

	res, err := NewResource(context.Background(), cfg)
	require.NoError(t, err)

	set := res.Set()
	name, ok := set.Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "store-manager-test", name.AsString())

	env, ok := set.Value(semconv.DeploymentEnvironmentKey)
	require.True(t, ok)
	assert.Equal(t, "staging", env.AsString())
}
