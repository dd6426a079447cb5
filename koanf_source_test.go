package envspec_test

import (
	"testing"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmie/x/envspec"
)

func TestKoanfSource(t *testing.T) {
	k := koanf.New(".")
	require.NoError(t, k.Load(confmap.Provider(map[string]interface{}{
		"PORT":     8080,
		"APP_ENV":  "staging",
		"FEATURES": "on",
		"EMPTY":    "",
	}, "."), nil))

	source := envspec.NewKoanfSource(k, "")
	assert.Equal(t, "Koanf", source.Name())
	assert.Equal(t, "overrides", envspec.NewKoanfSource(k, "overrides").Name())

	val, found, err := source.Lookup("APP_ENV")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "staging", val)

	_, found, err = source.Lookup("MISSING")
	assert.NoError(t, err)
	assert.False(t, found)

	port, err := envspec.ReadFrom(source, "PORT", envspec.Number())
	require.NoError(t, err)
	assert.Equal(t, float64(8080), port)

	features, err := envspec.ReadFrom(source, "FEATURES", envspec.Boolean())
	require.NoError(t, err)
	assert.True(t, features)

	_, err = envspec.ReadFrom(source, "APP_ENV", envspec.Enum("development", "production"))
	assert.ErrorIs(t, err, envspec.ErrInvalidChoice)

	empty, err := envspec.ReadFrom(source, "EMPTY", envspec.String().Default("none"))
	require.NoError(t, err)
	assert.Equal(t, "none", empty)
}

func TestKoanfSource_NestedPaths(t *testing.T) {
	k := koanf.New(".")
	require.NoError(t, k.Load(confmap.Provider(map[string]interface{}{
		"db.host": "db.local",
		"db.port": 5432,
	}, "."), nil))

	source := envspec.NewKoanfSource(k, "")

	val, found, err := source.Lookup("db.host")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "db.local", val)

	val, found, err = source.Lookup("db")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "", val)

	_, err = envspec.ReadFrom(source, "db", envspec.String())
	assert.ErrorIs(t, err, envspec.ErrRequired)

	mode, err := envspec.ReadFrom(source, "db", envspec.String().Default("fallback"))
	require.NoError(t, err)
	assert.Equal(t, "fallback", mode)
}
