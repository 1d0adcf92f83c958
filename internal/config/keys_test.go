package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	return &Settings{
		Host:           DefaultHost,
		Port:           DefaultPort,
		TLS:            true,
		RequestTimeout: DefaultRequestTimeout,
		PollInterval:   DefaultPollInterval,
	}
}

func TestSettings_Value(t *testing.T) {
	s := validSettings()
	s.RefreshToken = "key"

	got, err := s.Value("refresh_token")
	require.NoError(t, err, "setting names are case-insensitive")
	assert.Equal(t, "key", got)

	got, err = s.Value(KeyPort)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, got)
}

func TestSettings_Value_UnknownKey(t *testing.T) {
	_, err := validSettings().Value("FLUX_CAPACITOR")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSettings_Set(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T, s *Settings)
	}{
		{KeyRefreshToken, "new-key", func(t *testing.T, s *Settings) {
			assert.Equal(t, "new-key", s.RefreshToken)
		}},
		{KeyHost, "other.example.com", func(t *testing.T, s *Settings) {
			assert.Equal(t, "other.example.com", s.Host)
		}},
		{KeyPort, "8080", func(t *testing.T, s *Settings) {
			assert.Equal(t, 8080, s.Port)
		}},
		{KeyTLS, "false", func(t *testing.T, s *Settings) {
			assert.False(t, s.TLS)
		}},
		{KeyRequestTimeout, "45s", func(t *testing.T, s *Settings) {
			assert.Equal(t, 45*time.Second, s.RequestTimeout)
		}},
		{KeyPollInterval, "3s", func(t *testing.T, s *Settings) {
			assert.Equal(t, 3*time.Second, s.PollInterval)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			require.NoError(t, s.Set(tt.name, tt.value))
			tt.check(t, s)
		})
	}
}

func TestSettings_Set_BadValues(t *testing.T) {
	s := validSettings()

	require.Error(t, s.Set(KeyPort, "not-a-port"))
	require.Error(t, s.Set(KeyTLS, "perhaps"))
	require.Error(t, s.Set(KeyRequestTimeout, "soon"))
	require.ErrorIs(t, s.Set("NOPE", "x"), ErrUnknownKey)
}

func TestSettings_Set_ValidatesResult(t *testing.T) {
	s := validSettings()
	err := s.Set(KeyPort, "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestKeys_MatchesMap(t *testing.T) {
	s := validSettings()
	m := s.Map()

	require.Len(t, m, len(Keys()))
	for _, key := range Keys() {
		assert.Contains(t, m, key)
	}
}
