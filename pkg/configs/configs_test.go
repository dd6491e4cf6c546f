package configs

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(DefaultConfigBytes)))
	require.Equal(t, "snbt", v.GetString("output"))
	require.NotEmpty(t, v.GetStringMap("presets"))
}
