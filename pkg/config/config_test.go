/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.SetPath(filepath.Join(t.TempDir(), ConfigDir, ConfigFile))
	return cfg
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultApiPort, cfg.Port)
	assert.Equal(t, uint16(DefaultTicksPerMicrosecond), cfg.TicksPerMicrosecond)
	assert.Equal(t, DefaultWakeupRepeat, cfg.WakeupRepeat)
	assert.Nil(t, cfg.LogRotate())
}

func TestPersistAndLoad(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Port = 9000
	cfg.WakeupRepeat = 10
	cfg.LogConfig.File = "/tmp/esl.log"
	require.NoError(t, cfg.Persist(false))

	loaded := NewDefaultConfig()
	loaded.SetPath(cfg.Path())
	require.NoError(t, loaded.Load())

	assert.Equal(t, 9000, loaded.Port)
	assert.Equal(t, 10, loaded.WakeupRepeat)
	require.NotNil(t, loaded.LogRotate())
	assert.Equal(t, "/tmp/esl.log", loaded.LogRotate().Filename)
}

func TestPersistDoesNotOverwrite(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.Persist(false))

	err := cfg.Persist(false)
	assert.ErrorAs(t, err, &ErrConfigFileExists{})
	assert.NoError(t, cfg.Persist(true))
}

func TestLoadMissingFile(t *testing.T) {
	cfg := newTestConfig(t)
	assert.NoError(t, cfg.Load())
	assert.Equal(t, DefaultApiPort, cfg.Port)
}

func TestLoadPartialFile(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Path()), 0755))
	require.NoError(t, os.WriteFile(cfg.Path(), []byte("encoder:\n  ticksPerMicrosecond: 40\n"), 0644))

	require.NoError(t, cfg.Load())
	assert.Equal(t, uint16(40), cfg.TicksPerMicrosecond)
	assert.Equal(t, DefaultWakeupRepeat, cfg.WakeupRepeat)
	assert.Equal(t, DefaultMQTTTopic, cfg.Topic)
	assert.Empty(t, cfg.Broker)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
	}{
		{name: "zero port", modify: func(cfg *Config) { cfg.Port = 0 }},
		{name: "zero tick rate", modify: func(cfg *Config) { cfg.TicksPerMicrosecond = 0 }},
		{name: "tick rate overflow", modify: func(cfg *Config) { cfg.TicksPerMicrosecond = 1000 }},
		{name: "negative repeat", modify: func(cfg *Config) { cfg.WakeupRepeat = -1 }},
		{name: "missing section", modify: func(cfg *Config) { cfg.ApiConfig = nil }},
		{name: "mqtt qos", modify: func(cfg *Config) { cfg.QoS = 3 }},
		{name: "mqtt broker without topic", modify: func(cfg *Config) {
			cfg.Broker = "tcp://localhost:1883"
			cfg.Topic = ""
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.modify(cfg)
			assert.ErrorAs(t, cfg.Validate(), &ErrInvalidConfig{})
		})
	}
}
