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

	"sigs.k8s.io/yaml"

	"jinr.ru/greenlab/go-esl/pkg/log"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

type LogConfig struct {
	Level string `json:"level"`
	// File enables a rotated log file in addition to stderr
	File       string `json:"file,omitempty"`
	MaxSizeMB  int    `json:"maxSizeMB,omitempty"`
	MaxBackups int    `json:"maxBackups,omitempty"`
	MaxAgeDays int    `json:"maxAgeDays,omitempty"`
	Compress   bool   `json:"compress,omitempty"`
}

type ApiConfig struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
}

type EncoderConfig struct {
	TicksPerMicrosecond uint16 `json:"ticksPerMicrosecond"`
}

type TransmitConfig struct {
	WakeupRepeat int `json:"wakeupRepeat"`
	// FrameIntervalMs is the minimal gap between two frames, 0 sends back to back
	FrameIntervalMs int `json:"frameIntervalMs"`
}

// MQTTConfig selects the MQTT bridge as transmitter. Empty Broker disables it.
type MQTTConfig struct {
	Broker    string `json:"broker,omitempty"`
	ClientID  string `json:"clientID"`
	Topic     string `json:"topic"`
	QoS       byte   `json:"qos"`
	TimeoutMs int    `json:"timeoutMs"`
}

type Config struct {
	*LogConfig      `json:"log,omitempty"`
	*ApiConfig      `json:"api,omitempty"`
	*EncoderConfig  `json:"encoder,omitempty"`
	*TransmitConfig `json:"transmit,omitempty"`
	*MQTTConfig     `json:"mqtt,omitempty"`
	DBPath          string `json:"dbPath"`
	filepath        string
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, DBFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		LogConfig: &LogConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
		ApiConfig: &ApiConfig{
			Address: DefaultApiAddress,
			Port:    DefaultApiPort,
		},
		EncoderConfig: &EncoderConfig{
			TicksPerMicrosecond: DefaultTicksPerMicrosecond,
		},
		TransmitConfig: &TransmitConfig{
			WakeupRepeat:    DefaultWakeupRepeat,
			FrameIntervalMs: DefaultFrameIntervalMs,
		},
		MQTTConfig: &MQTTConfig{
			ClientID:  DefaultMQTTClientID,
			Topic:     DefaultMQTTTopic,
			QoS:       DefaultMQTTQoS,
			TimeoutMs: DefaultMQTTTimeoutMs,
		},
		DBPath:   DefaultDBPath(),
		filepath: DefaultConfigPath(),
	}
}

func (c *Config) Path() string {
	return c.filepath
}

func (c *Config) SetPath(path string) {
	c.filepath = path
}

// Load reads the config file over the defaults. A missing file is not an error.
func (c *Config) Load() error {
	if _, err := os.Stat(c.filepath); os.IsNotExist(err) {
		log.Debug("Config file not found, using defaults: %s", c.filepath)
		return nil
	}
	if err := c.LoadConfig(); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) LoadConfig() error {
	data, err := os.ReadFile(c.filepath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	return os.WriteFile(c.filepath, data, 0644)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) Validate() error {
	if c.LogConfig == nil || c.ApiConfig == nil || c.EncoderConfig == nil || c.TransmitConfig == nil || c.MQTTConfig == nil {
		return ErrInvalidConfig{What: "log, api, encoder, transmit and mqtt sections are required"}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return ErrInvalidConfig{What: "api port must be in range 1..65535"}
	}
	if _, err := pp16.NewEncoder(c.TicksPerMicrosecond); err != nil {
		return ErrInvalidConfig{What: err.Error()}
	}
	if c.WakeupRepeat < 0 || c.FrameIntervalMs < 0 {
		return ErrInvalidConfig{What: "transmit values must not be negative"}
	}
	if c.QoS > 2 {
		return ErrInvalidConfig{What: "mqtt qos must be 0, 1 or 2"}
	}
	if c.Broker != "" && (c.Topic == "" || c.TimeoutMs <= 0) {
		return ErrInvalidConfig{What: "mqtt topic and positive timeout are required with a broker"}
	}
	return nil
}

// LogRotate returns the file output settings for log.Init
func (c *Config) LogRotate() *log.Rotate {
	if c.LogConfig == nil || c.LogConfig.File == "" {
		return nil
	}
	return &log.Rotate{
		Filename:   c.LogConfig.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}
