//
// Copyright 2016 Rackspace
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config declares the data structures used for all execution entry points
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	ErrorInvalidInterval = errors.New("sample interval must be positive")
	ErrorInvalidCapacity = errors.New("series capacity must be positive")
)

type Config struct {
	Guid      string
	AgentName string

	// Sampling
	SampleInterval   time.Duration
	SeriesCapacity   int
	CPUNormalization types.CPUNormalization

	// Query transport
	ListenAddress string

	// Self metrics, both optional
	PrometheusUri  string
	StatsdEndpoint string
}

type configEntry struct {
	Name     string
	ValuePtr interface{}
	Tweak    func()
	Allowed  []string
}

func NewConfig(guid string) *Config {
	return &Config{
		Guid:             guid,
		AgentName:        DefaultAgentName,
		SampleInterval:   DefaultSampleInterval,
		SeriesCapacity:   DefaultSeriesCapacity,
		CPUNormalization: DefaultCPUNormalization,
		ListenAddress:    DefaultListenAddress,
	}
}

// LoadFromFile populates this Config with the values defined in that file. Files ending in .yaml or .yml
// are read as a YAML mapping, anything else as whitespace separated "key value" lines with # comments.
func (cfg *Config) LoadFromFile(path string) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = cfg.loadYaml(path)
	default:
		err = cfg.loadLines(path)
	}
	if err != nil {
		return err
	}

	log.WithField("file", path).Info("Loaded configuration")
	return nil
}

func (cfg *Config) loadLines(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	regexComment := regexp.MustCompile(`^\s*#`)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if regexComment.MatchString(line) || strings.TrimSpace(line) == "" {
			continue
		}
		if err := cfg.ParseFields(strings.Fields(line)); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (cfg *Config) loadYaml(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var values map[string]interface{}
	if err := yaml.Unmarshal(content, &values); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	for key, value := range values {
		if value == nil {
			continue
		}
		if err := cfg.ParseFields([]string{key, fmt.Sprint(value)}); err != nil {
			return err
		}
	}

	return nil
}

func (cfg *Config) DefineConfigEntries() []configEntry {
	return []configEntry{
		{
			Name:     "sample_interval",
			ValuePtr: &cfg.SampleInterval,
		},
		{
			Name:     "series_capacity",
			ValuePtr: &cfg.SeriesCapacity,
		},
		{
			Name:     "cpu_normalization",
			ValuePtr: &cfg.CPUNormalization,
			Allowed:  types.ValidCPUNormalizations,
		},
		{
			Name:     "listen_address",
			ValuePtr: &cfg.ListenAddress,
		},
		{
			Name:     "prometheus_uri",
			ValuePtr: &cfg.PrometheusUri,
		},
		{
			Name:     "statsd_endpoint",
			ValuePtr: &cfg.StatsdEndpoint,
		},
		{
			Name:     "agent_name",
			ValuePtr: &cfg.AgentName,
		},
	}
}

// ParseFields applies one "key value" pair. Unknown keys are ignored.
func (cfg *Config) ParseFields(fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("Invalid fields length: %v", fields)
	}

	for _, entry := range cfg.DefineConfigEntries() {
		if entry.Name != fields[0] {
			continue
		}

		raw := fields[1]
		if err := entry.IsAllowed(raw); err != nil {
			return fmt.Errorf("Disallowed value in %s : %v", entry.Name, err)
		}

		switch valuePtr := entry.ValuePtr.(type) {
		case *string:
			*valuePtr = raw
		case *int:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return errors.Wrapf(err, "parsing %s", entry.Name)
			}
			*valuePtr = v
		case *time.Duration:
			v, err := parseDuration(raw)
			if err != nil {
				return errors.Wrapf(err, "parsing %s", entry.Name)
			}
			*valuePtr = v
		case *types.CPUNormalization:
			v, err := types.ParseCPUNormalization(raw)
			if err != nil {
				return errors.Wrapf(err, "parsing %s", entry.Name)
			}
			*valuePtr = v
		default:
			return fmt.Errorf("Unsupported config entry type for %s", entry.Name)
		}

		if entry.Tweak != nil {
			entry.Tweak()
		}
		return nil
	}

	log.WithField("key", fields[0]).Debug("Ignoring unknown configuration key")
	return nil
}

// parseDuration accepts Go duration syntax and, for convenience, a bare number of seconds.
func parseDuration(raw string) (time.Duration, error) {
	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(seconds * float64(time.Second)), nil
	}
	return time.ParseDuration(raw)
}

func (e *configEntry) IsAllowed(actualValue string) error {
	if len(e.Allowed) == 0 {
		return nil
	}

	for _, a := range e.Allowed {
		if a == actualValue {
			return nil
		}
	}

	return fmt.Errorf("The value '%s' is not allowed. Exepcted %v", actualValue, e.Allowed)
}

func (cfg *Config) Validate() error {
	if cfg.SampleInterval <= 0 {
		return ErrorInvalidInterval
	}
	if cfg.SeriesCapacity <= 0 {
		return ErrorInvalidCapacity
	}
	if _, err := types.ParseCPUNormalization(string(cfg.CPUNormalization)); err != nil {
		return err
	}
	return nil
}

// SeriesWindow is how much history the series covers once full.
func (cfg *Config) SeriesWindow() time.Duration {
	return time.Duration(cfg.SeriesCapacity) * cfg.SampleInterval
}
