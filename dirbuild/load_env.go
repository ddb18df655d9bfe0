package dirbuild

import (
	"fmt"
	"os"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"

	"github.com/goccy/go-yaml"
)

const (
	EnvEnv = "K8SAGENT_ENV"
)

// LoadEnv reads variables from the YAML mapping in $K8SAGENT_ENV.
func LoadEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	var envAny any
	if err := yaml.Unmarshal([]byte(envEnv), &envAny); err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	theEnvEnv, ok := envAny.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error decoding env $%s: wrong type %T", EnvEnv, envAny)
	}
	if debug.Load() {
		debug.Logf("\nloaded env from env: %v\n", theEnvEnv)
	}
	return theEnvEnv, nil
}
