package logger

import (
	"fmt"
	"os"
	"strings"
)

type Env string

const (
	EnvDev   Env = "dev"
	EnvStage Env = "stage"
	EnvProd  Env = "prod"
)

// envVars проверяются по порядку, побеждает первая непустая.
var envVars = []string{"GEOROOM_ENV", "APP_ENV"}

// ParseEnv принимает алиасы вроде production/staging. Пустая строка
// возвращает "" без ошибки: тогда Init сам вызовет DetectEnv.
func ParseEnv(s string) (Env, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "dev", "development", "local":
		return EnvDev, nil
	case "stage", "staging", "preprod":
		return EnvStage, nil
	case "prod", "production":
		return EnvProd, nil
	default:
		return "", fmt.Errorf("unknown env %q", s)
	}
}

// DetectEnv читает окружение процесса; мусор в переменной даёт dev.
func DetectEnv() Env {
	for _, key := range envVars {
		env, err := ParseEnv(os.Getenv(key))
		if err != nil {
			return EnvDev
		}
		if env != "" {
			return env
		}
	}
	return EnvDev
}

// Structured: stage и prod пишут JSON, dev пишет текст.
func (e Env) Structured() bool {
	return e == EnvStage || e == EnvProd
}
