package utils

import (
	"fmt"
	"os"
	"strconv"
)

type EnvVarType interface {
	string | int | bool
}

func parseEnv[T EnvVarType](envVar, envValue string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not an integer", envVar, envValue))
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a boolean", envVar, envValue))
		}
		*ptr = boolValue
	}
	return out
}

func GetEnv[T EnvVarType](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[T](envVar, envValue)
}

func GetRequiredEnv[T EnvVarType](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		panic(fmt.Sprintf("environment variable %s is required", envVar))
	}
	return parseEnv[T](envVar, envValue)
}
