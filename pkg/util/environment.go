package util

import (
	"os"
	"strings"
)

const EnvironmentPrefix = "ROUTELEDGER_"

// GetEnvironmentVariables returns the ROUTELEDGER_ variables of the process,
// keyed by name with the prefix removed.
func GetEnvironmentVariables() map[string]string {
	return ParseEnvironment(os.Environ())
}

func ParseEnvironment(environ []string) map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range environ {
		name, value, found := strings.Cut(variable, "=")
		if !found || !strings.HasPrefix(name, EnvironmentPrefix) {
			continue
		}

		environmentVariables[strings.TrimPrefix(name, EnvironmentPrefix)] = value
	}

	return environmentVariables
}
