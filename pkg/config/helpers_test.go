package config_test

import (
	"os"
	"testing"
)

// isolateEnv unsets keys for the duration of the test and restores them afterwards.
func isolateEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unset %s: %v", k, err)
		}
	}
}
