// Package hostid derives a stable identity and platform descriptor
// for the machine benchmarks run on.
package hostid

import (
	"fmt"
	"os"
	"runtime"
)

// EnvOverride names the environment variable that pins the host id,
// useful on CI machines whose hostnames change between runs.
const EnvOverride = "PERFMETER_HOST_ID"

// Get returns a stable identifier for the current machine.
func Get() (string, error) {
	if id := os.Getenv(EnvOverride); id != "" {
		return id, nil
	}

	return os.Hostname()
}

// Platform describes the OS and architecture, e.g. "linux/amd64".
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
