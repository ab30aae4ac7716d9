// Package testing moves test binaries to the project root and points the log
// directory at a throwaway location.
//
// Import it for its side effect from any _test.go file:
//
//	import _ "liyu1981.xyz/haccp-alert-service/pkg/testing"
package testing

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
)

const logDirEnvKey = "HACCP_LOG_DIR"

func init() {
	_, filename, _, _ := runtime.Caller(0)
	root := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}

	if _, found := os.LookupEnv(logDirEnvKey); !found {
		_ = os.Setenv(logDirEnvKey, filepath.Join(os.TempDir(), "haccp-alert-service-test-logs"))
	}
}
