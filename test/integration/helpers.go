//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIBaseURL     string
	Token          string
	AccountID      string
	BusinessID     string
	FreshbooksPath string
	Verbose        bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIBaseURL:     os.Getenv("FRESHBOOKS_API_BASE_URL"),
		Token:          os.Getenv("FRESHBOOKS_TOKEN"),
		AccountID:      os.Getenv("FRESHBOOKS_ACCOUNT_ID"),
		BusinessID:     os.Getenv("FRESHBOOKS_BUSINESS_ID"),
		FreshbooksPath: getFreshbooksPath(),
		Verbose:        os.Getenv("FRESHBOOKS_VERBOSE") == "true",
	}
}

// getFreshbooksPath determines the path to the freshbooks binary
func getFreshbooksPath() string {
	if path := os.Getenv("FRESHBOOKS_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../freshbooks",
		"./freshbooks",
		"../freshbooks",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "freshbooks"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.Token == "" || config.AccountID == "" {
		t.Skip("FRESHBOOKS_TOKEN or FRESHBOOKS_ACCOUNT_ID not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.FreshbooksPath); err != nil {
		t.Skipf("freshbooks binary not found at %s, skipping integration test", config.FreshbooksPath)
	}
}

// CommandRunner runs the freshbooks binary against an isolated config file
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a freshbooks command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a freshbooks command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)

	// #nosec G204 -- test helper running the binary under test
	cmd := exec.Command(runner.config.FreshbooksPath, args...)
	cmd.Env = append(os.Environ(),
		"FRESHBOOKS_TOKEN="+runner.config.Token,
		"FRESHBOOKS_ACCOUNT_ID="+runner.config.AccountID,
		"FRESHBOOKS_BUSINESS_ID="+runner.config.BusinessID,
	)
	if runner.config.APIBaseURL != "" {
		cmd.Env = append(cmd.Env, "FRESHBOOKS_API_BASE_URL="+runner.config.APIBaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.FreshbooksPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a command with JSON output and decodes the result into out
func (runner *CommandRunner) RunJSON(out any, args ...string) error {
	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	if err != nil {
		return fmt.Errorf("%s: %w", strings.TrimSpace(stderr), err)
	}

	return json.Unmarshal([]byte(stdout), out)
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupResource attempts to delete a test resource
func (runner *CommandRunner) CleanupResource(resourceType, id string) {
	stdout, stderr, err := runner.Run(resourceType, "delete", id, "--force")
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, id, stdout, stderr)
	}
}
