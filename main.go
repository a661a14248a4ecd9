package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/demoapi/demoapi-contract-tests/config"
	"github.com/demoapi/demoapi-contract-tests/demoapitests"
	"github.com/demoapi/demoapi-contract-tests/framework"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the test suite as described by the command line and returns the process
// exit code. Configuration problems are reported before any test runs.
func run(args []string, stdout, stderr io.Writer) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	cfg, err := config.Load(config.Options{
		File:    params.configFile,
		EnvFile: params.envFile,
		BaseURL: params.baseURL,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(stdout, "", log.LstdFlags)
	}

	harness, err := framework.NewTestHarness(cfg.BaseURL, mainDebugLogger)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %s\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Testing demo API at %s\n\n", harness.BaseURL())
	framework.PrintFilterDescription(stdout, params.filters)

	fmt.Fprintln(stdout, "Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := demoapitests.RunTestSuite(harness, params.filters.AsFilter, testLogger)

	fmt.Fprintln(stdout)
	framework.PrintResults(stdout, results)
	if !results.OK() {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "To run only the failed tests again:")
		fmt.Fprintf(stdout, "  %s\n", params.rerunCommand(args[0], results.Failures))
		return 1
	}
	return 0
}
