package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/demoapi/demoapi-contract-tests/config"
	"github.com/demoapi/demoapi-contract-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	configFile string
	envFile    string
	baseURL    string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configFile, "config", config.DefaultFile, "JSON or YAML file containing "+config.BaseURLKey)
	fs.StringVar(&c.envFile, "env-file", "", "optional .env file providing "+config.BaseURLKey+" (a non-blank environment variable wins)")
	fs.StringVar(&c.baseURL, "url", "", "base URL of the demo API (overrides the config file and environment)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

// rerunCommand returns a command line that repeats this run for only the failed tests.
func (c *commandParams) rerunCommand(program string, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	if c.configFile != config.DefaultFile {
		b.add("-config", c.configFile)
	}
	if c.envFile != "" {
		b.add("-env-file", c.envFile)
	}
	if c.baseURL != "" {
		b.add("-url", c.baseURL)
	}
	if c.debug {
		b.add("-debug")
	}
	if c.debugAll {
		b.add("-debug-all")
	}
	for _, f := range failures {
		b.add("-run", framework.ExactPattern(f.TestID))
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
