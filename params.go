package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	"github.com/alexisjeriha/mission-config-contract-tests/framework"
)

const (
	defaultServiceURL    = "http://localhost:1234"
	defaultCapacity      = 6
	defaultStatusTimeout = time.Second * 10
)

type commandParams struct {
	serviceURL string
	capacity   int
	filters    framework.RegexFilters
	timeout    time.Duration
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", defaultServiceURL, "mission config service URL")
	fs.IntVar(&c.capacity, "capacity", defaultCapacity, "record capacity the service is configured with")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.DurationVar(&c.timeout, "timeout", defaultStatusTimeout, "how long to wait for the service to respond at startup")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.capacity < 1 {
		fmt.Fprintln(os.Stderr, "-capacity must be at least 1")
		return false
	}
	return true
}

// rerunCommand builds a shell command line that reruns exactly the tests
// that failed. The filter is evaluated at every level of the test tree, so a
// pattern is emitted for each ancestor group as well as for the test itself.
func rerunCommand(params commandParams, results framework.Results) string {
	var b commandBuilder
	b.add(os.Args[0], "-url", params.serviceURL)
	if params.capacity != defaultCapacity {
		b.add("-capacity", strconv.Itoa(params.capacity))
	}
	patterns := map[string]bool{}
	for _, failure := range results.Failures {
		path := failure.TestID.Path
		for i := 1; i <= len(path); i++ {
			id := framework.TestID{Path: path[:i]}
			pattern := "^" + regexp.QuoteMeta(id.String()) + "$"
			if !patterns[pattern] {
				patterns[pattern] = true
				b.add("-run", pattern)
			}
		}
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
