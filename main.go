package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexisjeriha/mission-config-contract-tests/client"
	"github.com/alexisjeriha/mission-config-contract-tests/framework"
	"github.com/alexisjeriha/mission-config-contract-tests/missiontests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	serviceClient, err := client.New(params.serviceURL, params.timeout, mainDebugLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Test service error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running test suite")

	testLogger := framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := missiontests.RunTestSuite(serviceClient, params.capacity, params.filters.AsFilter, &testLogger)

	fmt.Println()
	framework.PrintResults(results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(params, results))
		os.Exit(1)
	}
}
