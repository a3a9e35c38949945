// Package framework contains the low-level test harness infrastructure that is
// not specific to the mission configuration domain.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results. It satisfies the testify TestingT
// interface so standard assertions work against it.
//
// 2. Tests can be selected or excluded with regex filters supplied on the
// command line.
//
// 3. Results are reported through a TestLogger; the console implementation is
// what the command-line harness uses.
//
// The domain-specific code that knows what is being tested is responsible for
// providing the HTTP client for talking to the service under test and a
// domain-specific test API on top of the test context.
package framework
