// Package missiontests contains the mission configuration contract tests
// themselves and their supporting API.
//
// Harness infrastructure that is not specific to this domain, such as test
// identifiers, filters, and result reporting, is in the lower-level framework
// package; the HTTP client for the service under test is in the client
// package.
package missiontests
