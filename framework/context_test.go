package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runNames(results Results) []string {
	var names []string
	for _, r := range results.Tests {
		names = append(names, r.TestID.String())
	}
	return names
}

func TestRunCollectsResultsForSubtests(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("passes", func(c *Context) {})
			c.Run("fails", func(c *Context) {
				c.Errorf("deliberate failure")
			})
		})
	})

	assert.False(t, results.OK())
	assert.Contains(t, runNames(results), "group/passes")
	assert.Contains(t, runNames(results), "group/fails")
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "group/fails", results.Failures[0].TestID.String())
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "deliberate failure", results.Failures[0].Errors[0].Error())
}

func TestFailNowStopsTestWithoutFailingSiblings(t *testing.T) {
	secondRan := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("stops early", func(c *Context) {
			c.Errorf("boom")
			c.FailNow()
			c.Errorf("never reached")
		})
		c.Run("still runs", func(c *Context) {
			secondRan = true
		})
	})

	assert.True(t, secondRan)
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
}

func TestUnexpectedPanicIsReportedAsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic(errors.New("unexpected"))
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic")
}

func TestSkippedTestIsNotAFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not applicable")
			c.Errorf("never reached")
		})
	})

	assert.True(t, results.OK())
}

func TestFilterExcludesTests(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^wanted"))

	ran := map[string]bool{}
	Run(filters.AsFilter, nil, func(c *Context) {
		c.Run("wanted test", func(c *Context) { ran["wanted"] = true })
		c.Run("unwanted test", func(c *Context) { ran["unwanted"] = true })
	})

	assert.True(t, ran["wanted"])
	assert.False(t, ran["unwanted"])
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("slow"))

	assert.True(t, filters.AsFilter(TestID{Path: []string{"create", "basic"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"create", "slow path"}}))
}
