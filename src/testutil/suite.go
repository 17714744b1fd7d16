// Package testutil holds the timing and summary helpers shared by package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"
)

// Timer measures how long a test case takes.
type Timer struct {
	start time.Time
	name  string
}

func NewTimer(name string) *Timer {
	return &Timer{start: time.Now(), name: name}
}

// Stop returns the elapsed time and prints it.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, d)
	return d
}

// Result is one timed case.
type Result struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// Suite collects results for a summary printed at the end of a test function.
type Suite struct {
	Name    string
	Results []Result
	total   time.Duration
	passed  int
}

func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// Run executes fn as a subtest and records its duration and outcome.
func (s *Suite) Run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Helper()
	timer := NewTimer(name)
	ok := t.Run(name, fn)
	d := timer.Stop()
	s.Results = append(s.Results, Result{Name: name, Duration: d, Passed: ok})
	s.total += d
	if ok {
		s.passed++
	}
}

// PrintSummary prints pass/fail counts and per-case durations.
func (s *Suite) PrintSummary() {
	n := len(s.Results)
	fmt.Printf("\n📊 Test Suite Summary: %s\n", s.Name)
	fmt.Printf("   Total Tests: %d\n", n)
	fmt.Printf("   Passed: %d ✅\n", s.passed)
	fmt.Printf("   Failed: %d ❌\n", n-s.passed)
	fmt.Printf("   Total Time: %v\n", s.total)
	if n == 0 {
		return
	}
	fmt.Printf("   Average Time: %v\n", s.total/time.Duration(n))
	for _, r := range s.Results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, r.Name, r.Duration)
	}
	fmt.Println()
}
