// Package jobs holds the scheduled work: the weekly calendar digest and the
// daily news summary. Each job builds a JobFunc for the scheduler to run.
package jobs

// JobFunc is a type for job function that will be executed by the scheduler.
type JobFunc func()
