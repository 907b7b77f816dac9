// Package metrics exports chain runs to prometheus: runs by outcome, run and
// step durations, step failures by kind, errors carried by tolerated runs,
// and runs in progress.
package metrics
