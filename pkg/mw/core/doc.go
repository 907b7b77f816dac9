// Package core contains the plumbing under a chain run: the configuration
// read by the executor, the context values handed to handlers (bound value
// and step info), and the locomotive that drives a single step against its
// timers. It does not sequence steps; package chain does that.
package core
