// Command algoctl is a non-normative demonstration CLI over this module's
// data structures: it prints the exact buffer sizes ComputeSize reports
// for a given capacity, and runs each traversal against a small built-in
// graph so the callback ordering can be seen without writing a Go
// program.
package main

func main() {
	execute()
}
