package main

import "backoffice/internal/cmd"

// main runs the backoffice command tree. Without arguments it serves the
// console API.
func main() {
	cmd.Execute()
}
