// cmd/main.go
package main

import cmd "github.com/mwiater/promstats/cmd/promstats"

// main starts the promstats CLI by delegating to the cobra root command
// defined in the promstats package.
func main() {
	cmd.Execute()
}
