// Command commitkit checks git commit messages against a fixed house
// style. See the guide subcommand for the rules.
package main

import "github.com/optimode/commitkit/internal/cli"

func main() {
	cli.Execute()
}
