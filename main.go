// synotag is a command-line client for the Synology Photos API with
// batch tagging support.
package main

import "github.com/synotag/synotag/cmd"

func main() {
	cmd.Execute()
}
