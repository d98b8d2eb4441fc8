// Command ndnlite manages local signing keys and exercises the Data
// packet engine and direct face dispatcher from the command line.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
