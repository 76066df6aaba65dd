// raddesk is the command line front end for the radiology workflow state
// layer. Build with: go build -o bin/raddesk ./cmd/raddesk
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
