// Command api serves the Floowy song recommendation HTTP API.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("FATAL: %v", err)
		os.Exit(1)
	}
}
