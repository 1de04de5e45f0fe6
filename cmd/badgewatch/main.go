// cmd/badgewatch/main.go
package main

import (
	"os"

	"github.com/tamzrod/badgewatch/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
