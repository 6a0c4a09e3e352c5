// Package main is the pxhist CLI entry point.
package main

import (
	"github.com/harrison/pxhist/internal/cmd"
)

// Version is the current version of the pxhist application.
const Version = "1.0.0"

func main() {
	cmd.Version = Version
	cmd.Execute()
}
