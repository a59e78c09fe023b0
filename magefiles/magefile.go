//go:build mage

// Package main contains Mage build targets for cosx developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "cosx"
	cmdPkg  = "./cmd/cosx"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit and golden tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Extract builds the binary and runs it with the default paths.
// Set COSX_INPUT_PATH or pass a cosx.yaml to point it elsewhere.
func Extract() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "extract", "--summary")
}

// Clean removes the build output.
func Clean() error {
	return os.RemoveAll(binDir)
}
