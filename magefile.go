//go:build mage

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type (
	Test  mg.Namespace
	Build mg.Namespace
)

const (
	binary      = "bin/ticketguard"
	mainPackage = "./cmd/ticketguard"
	versionVar  = "github.com/sqve/ticketguard/internal/app.Version"

	// The hook path is small; anything below this means a policy branch
	// lost its test.
	coverageThreshold = 85.0
)

var Aliases = map[string]interface{}{
	"build": Build.Dev,
	"test":  Test.Unit,
}

// Unit runs the package tests. Scripts behind the integration tag are
// excluded by default.
func (Test) Unit() error {
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "-short", "./...")
}

// Integration runs the testscript scenarios, which drive real git commits
// and pushes through installed hooks.
func (Test) Integration() error {
	fmt.Println("Running integration tests...")
	return sh.RunV("go", "test", "-tags=integration", "-timeout=300s", mainPackage+"/...")
}

// Coverage runs unit tests with coverage and fails below coverageThreshold.
func (Test) Coverage() error {
	fmt.Println("Running unit tests with coverage...")

	if err := os.MkdirAll("coverage", 0o755); err != nil {
		return err
	}

	args := []string{"test", "-short", "-coverprofile=coverage/coverage.out", "-coverpkg=./internal/...", "-covermode=atomic"}
	if os.Getenv("CI") != "" {
		args = append(args, "-race")
	}
	args = append(args, "./...")
	if err := sh.RunV("go", args...); err != nil {
		return err
	}

	output, err := sh.Output("go", "tool", "cover", "-func=coverage/coverage.out")
	if err != nil {
		return err
	}
	total, err := totalCoverage(output)
	if err != nil {
		return err
	}

	fmt.Printf("Total coverage: %.1f%%\n", total)
	if total < coverageThreshold {
		return fmt.Errorf("coverage %.1f%% is below %.0f%%", total, coverageThreshold)
	}
	return nil
}

func totalCoverage(report string) (float64, error) {
	lines := strings.Split(strings.TrimSpace(report), "\n")
	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) == 0 || fields[0] != "total:" {
		return 0, fmt.Errorf("no total in coverage report")
	}
	return strconv.ParseFloat(strings.TrimSuffix(fields[len(fields)-1], "%"), 64)
}

// Dev builds ticketguard stamped with the current git revision.
func (Build) Dev() error {
	fmt.Println("Building ticketguard...")
	return sh.RunV("go", "build", "-ldflags", ldflags(revision()), "-o", binary, mainPackage)
}

// Release builds static binaries for the platforms git hooks run on.
func (Build) Release() error {
	version := revision()
	for _, target := range []string{"linux/amd64", "linux/arm64", "darwin/amd64", "darwin/arm64", "windows/amd64"} {
		goos, goarch, _ := strings.Cut(target, "/")
		output := fmt.Sprintf("%s-%s-%s", binary, goos, goarch)
		if goos == "windows" {
			output += ".exe"
		}

		fmt.Printf("Building %s...\n", output)
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWithV(env, "go", "build", "-ldflags", "-s -w "+ldflags(version), "-o", output, mainPackage); err != nil {
			return err
		}
	}
	return nil
}

// Hooks installs the freshly built binary as this repository's hooks.
func Hooks() error {
	mg.Deps(Build.Dev)
	return sh.RunV(binary, "install", "--copy", "--force")
}

func ldflags(version string) string {
	return fmt.Sprintf("-X %s=%s", versionVar, version)
}

func revision() string {
	if v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && v != "" {
		return v
	}
	return "dev"
}

// Lint runs golangci-lint (with --fix unless in CI).
func Lint() error {
	fmt.Println("Running golangci-lint...")
	if os.Getenv("CI") != "" {
		return sh.RunV("golangci-lint", "run")
	}
	return sh.RunV("golangci-lint", "run", "--fix")
}

func CI() error {
	mg.SerialDeps(Clean, Lint, Test.Coverage, Test.Integration, Build.Dev)
	fmt.Println("CI pipeline completed successfully!")
	return nil
}

// Clean removes build and coverage output.
func Clean() error {
	for _, dir := range []string{"coverage", "bin"} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return sh.RunV("go", "clean", "-testcache")
}

// Default target runs unit tests.
func Default() error {
	return Test{}.Unit()
}
