//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	goPackageName = "github.com/tarantool/populate/cli"

	asmflags = "all=-trimpath=${PWD}"
	gcflags  = "all=-trimpath=${PWD}"

	packagePath = "./cli"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
	}
	goExecutableName       = "go"
	populateExecutableName = "populate"

	Aliases = map[string]any{
		"build": Build.Release,
		"unit":  Unit.Default,
	}
)

func init() {
	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExecutableName = specifiedGoExe
	}
	os.Setenv("GO111MODULE", "on")
}

type optsUpdater func([]string) []string

// appendFlags appends flags passed in args.
func appendFlags(flags ...string) optsUpdater {
	return func(args []string) []string {
		return append(args, flags...)
	}
}

// appendLdFlags appends linker flags.
func appendLdFlags(flags ...string) optsUpdater {
	return func(args []string) []string {
		buildLdflags := append(append([]string{}, ldflags...), flags...)
		return append(append(args, "-ldflags"), strings.Join(buildLdflags, " "))
	}
}

// Building populate executable.
func buildPopulate(argUpdaters ...optsUpdater) error {
	args := []string{"build", "-o", populateExecutableName}
	for _, updateArguments := range argUpdaters {
		args = updateArguments(args)
	}
	args = append(args,
		"-asmflags", asmflags,
		"-gcflags", gcflags,
		packagePath)
	if err := sh.RunWith(getBuildEnvironment(), goExecutableName, args...); err != nil {
		return fmt.Errorf("Failed to build populate executable: %s", err)
	}
	return nil
}

type Build mg.Namespace

// Building release populate executable without debug info.
func (Build) Release() error {
	fmt.Println("Building release populate...")

	return buildPopulate(appendLdFlags("-s", "-w"))
}

// Building debug populate executable.
func (Build) Debug() error {
	fmt.Println("Building debug populate...")

	return buildPopulate(appendLdFlags())
}

// Building populate executable with coverage.
func (Build) Coverage() error {
	fmt.Println("Building release populate with coverage...")

	if err := buildPopulate(appendFlags("-cover"), appendLdFlags("-s", "-w")); err != nil {
		return err
	}
	fmt.Println(`Set coverage data destination directory (must exist) and run populate:
	GOCOVERDIR=./<coverage_dest_dir> populate <opts>`)
	return nil
}

type Unit mg.Namespace

func runUnitTests(flags []string) error {
	args := []string{"test"}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	args = append(args, "./...")
	args = append(args, flags...)

	return sh.RunV(goExecutableName, args...)
}

// Run unit tests.
func (Unit) Default() error {
	fmt.Println("Running unit tests...")

	return runUnitTests([]string{})
}

// Run unit tests with code coverage.
func (Unit) Coverage() error {
	fmt.Println("Running unit tests with code coverage...")

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	coverDir := filepath.Join(cwd, "coverage", "unit")
	if err := os.MkdirAll(coverDir, 0o750); err != nil {
		return err
	}

	err = runUnitTests([]string{
		"-cover",
		"-args", fmt.Sprintf(`-test.gocoverdir=%s`, coverDir),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Coverage data is saved to %q\n", coverDir)
	return nil
}

// Run golangci-lint.
func Lint() error {
	fmt.Println("Running go linter...")

	return sh.RunV("golangci-lint", "run")
}

// Run all tests together.
func Test() {
	mg.SerialDeps(Lint, Unit.Default)
}

// Cleanup directory.
func Clean() {
	fmt.Println("Cleaning directory...")

	os.Remove(populateExecutableName)
	os.RemoveAll("coverage")
}

// getBuildEnvironment return map with build environment variables.
func getBuildEnvironment() map[string]string {
	var err error

	var currentDir string
	var gitTag string
	var gitCommit string

	if currentDir, err = os.Getwd(); err != nil {
		log.Warnf("Failed to get current directory: %s", err)
	}

	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
		"PWD":           currentDir,
		"CGO_ENABLED":   "0",
	}
}
