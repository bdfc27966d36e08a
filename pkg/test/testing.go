/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package test

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/orilang/ori/pkg/errs"
	"github.com/orilang/ori/pkg/oriutil"
	"github.com/orilang/ori/pkg/vm"
	"github.com/pelletier/go-toml/v2"
)

// config is the structure mirroring the test case TOML file.
type config struct {
	// SourceFile is the Ori source to interpret, relative to the test case
	// directory. Defaults to src/main.ori.
	SourceFile string

	// Output is the expected standard output, one element per line.
	Output []string

	// ExitCode is the expected exit status: 0 for success, 65 for a compile
	// error, 70 for a runtime error.
	ExitCode int

	// ErrorMessages is a list of regular expressions that must all match the
	// diagnostics printed to standard error.
	ErrorMessages []string
}

// ExecuteSuite runs the test suite at suitePath: every directory containing a
// test.toml is one test case.
func ExecuteSuite(suitePath string) errs.Error {
	return oriutil.ForEachMatchingFileRecursive(suitePath, regexp.MustCompile("test.toml"),
		func(configPath string) errs.Error {
			return runCase(configPath)
		},
	)
}

// runCase runs the test case defined in configPath.
func runCase(configPath string) errs.Error {
	testPath := path.Dir(configPath)
	testCase := testPath

	testConf, err := readConfig(configPath)
	if err != nil {
		return err
	}
	canonicalizeConfig(testConf)

	source, plainErr := os.ReadFile(path.Join(testPath, testConf.SourceFile))
	if plainErr != nil {
		return errs.NewTestSuite(testCase, "reading source: %v.", plainErr)
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	theVM := vm.New(stdout, stderr)
	result := theVM.Interpret(string(source))
	theVM.Free()

	// Check the exit code.
	if result.ExitCode() != testConf.ExitCode {
		return errs.NewTestSuite(testCase, "expected exit code %v, got %v (stderr: %v).",
			testConf.ExitCode, result.ExitCode(), stderr.String())
	}

	// Check the error messages.
	for _, expectedErrMsg := range testConf.ErrorMessages {
		re, plainErr := regexp.Compile(expectedErrMsg)
		if plainErr != nil {
			return errs.NewTestSuite(testCase, "compiling regexp '%v': %v.", expectedErrMsg, plainErr)
		}

		if !re.Match(stderr.Bytes()) {
			return errs.NewTestSuite(testCase, "expected error message '%v', got '%v'.",
				expectedErrMsg, stderr.String())
		}
	}

	// Check the output.
	actualOutput := splitLines(stdout.String())
	if len(testConf.Output) != len(actualOutput) {
		return errs.NewTestSuite(testCase, "got %v output lines, expected %v (stdout: %q).",
			len(actualOutput), len(testConf.Output), stdout.String())
	}
	for i, actual := range actualOutput {
		if actual != testConf.Output[i] {
			return errs.NewTestSuite(testCase, "at line %v: expected output '%v', got '%v'.",
				i, testConf.Output[i], actual)
		}
	}

	fmt.Printf("Test case passed: %v.\n", testPath)
	return nil
}

// readConfig reads a test configuration from a TOML file.
func readConfig(path string) (*config, errs.Error) {
	tomlSource, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewTestSuite(path, "%v", err.Error())
	}

	tomlConfigData := &config{}
	err = toml.Unmarshal(tomlSource, tomlConfigData)
	if err != nil {
		return nil, errs.NewTestSuite(path, "%v", err.Error())
	}

	return tomlConfigData, nil
}

// canonicalizeConfig makes sure testConf is in the canonical form, giving
// default values to all empty fields.
func canonicalizeConfig(testConf *config) {
	if testConf.SourceFile == "" {
		testConf.SourceFile = path.Join("src", "main.ori")
	}
	if testConf.Output == nil {
		testConf.Output = []string{}
	}
	if testConf.ErrorMessages == nil {
		testConf.ErrorMessages = []string{}
	}
}

// splitLines splits s into lines, dropping the trailing newline if there is
// one. An empty string has no lines at all.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
