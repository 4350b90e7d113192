/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package test

import (
	"fmt"
	"os"
	"path"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/run"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

// config is the structure mirroring the test case TOML file.
type config struct {
	Engines       []string
	SourceDir     string
	Result        string
	Output        []string
	ExitCode      int
	ErrorMessages []string

	Steps []step `toml:"step"`
}

// step is the structure mirroring a single step in a test case TOML file.
type step struct {
	Engines       []string
	SourceDir     string
	Result        string
	Output        []string
	ExitCode      int
	ErrorMessages []string
}

// ExecuteSuite runs the test suite at suitePath.
func ExecuteSuite(suitePath string) errs.Error {
	return vutil.ForEachMatchingFileRecursive(suitePath, regexp.MustCompile("test.toml"),
		func(configPath string) errs.Error {
			return runCase(configPath)
		},
	)
}

// runCase runs the test case defined in configPath on every engine it asks
// for.
func runCase(configPath string) errs.Error {
	testPath := path.Dir(configPath)
	testCase := testPath

	testConf, err := readConfig(configPath)
	if err != nil {
		return err
	}
	canonicalizeConfig(testConf)
	if err := validateConfig(testCase, testConf); err != nil {
		return err
	}

	for _, step := range testConf.Steps {
		for _, engine := range step.Engines {
			if err := runStep(testCase, testPath, engine, step); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Test case passed: %v.\n", testPath)
	return nil
}

// runStep runs one step of a test case on one engine and checks every
// expectation.
func runStep(testCase, testPath, engine string, step step) errs.Error {
	var runner run.Runner
	switch engine {
	case "vm":
		runner = run.NewVMRunner(nil)
	case "walk":
		runner = run.NewWalkRunner()
	default:
		return errs.NewTestSuite(testCase, "unknown engine '%v'", engine)
	}

	srcPath := path.Join(testPath, step.SourceDir)
	mouth := &vutil.MemoryMouth{}

	var value bytecode.Value
	stepErr := runner.Build(srcPath)
	if stepErr == nil {
		value, stepErr = runner.Run(mouth)
	}

	// Check status code
	if stepErr != nil {
		if stepErr.ExitCode() != step.ExitCode {
			return errs.NewTestSuite(testCase, "[%v] expected exit code %v, got %v (%v).",
				engine, step.ExitCode, stepErr.ExitCode(), stepErr)
		}
	} else if step.ExitCode != 0 {
		return errs.NewTestSuite(testCase, "[%v] expected exit code %v, got a successful run.",
			engine, step.ExitCode)
	}

	// Check error messages
	for _, expectedErrMsg := range step.ErrorMessages {
		re, reErr := regexp.Compile(expectedErrMsg)
		if reErr != nil {
			return errs.NewTestSuite(testCase, "compiling regexp '%v': %v.", expectedErrMsg, reErr.Error())
		}
		if stepErr == nil {
			return errs.NewTestSuite(testCase, "[%v] expected error message '%v', got no error.",
				engine, expectedErrMsg)
		}
		if !re.MatchString(stepErr.Error()) {
			return errs.NewTestSuite(testCase, "[%v] expected error message '%v', got '%v'.",
				engine, expectedErrMsg, stepErr.Error())
		}
	}

	if stepErr != nil {
		// If we had an error and reached this point, it means the error was
		// expected. The outputs don't matter.
		return nil
	}

	// Check the final value
	if step.Result != "" && value.String() != step.Result {
		return errs.NewTestSuite(testCase, "[%v] expected result %v, got %v.",
			engine, step.Result, value)
	}

	// Check output
	if len(step.Output) != len(mouth.Outputs) {
		return errs.NewTestSuite(testCase, "[%v] got %v outputs, expected %v.",
			engine, len(mouth.Outputs), len(step.Output))
	}
	for i, actualOutput := range mouth.Outputs {
		if actualOutput != step.Output[i] {
			return errs.NewTestSuite(testCase, "[%v] at index %v: expected output '%v', got '%v'.",
				engine, i, step.Output[i], actualOutput)
		}
	}

	return nil
}

// readConfig reads a test configuration from a TOML file.
func readConfig(path string) (*config, errs.Error) {
	tomlSource, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewTestSuite(path, "%v", err.Error())
	}
	tomlConfigData := &config{}
	err = toml.Unmarshal(tomlSource, &tomlConfigData)
	if err != nil {
		return nil, errs.NewTestSuite(path, "%v", err.Error())
	}

	return tomlConfigData, nil
}

// canonicalizeConfig makes sure testConf is in the canonical form.
// Specifically, it:
//
//   - Makes sure there is at least one element in Steps. (If there is no
//     explicit step defined, we create one with the data from the top-level
//     fields.)
//   - Makes sure all fields in all Steps have values: either the values
//     explicitly set, or the values from the top-level fields, or the
//     default values.
func canonicalizeConfig(testConf *config) {
	// Give default values to all empty fields in the top-level config.
	if testConf.Engines == nil {
		testConf.Engines = []string{"vm", "walk"}
	}
	if testConf.SourceDir == "" {
		testConf.SourceDir = "src"
	}
	if testConf.Output == nil {
		testConf.Output = []string{}
	}
	if testConf.ErrorMessages == nil {
		testConf.ErrorMessages = []string{}
	}

	// Make sure we have one step.
	if len(testConf.Steps) == 0 {
		testConf.Steps = append(testConf.Steps, step{
			Engines:       testConf.Engines,
			SourceDir:     testConf.SourceDir,
			Result:        testConf.Result,
			Output:        testConf.Output,
			ExitCode:      testConf.ExitCode,
			ErrorMessages: testConf.ErrorMessages,
		})
	}

	// Give values to all fields of all steps.
	for i, step := range testConf.Steps {
		if step.Engines == nil {
			step.Engines = testConf.Engines
		}
		if step.SourceDir == "" {
			step.SourceDir = testConf.SourceDir
		}
		if step.Result == "" {
			step.Result = testConf.Result
		}
		if step.Output == nil {
			step.Output = testConf.Output
		}
		if step.ErrorMessages == nil {
			step.ErrorMessages = testConf.ErrorMessages
		}
		if step.ExitCode == 0 && testConf.ExitCode != 0 {
			step.ExitCode = testConf.ExitCode
		}

		testConf.Steps[i] = step
	}
}

// validateConfig validates a test configuration that is already in canonical
// format. Returns nil if the configuration is valid, or an error otherwise.
func validateConfig(testCase string, testConf *config) errs.Error {
	for _, step := range testConf.Steps {
		for _, engine := range step.Engines {
			if engine != "vm" && engine != "walk" {
				return errs.NewTestSuite(testCase,
					"invalid engine '%v'; only 'vm' and 'walk' are supported", engine)
			}
		}
	}
	return nil
}
