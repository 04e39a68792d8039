package engine_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/ipp22/interpreter/internal/filetest"
	"github.com/ipp22/interpreter/lang/engine"
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/loader"
)

var updateGoldenTests = flag.Bool("test.update-golden-tests", false, "update the golden .want/.err/.exit files for TestGolden")

// TestGolden runs every *.xml fixture under testdata/ end to end (load,
// execute, capture stdout/stderr/exit code) and diffs each against its
// golden .want/.err/.exit files, the same fixture-driven shape as the
// teacher's own AST golden tests, adapted from a single output stream to
// the interpreter's three observable outputs.
func TestGolden(t *testing.T) {
	for _, fi := range filetest.SourceFiles(t, "testdata", ".xml") {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join("testdata", fi.Name()))
			if err != nil {
				t.Fatal(err)
			}

			prog, loadErr := loader.Load(bytes.NewReader(src))

			var stdout, stderr bytes.Buffer
			exitCode := 0
			if loadErr != nil {
				exitCode = reportExit(&stderr, loadErr)
			} else {
				eng := &engine.Engine{Stdout: &stdout, Stderr: &stderr}
				outcome, runErr := eng.Run(prog)
				if runErr != nil {
					exitCode = reportExit(&stderr, runErr)
				} else {
					exitCode = outcome.ExitCode
				}
			}

			filetest.DiffOutput(t, fi, stdout.String(), "testdata", updateGoldenTests)
			filetest.DiffErrors(t, fi, stderr.String(), "testdata", updateGoldenTests)
			filetest.DiffCustom(t, fi, "exit code", ".exit", strconv.Itoa(exitCode), "testdata", updateGoldenTests)
		})
	}
}

func reportExit(stderr *bytes.Buffer, err error) int {
	if ferr, ok := ipperr.AsError(err); ok {
		stderr.WriteString(ferr.Error())
		stderr.WriteByte('\n')
		return ferr.Code
	}
	return 57
}
