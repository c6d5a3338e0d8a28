// Package toolchain shells out to cc to turn generated assembly text
// into a binary, and optionally runs it.
//
// Grounded on the teacher's original main.go, which piped generated
// assembly into gcc over stdin via os/exec; this version targets cc
// per the downstream tool contract and keeps the exec plumbing out of
// the compiler package, which only ever turns source into text.
package toolchain

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	pkgerrors "github.com/pkg/errors"
)

// Assemble invokes cc to assemble and link asm into an executable at
// outPath.
func Assemble(asm string, outPath string) error {
	cmd := exec.Command("cc", "-o", outPath, "-x", "assembler", "-")
	cmd.Stdin = bytes.NewBufferString(asm)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return pkgerrors.Wrap(err, "cc failed")
	}
	return nil
}

// Run executes the binary at path and returns its exit status. A
// nonzero exit from the binary itself is not an error: callers care
// about the status, which is what the compiled program's last
// statement leaves behind, truncated to a byte by the OS.
func Run(path string) (int, error) {
	cmd := exec.Command(path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, pkgerrors.Wrap(err, "running compiled program")
}

// AssembleAndRun assembles asm to outPath via cc, then runs it,
// returning the exit status.
func AssembleAndRun(asm string, outPath string) (int, error) {
	if err := Assemble(asm, outPath); err != nil {
		return 0, err
	}
	return Run(outPath)
}
