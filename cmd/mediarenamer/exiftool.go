package main

import (
	"fmt"
	"os"
	"os/exec"
)

// exiftoolCommand builds the exiftool invocation that rewrites every
// filename under dir from the DateTimeOriginal tag, using the same canonical
// layout the planner emits.
func exiftoolCommand(toolPath, dir string) *exec.Cmd {
	return exec.Command(toolPath, "-filename<DateTimeOriginal", "-d", "%Y-%m-%d_%H-%M-%S.%%e", "-r", dir)
}

// runExiftool invokes exiftool against dir, letting it rename files in place
// from embedded capture metadata. The tool is a black box: its output goes
// straight to the terminal and a nonzero exit is the only failure signal.
func runExiftool(dir string) error {
	toolPath, err := exec.LookPath("exiftool")
	if err != nil {
		return fmt.Errorf("exiftool not found: %w", err)
	}

	cmd := exiftoolCommand(toolPath, dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("exiftool failed: %w", err)
	}
	return nil
}
