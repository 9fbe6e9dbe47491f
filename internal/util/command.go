package util

import "os/exec"

// LookCommand resolves name against PATH and reports whether it exists.
// Names containing a path separator are checked as given.
func LookCommand(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
