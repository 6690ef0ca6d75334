// SPDX-License-Identifier: MPL-2.0

package command

import (
	"errors"
	"os/exec"
	"path/filepath"
)

// SearchInPath resolves an executable name against the environment's search
// path and returns its absolute path. It fails with a *NotFoundError when
// no searched directory contains the name.
func SearchInPath(name string) (string, error) {
	found, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &NotFoundError{Name: name}
		}
		return "", err
	}
	abs, err := filepath.Abs(found)
	if err != nil {
		return "", err
	}
	return abs, nil
}
