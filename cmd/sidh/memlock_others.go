//go:build !unix

package main

import (
	"github.com/pkg/errors"
)

func lockMemory(b []byte) error {
	return errors.New("Memory locking is not supported on this platform")
}

func unlockMemory(b []byte) {}
