//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Runs the full test suite.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go vet over the module.
func (Build) Vet() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the benchmarks in the math package.
func (Build) Bench() error {
	if _, err := executeCmd("go", withArgs("test", "-bench=.", "-benchmem", "./math/..."), withStream()); err != nil {
		return err
	}
	return nil
}
