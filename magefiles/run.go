//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds the scene once with the checked-in config.
func (Run) Studio() error {
	fmt.Println("Run studio...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-config", "scene.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the scene and keeps rebuilding it on every config edit.
func (Run) Watch() error {
	fmt.Println("Run studio in watch mode...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-config", "scene.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the scene and writes the animation curves next to the config.
func (Run) Curves() error {
	fmt.Println("Run studio with curve export...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-config", "scene.toml", "-curves", "curves.png"), withStream()); err != nil {
		return err
	}
	return nil
}
