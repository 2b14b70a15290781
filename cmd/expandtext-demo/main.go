// Command expandtext-demo is a terminal showcase for the expandtext widget
// kit. It renders an article widget and a recycled-list pane, with the
// expand/collapse animation driven by the terminal event loop.
//
// An optional expandtext.yaml in the working directory overrides widget
// settings; the selected pane and list row survive restarts through a small
// state file.
package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/expandtext/cmd/expandtext-demo/internal/config"
)

const stateFile = ".expandtext-demo-state.yaml"

type demoState struct {
	Pane int `yaml:"pane"`
	Item int `yaml:"item"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "expandtext-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	state := loadState()
	a, err := newApp(cfg, state.Pane, state.Item)
	if err != nil {
		return err
	}
	state.Pane, state.Item = a.run()
	return saveState(state)
}

func loadState() demoState {
	var state demoState
	data, err := os.ReadFile(stateFile)
	if err != nil {
		return state
	}
	if err := yaml.Unmarshal(data, &state); err != nil {
		return demoState{}
	}
	return state
}

func saveState(state demoState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(stateFile, data, 0o644); err != nil && !errors.Is(err, os.ErrPermission) {
		return err
	}
	return nil
}
