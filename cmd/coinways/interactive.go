// Copyright 2025 go-coinways Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ajroetker/go-coinways/ways"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(11)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var formLabels = []string{"Target", "Max coins", "Coins"}

// solveResult is delivered to the model when a solve finishes.
type solveResult struct {
	err     error
	count   uint64
	elapsed time.Duration
}

type interactiveModel struct {
	solver   *ways.Solver
	err      error
	inputs   []textinput.Model
	result   solveResult
	focusIdx int
	running  bool
	hasRun   bool
}

func newInteractiveModel(solver *ways.Solver) interactiveModel {
	defaults := []string{"1000", "15", "10,50,100,500"}
	inputs := make([]textinput.Model, len(defaults))
	for i, d := range defaults {
		ti := textinput.New()
		ti.SetValue(d)
		ti.CharLimit = 256
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[0].Focus()
	return interactiveModel{solver: solver, inputs: inputs}
}

func (m interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.focus(m.focusIdx + 1), nil
		case "shift+tab", "up":
			return m.focus(m.focusIdx - 1), nil
		case "enter":
			if m.running {
				return m, nil
			}
			p, err := m.problem()
			m.err = err
			if err != nil {
				return m, nil
			}
			m.running = true
			return m, m.solve(p)
		}
	case solveResult:
		m.running = false
		m.hasRun = true
		m.result = msg
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m interactiveModel) focus(idx int) interactiveModel {
	n := len(m.inputs)
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = (idx%n + n) % n
	m.inputs[m.focusIdx].Focus()
	return m
}

// problem reads and validates the form.
func (m interactiveModel) problem() (*problem, error) {
	target, errT := parseInt("target", m.inputs[0].Value())
	maxCoins, errK := parseInt("max coins", m.inputs[1].Value())
	coins, errC := parseInts(m.inputs[2].Value())
	if err := errors.Join(errT, errK, errC); err != nil {
		return nil, err
	}
	p := &problem{target: target, maxCoins: maxCoins, coins: coins}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (m interactiveModel) solve(p *problem) tea.Cmd {
	solver := m.solver
	return func() tea.Msg {
		start := time.Now()
		n, err := solver.Solve(int(p.target), int(p.maxCoins), p.coins)
		return solveResult{count: n, err: err, elapsed: time.Since(start)}
	}
}

func (m interactiveModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("coinways"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(fmt.Sprintf("mode: %s", m.solver.Folder().Mode())))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		b.WriteString(labelStyle.Render(formLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.running:
		b.WriteString("Computing...")
	case m.hasRun && m.result.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.result.err.Error()))
	case m.hasRun:
		b.WriteString(resultStyle.Render(fmt.Sprintf("Combinations: %d\nTime: %.2f ms",
			m.result.count, float64(m.result.elapsed.Microseconds())/1000)))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: next field • enter: solve • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func newInteractiveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Solve from a terminal form",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("interactive mode needs a terminal")
			}
			f, closeFn, err := opts.folder()
			if err != nil {
				return err
			}
			defer closeFn()

			_, err = tea.NewProgram(newInteractiveModel(opts.solver(f))).Run()
			return err
		},
	}
}
