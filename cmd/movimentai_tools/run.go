package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/2beens/movimentai/internal/exercises"
	"github.com/2beens/movimentai/internal/execution"
	"github.com/2beens/movimentai/internal/workouts/templates"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errUnknownCommand = errors.New("unknown command (Enter = série concluída, s = pular, c = cancelar descanso, q = sair)")

var (
	runDay         string
	runSets        int
	runRestSeconds int
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Workout helpers",
}

var workoutRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one day of the split template in the terminal, with the rest countdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		splits, err := templates.Select(templateDays, parseDays(templateOn))
		if err != nil {
			return err
		}
		day := runDay
		if day == "" {
			day = templates.Label(time.Now().Weekday())
		}
		split, ok := splits[day]
		if !ok {
			return fmt.Errorf("no training scheduled on %s", day)
		}

		machine, err := execution.NewMachine(buildExercises(split, runSets, runRestSeconds))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.Bold).Fprintf(out, "%s: %s\n", day, split.Name)
		session := newTerminalSession(machine, out, execution.NewTimeTicker)
		return session.Run(cmd.Context(), os.Stdin)
	},
}

func init() {
	addSplitFlags(workoutRunCmd)
	workoutRunCmd.Flags().StringVar(&runDay, "day", "", "weekday of the split to run, today when empty")
	workoutRunCmd.Flags().IntVar(&runSets, "sets", execution.DefaultSets, "series per exercise")
	workoutRunCmd.Flags().IntVar(&runRestSeconds, "rest", execution.DefaultRestSeconds, "rest between series in seconds")
	workoutCmd.AddCommand(workoutRunCmd)
}

func buildExercises(split templates.Split, sets, restSeconds int) []execution.Exercise {
	list := make([]execution.Exercise, 0, len(split.Exercises))
	for _, id := range split.Exercises {
		ex := execution.NewExercise(id, exercises.Title(id))
		if sets > 0 {
			ex.Sets = sets
		}
		if restSeconds >= 0 {
			ex.RestSeconds = restSeconds
		}
		list = append(list, ex)
	}
	return list
}

// syncWriter serializes writes from the countdown goroutine and the input loop.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (sw *syncWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}

type terminalSession struct {
	machine   *execution.Machine
	out       io.Writer
	newTicker func(time.Duration) execution.Ticker
	phrases   *execution.PhraseBook

	// countdown owns the machine once started; all access goes through Do.
	countdown *execution.Countdown
}

func newTerminalSession(m *execution.Machine, out io.Writer, newTicker func(time.Duration) execution.Ticker) *terminalSession {
	return &terminalSession{
		machine:   m,
		out:       &syncWriter{w: out},
		newTicker: newTicker,
		phrases:   execution.NewPhraseBook(),
	}
}

func (s *terminalSession) do(fn func(m *execution.Machine)) {
	if s.countdown != nil {
		s.countdown.Do(fn)
		return
	}
	fn(s.machine)
}

func (s *terminalSession) stopCountdown() {
	if s.countdown != nil {
		s.countdown.Stop()
	}
}

func (s *terminalSession) Run(ctx context.Context, in io.Reader) error {
	defer s.stopCountdown()

	s.printCurrent()
	scanner := bufio.NewScanner(in)
	for {
		var state execution.State
		s.do(func(m *execution.Machine) { state = m.State })
		if state == execution.StateCompleted {
			break
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(s.out, "Treino interrompido.")
			return nil
		}

		command := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if command == "q" {
			fmt.Fprintln(s.out, "Treino interrompido.")
			return nil
		}
		s.apply(ctx, command)
	}

	color.New(color.FgGreen).Fprintln(s.out, "✓ Treino concluído!")
	fmt.Fprintln(s.out, s.phrases.Random())
	return nil
}

func (s *terminalSession) apply(ctx context.Context, command string) {
	var (
		tr  execution.Transition
		err error
	)
	s.do(func(m *execution.Machine) {
		switch command {
		case "", "ok":
			tr, err = m.CompleteSeries()
		case "s":
			tr, err = m.Skip()
		case "c":
			tr, err = m.CancelRest()
		default:
			err = errUnknownCommand
		}
	})
	if err != nil {
		color.New(color.FgYellow).Fprintf(s.out, "⚠ %v\n", err)
		return
	}

	if tr.From == execution.StateResting {
		s.stopCountdown()
	}
	switch {
	case tr.Completed:
	case tr.To == execution.StateResting:
		var rest int
		s.do(func(m *execution.Machine) { rest = m.RestRemaining })
		fmt.Fprintf(s.out, "Descanso: %ds (c = cancelar)\n", rest)
		s.countdown = execution.StartCountdown(ctx, s.machine, s.newTicker, s.onTick)
	default:
		s.printCurrent()
	}
}

func (s *terminalSession) onTick(remaining int) {
	if remaining > 0 {
		if remaining%10 == 0 || remaining <= 3 {
			fmt.Fprintf(s.out, "  %ds\n", remaining)
		}
		return
	}
	fmt.Fprintln(s.out, "Descanso concluído. Enter quando terminar a próxima série.")
}

func (s *terminalSession) printCurrent() {
	var (
		name          string
		series, total int
		reps          int
	)
	s.do(func(m *execution.Machine) {
		ex := m.Current()
		if ex == nil {
			return
		}
		name, series, total, reps = ex.Name, m.SeriesIndex+1, ex.Sets, ex.Reps
	})
	if name == "" {
		return
	}
	color.New(color.Bold).Fprintf(s.out, "%s: série %d/%d, %d repetições\n", name, series, total, reps)
}
