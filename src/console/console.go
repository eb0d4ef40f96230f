// Package console is a text front end for the elevator bank. It reads commands line by line,
// or one key at a time in hotkey mode, and prints a status line plus the building report.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eiannone/keyboard"

	"elevbank/src/controller"
	"elevbank/src/dispatcher"
	"elevbank/src/types"
)

// Elevators is the part of the controller the console drives.
type Elevators interface {
	Admit(req types.Request) error
	StartSystem() error
	StopSystem() error
	Step(n int) (dispatcher.BuildingReport, error)
	Report() (dispatcher.BuildingReport, error)
	SetAutoRun(on bool) error
}

const helpText = `Commands:
  start           put every car in service
  stop            take cars out of service and drop queued requests
  step [n]        advance n ticks (default 1)
  req <from> <to> add a request
  status          show the building
  run | pause     start or pause automatic stepping
  help            show this text
  quit            exit
`

const keyHelpText = `Keys: s start, x stop, space step, r run, p pause, enter status, h help, q quit
`

type Console struct {
	elevators Elevators
	out       io.Writer
}

func New(e Elevators, out io.Writer) *Console {
	return &Console{elevators: e, out: out}
}

// Run executes commands from in until quit or end of input.
func (c *Console) Run(in io.Reader) error {
	fmt.Fprint(c.out, helpText)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := c.Exec(scanner.Text())
		if err != nil || quit {
			return err
		}
	}
	return scanner.Err()
}

// RunKeys reads single keys from the terminal until q, Esc or Ctrl-C.
func (c *Console) RunKeys() error {
	fmt.Fprint(c.out, keyHelpText)
	defer keyboard.Close()
	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		line, ok := keyCommand(char, key)
		if !ok {
			continue
		}
		quit, err := c.Exec(line)
		if err != nil || quit {
			return err
		}
	}
}

func keyCommand(char rune, key keyboard.Key) (string, bool) {
	switch key {
	case keyboard.KeyCtrlC, keyboard.KeyEsc:
		return "quit", true
	case keyboard.KeySpace:
		return "step", true
	case keyboard.KeyEnter:
		return "status", true
	}
	switch char {
	case 's':
		return "start", true
	case 'x':
		return "stop", true
	case 'n':
		return "step", true
	case 'r':
		return "run", true
	case 'p':
		return "pause", true
	case 'h', '?':
		return "help", true
	case 'q':
		return "quit", true
	}
	return "", false
}

// Exec runs one command line. The error is only set when the controller is gone.
func (c *Console) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	args := fields[1:]

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprint(c.out, helpText)
		return false, nil
	case "status":
		return false, c.showReport()
	case "start":
		err = c.elevators.StartSystem()
		if c.report(err, "Elevator system started.", "Failed to start system") {
			return false, c.showReport()
		}
	case "stop":
		err = c.elevators.StopSystem()
		if c.report(err, "Elevator system stopping.", "Failed to stop system") {
			return false, c.showReport()
		}
	case "step":
		n := 1
		if len(args) > 0 {
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Fprintln(c.out, "Invalid step count.")
				return false, nil
			}
		}
		var r dispatcher.BuildingReport
		r, err = c.elevators.Step(n)
		if c.report(err, "Elevator system stepped.", "Failed to step system") {
			fmt.Fprint(c.out, r)
		}
	case "req", "request":
		req, ok := parseRequest(args)
		if !ok {
			fmt.Fprintln(c.out, "Invalid floor numbers.")
			return false, nil
		}
		err = c.elevators.Admit(req)
		msg := fmt.Sprintf("Request added: From %d to %d", req.StartFloor, req.EndFloor)
		if c.report(err, msg, "Failed to add request") {
			return false, c.showReport()
		}
	case "run":
		err = c.elevators.SetAutoRun(true)
		c.report(err, "Auto-run on.", "Failed to start auto-run")
	case "pause":
		err = c.elevators.SetAutoRun(false)
		c.report(err, "Auto-run paused.", "Failed to pause auto-run")
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type help for a list.\n", cmd)
		return false, nil
	}

	if errors.Is(err, controller.ErrClosed) {
		return true, err
	}
	return false, nil
}

// report prints the status or the error line and tells whether the command succeeded.
func (c *Console) report(err error, ok, failed string) bool {
	if err != nil {
		fmt.Fprintf(c.out, "%s: %v\n", failed, err)
		return false
	}
	fmt.Fprintln(c.out, ok)
	return true
}

func (c *Console) showReport() error {
	r, err := c.elevators.Report()
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, r)
	return nil
}

func parseRequest(args []string) (types.Request, bool) {
	if len(args) != 2 {
		return types.Request{}, false
	}
	start, err := strconv.Atoi(args[0])
	if err != nil {
		return types.Request{}, false
	}
	end, err := strconv.Atoi(args[1])
	if err != nil {
		return types.Request{}, false
	}
	return types.Request{StartFloor: start, EndFloor: end}, true
}
