package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eiannone/keyboard"

	"elevbank/src/controller"
	"elevbank/src/dispatcher"
)

func newConsole(t *testing.T) (*Console, *bytes.Buffer, *controller.Controller, context.CancelFunc) {
	t.Helper()
	b, err := dispatcher.New(4, 1, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	var out bytes.Buffer
	ctl := controller.Start(ctx, b, time.Hour)
	return New(ctl, &out), &out, ctl, cancel
}

func TestRunScript(t *testing.T) {
	c, out, _, _ := newConsole(t)
	script := strings.Join([]string{
		"req 0 2",
		"start",
		"req 0 2",
		"req 1 1",
		"req 0 9",
		"req a b",
		"step",
		"step 0",
		"fly",
		"stop",
		"quit",
		"status",
	}, "\n")

	if err := c.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"Failed to add request: system not accepting requests",
		"Elevator system started.",
		"Request added: From 0 to 2",
		"Failed to add request: degenerate request",
		"Failed to add request: invalid floor",
		"Invalid floor numbers.",
		"Elevator system stepped.",
		"[0|^|O 3]< -- --  2 -->",
		"Invalid step count.",
		`Unknown command "fly"`,
		"Elevator system stopping.",
		"System Status: Draining",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "Building Report:") != 4 {
		t.Errorf("want a report after start, the accepted request, step and stop:\n%s", got)
	}
}

func TestExecAfterClose(t *testing.T) {
	c, _, ctl, cancel := newConsole(t)
	cancel()
	<-ctl.Done()

	quit, err := c.Exec("start")
	if !quit || !errors.Is(err, controller.ErrClosed) {
		t.Errorf("quit = %v, err = %v", quit, err)
	}
}

func TestRunAndPause(t *testing.T) {
	c, out, _, _ := newConsole(t)
	for _, line := range []string{"run", "run", "pause"} {
		if _, err := c.Exec(line); err != nil {
			t.Fatal(err)
		}
	}
	if strings.Count(out.String(), "Auto-run on.") != 2 || !strings.Contains(out.String(), "Auto-run paused.") {
		t.Errorf("output:\n%s", out)
	}
}

func TestKeyCommand(t *testing.T) {
	testCases := []struct {
		char rune
		key  keyboard.Key
		want string
	}{
		{'s', 0, "start"},
		{'x', 0, "stop"},
		{0, keyboard.KeySpace, "step"},
		{'n', 0, "step"},
		{0, keyboard.KeyEnter, "status"},
		{'r', 0, "run"},
		{'p', 0, "pause"},
		{'q', 0, "quit"},
		{0, keyboard.KeyEsc, "quit"},
		{0, keyboard.KeyCtrlC, "quit"},
		{'z', 0, ""},
	}
	for _, tc := range testCases {
		got, ok := keyCommand(tc.char, tc.key)
		if got != tc.want || ok != (tc.want != "") {
			t.Errorf("keyCommand(%q, %v) = %q, %v", tc.char, tc.key, got, ok)
		}
	}
}
