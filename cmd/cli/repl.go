package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charithe/scicalc/pkg/calculator"
	"github.com/charithe/scicalc/pkg/expr"
	"go.uber.org/zap"
)

const replHelp = `Enter an expression to evaluate it. Ans is the last answer.
  deg | rad       set the angle mode
  m+ [expr]       add expr (default Ans) to memory
  m- [expr]       subtract expr (default Ans) from memory
  mr [expr]       show memory, or evaluate expr with memory appended
  mc              clear memory
  quit | exit     leave`

type repl struct {
	session *calculator.Session
	in      io.Reader
	out     io.Writer
	prompt  bool
	spoken  bool
	timeout time.Duration
}

func (r *repl) run() error {
	scanner := bufio.NewScanner(r.in)
	for {
		if r.prompt {
			fmt.Fprintf(r.out, "%s> ", r.session.Mode)
		}
		if !scanner.Scan() {
			break
		}
		if quit := r.handle(strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
	}
	return scanner.Err()
}

// handle executes one line and reports whether the session should end.
func (r *repl) handle(line string) bool {
	if line == "" {
		return false
	}

	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(r.out, replHelp)
	case "deg":
		r.session.Mode = expr.Degrees
	case "rad":
		r.session.Mode = expr.Radians
	case "mc":
		r.session.MemoryClear()
	case "mr":
		if arg == "" {
			fmt.Fprintln(r.out, formatResult(r.session.Memory()))
			return false
		}
		r.eval(r.session.MemoryRecall(r.clean(arg)))
	case "m+", "m-":
		r.accumulate(cmd == "m+" || cmd == "M+", arg)
	default:
		r.eval(r.clean(line))
	}
	return false
}

func (r *repl) clean(input string) string {
	if r.spoken {
		return calculator.CleanSpoken(input)
	}
	return input
}

func (r *repl) eval(input string) {
	ctx, cancelFunc := context.WithTimeout(context.Background(), r.timeout)
	defer cancelFunc()

	v, err := r.session.Eval(ctx, input)
	if err != nil {
		zap.S().Debugw("Evaluation failed", "input", input, "error", err)
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, formatResult(v))
}

func (r *repl) accumulate(add bool, input string) {
	if input == "" {
		input = "Ans"
	}
	input = r.clean(input)

	ctx, cancelFunc := context.WithTimeout(context.Background(), r.timeout)
	defer cancelFunc()

	var err error
	if add {
		err = r.session.MemoryAdd(ctx, input)
	} else {
		err = r.session.MemorySubtract(ctx, input)
	}
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "M = %s\n", formatResult(r.session.Memory()))
}
