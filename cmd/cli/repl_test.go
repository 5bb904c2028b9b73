package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charithe/scicalc/pkg/calculator"
	"github.com/stretchr/testify/require"
)

func TestRepl(t *testing.T) {
	input := strings.Join([]string{
		"2+3",
		"Ans*2",
		"m+ Ans",
		"M- 4",
		"mr",
		"mr 1+",
		"mc",
		"mr",
		"rad",
		"cos(pi)",
		"",
		"2 times 3",
		"foo(1)",
		"quit",
		"1",
	}, "\n")

	var out bytes.Buffer
	r := &repl{
		session: calculator.NewSession(calculator.Local{Config: calculator.DefaultConfig()}),
		in:      strings.NewReader(input),
		out:     &out,
		spoken:  true,
		timeout: time.Second,
	}
	require.NoError(t, r.run())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{"5", "10", "M = 10", "M = 6", "6", "7", "0", "-1", "6"}, lines[:9])
	require.Len(t, lines, 10)
	require.Contains(t, lines[9], `unknown symbol: "foo"`)
}

func TestReplPrompt(t *testing.T) {
	var out bytes.Buffer
	r := &repl{
		session: calculator.NewSession(calculator.Local{}),
		in:      strings.NewReader("rad\n"),
		out:     &out,
		prompt:  true,
		timeout: time.Second,
	}
	require.NoError(t, r.run())
	require.Equal(t, "degrees> radians> ", out.String())
}
