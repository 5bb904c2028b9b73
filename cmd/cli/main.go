package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charithe/scicalc/pkg/calculator"
	"github.com/charithe/scicalc/pkg/expr"
	"github.com/charithe/scicalc/pkg/v1pb"
	isatty "github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("Calculator CLI", "A scientific calculator CLI")

	addr      = app.Flag("addr", "Server address").Default("localhost:8080").Envar("CALC_ADDR").String()
	insecure  = app.Flag("insecure", "Trust unknown CAs").Bool()
	plaintext = app.Flag("plaintext", "Use unencrypted connection").Bool()
	local     = app.Flag("local", "Evaluate in-process instead of calling the server").Bool()
	radians   = app.Flag("radians", "Interpret trigonometric arguments as radians").Bool()
	strict    = app.Flag("strict", "Reject unknown characters and unbalanced parentheses").Bool()
	timeout   = app.Flag("timeout", "RPC timeout").Default("10s").Duration()
	verbose   = app.Flag("verbose", "Enable debug logging").Short('v').Bool()

	evalCmd  = app.Command("eval", "Evaluate expressions")
	evalRPN  = evalCmd.Flag("rpn", "Print the postfix form instead of evaluating").Bool()
	evalExpr = evalCmd.Arg("expr", "Expression").Required().Strings()

	batchCmd  = app.Command("batch", "Batch mode")
	batchFile = batchCmd.Flag("file", "File with one expression per line").Short('f').ExistingFile()
	batchExpr = batchCmd.Arg("expr", "Expression (space separated)").Strings()

	streamCmd = app.Command("stream", "Stream mode")

	replCmd    = app.Command("repl", "Interactive calculator")
	replSpoken = replCmd.Flag("spoken", "Rewrite spoken operators such as 'times' and 'divided by'").Bool()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	initLogging()
	defer zap.L().Sync()

	var ok bool
	switch cmd {
	case evalCmd.FullCommand():
		ok = doEval()
	case batchCmd.FullCommand():
		ok = doBatch()
	case streamCmd.FullCommand():
		ok = doStream()
	case replCmd.FullCommand():
		ok = doRepl()
	}

	if !ok {
		os.Exit(1)
	}
}

func initLogging() {
	conf := zap.NewDevelopmentConfig()
	conf.DisableCaller = true
	conf.DisableStacktrace = true
	if !*verbose {
		conf.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := conf.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	zap.ReplaceGlobals(logger)
}

func angleMode() expr.AngleMode {
	if *radians {
		return expr.Radians
	}
	return expr.Degrees
}

func localConfig() calculator.Config {
	conf := calculator.DefaultConfig()
	conf.Strict = *strict
	return conf
}

// newEvaluator returns the evaluator selected by --local and a function that
// releases it.
func newEvaluator() (calculator.Evaluator, func(), error) {
	if *local {
		return calculator.Local{Config: localConfig()}, func() {}, nil
	}

	client, err := createClient()
	if err != nil {
		return nil, nil, err
	}
	return client, func() { client.Close() }, nil
}

func doEval() bool {
	if *evalRPN {
		return printPostfix(os.Stdout, *evalExpr)
	}

	evaluator, closeFunc, err := newEvaluator()
	if err != nil {
		zap.S().Errorw("Failed to connect to server", "error", err)
		return false
	}
	defer closeFunc()

	ok := true
	for _, e := range *evalExpr {
		ctx, cancelFunc := context.WithTimeout(context.Background(), *timeout)
		v, err := evaluator.Evaluate(ctx, e, angleMode())
		cancelFunc()
		if err != nil {
			zap.S().Errorw("Evaluation failed", "expression", e, "error", err)
			ok = false
			continue
		}
		fmt.Println(formatResult(v))
	}
	return ok
}

func printPostfix(w io.Writer, expressions []string) bool {
	var opts []expr.Option
	if *strict {
		opts = append(opts, expr.Strict())
	}

	ok := true
	for _, e := range expressions {
		rpn, err := expr.Compile(e, opts...)
		if err != nil {
			zap.S().Errorw("Failed to compile expression", "expression", e, "error", err)
			ok = false
			continue
		}

		texts := make([]string, len(rpn))
		for i, tok := range rpn {
			texts[i] = tok.Text
		}
		fmt.Fprintln(w, strings.Join(texts, " "))
	}
	return ok
}

func doBatch() bool {
	expressions := *batchExpr
	if *batchFile != "" {
		fromFile, err := readExpressions(*batchFile)
		if err != nil {
			zap.S().Errorw("Failed to read expressions", "file", *batchFile, "error", err)
			return false
		}
		expressions = append(expressions, fromFile...)
	}

	if len(expressions) == 0 {
		zap.S().Warn("No expressions given")
		return true
	}

	results, err := evaluateBatch(expressions)
	if err != nil {
		zap.S().Errorw("Batch call failed", "error", err)
		return false
	}

	ok := true
	for i, r := range results {
		if r.GetErrorKind() != v1pb.NONE {
			fmt.Printf("%s\t%s: %s\n", expressions[i], r.GetErrorKind(), r.GetError())
			ok = false
			continue
		}
		fmt.Printf("%s\t%s\n", expressions[i], formatResult(r.GetValue()))
	}
	return ok
}

func evaluateBatch(expressions []string) ([]*v1pb.EvaluateResult, error) {
	ctx, cancelFunc := context.WithTimeout(context.Background(), *timeout)
	defer cancelFunc()

	if *local {
		return calculator.EvaluateAll(ctx, calculator.Local{Config: localConfig()}, expressions, angleMode()), nil
	}

	client, err := createClient()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.EvaluateBatch(ctx, expressions, angleMode())
}

func doStream() bool {
	client, err := createClient()
	if err != nil {
		zap.S().Errorw("Failed to connect to server", "error", err)
		return false
	}
	defer client.Close()

	zap.S().Info("Enter each fragment of the expression in a new line. Press Ctrl+D to end")

	fragChan := make(chan string)
	go func() {
		defer close(fragChan)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			fragChan <- scanner.Text()
		}

		if err := scanner.Err(); err != nil {
			zap.S().Errorw("Failed to read stream", "error", err)
		}
	}()

	result, err := client.EvaluateStream(fragChan, angleMode())
	if err != nil {
		zap.S().Errorw("Streaming call failed", "error", err)
		return false
	}

	fmt.Println(formatResult(result))
	return true
}

func doRepl() bool {
	evaluator, closeFunc, err := newEvaluator()
	if err != nil {
		zap.S().Errorw("Failed to connect to server", "error", err)
		return false
	}
	defer closeFunc()

	session := calculator.NewSession(evaluator)
	session.Mode = angleMode()

	r := &repl{
		session: session,
		in:      os.Stdin,
		out:     os.Stdout,
		prompt:  isatty.IsTerminal(os.Stdin.Fd()),
		spoken:  *replSpoken,
		timeout: *timeout,
	}
	if err := r.run(); err != nil {
		zap.S().Errorw("Failed to read input", "error", err)
		return false
	}
	return true
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func createClient() (*calculator.Client, error) {
	var dialOpts []grpc.DialOption
	if *plaintext {
		dialOpts = append(dialOpts, grpc.WithInsecure())
	} else {
		tlsConf := &tls.Config{
			InsecureSkipVerify: *insecure,
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConf)))
	}

	zap.S().Debugw("Connecting", "addr", *addr, "plaintext", *plaintext)
	conn, err := grpc.Dial(*addr, dialOpts...)
	if err != nil {
		return nil, err
	}

	return calculator.NewClient(conn), nil
}
