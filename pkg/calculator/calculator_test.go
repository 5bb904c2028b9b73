package calculator

import (
	"context"
	"math"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/charithe/scicalc/pkg/expr"
	"github.com/charithe/scicalc/pkg/v1pb"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCalculator(t *testing.T) {
	svc := NewService(Config{MaxExpressionLength: 64})
	addr, destroyFunc := startServer(t, svc)
	defer destroyFunc()

	client := createClient(t, addr)
	defer client.Close()

	testCases := []struct {
		name       string
		fragments  []string
		mode       expr.AngleMode
		wantResult float64
		wantCode   codes.Code
	}{
		{
			name:       "validExpression",
			fragments:  []string{"5", "+", "8", "×", "(", "3", "−", "1", ")"},
			wantResult: 21,
		},
		{
			name:       "implicitMultiplication",
			fragments:  []string{"2", "(", "3", "+", "4", ")"},
			wantResult: 14,
		},
		{
			name:       "degrees",
			fragments:  []string{"sin(", "90", ")"},
			wantResult: 1,
		},
		{
			name:       "radians",
			fragments:  []string{"cos(", "pi", ")"},
			mode:       expr.Radians,
			wantResult: -1,
		},
		{
			name:       "emptyExpression",
			fragments:  []string{},
			wantResult: 0,
		},
		{
			name:      "invalidOrder",
			fragments: []string{"+"},
			wantCode:  codes.InvalidArgument,
		},
		{
			name:      "unknownFunction",
			fragments: []string{"foo(", "1", ")"},
			wantCode:  codes.InvalidArgument,
		},
		{
			name:      "domainError",
			fragments: []string{"2.5", "!"},
			wantCode:  codes.InvalidArgument,
		},
		{
			name:      "tooLong",
			fragments: []string{strings.Repeat("1+", 40), "1"},
			wantCode:  codes.ResourceExhausted,
		},
	}

	t.Run("stream", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				fragChan := make(chan string, len(tc.fragments))
				for _, f := range tc.fragments {
					fragChan <- f
				}
				close(fragChan)

				haveResult, err := client.EvaluateStream(fragChan, tc.mode)
				if tc.wantCode != codes.OK {
					require.Error(t, err)
					require.Equal(t, tc.wantCode, status.Code(err))
				} else {
					require.NoError(t, err)
					require.InDelta(t, tc.wantResult, haveResult, 1e-9)
				}
			})
		}
	})

	t.Run("unary", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				haveResult, err := client.Evaluate(context.Background(), strings.Join(tc.fragments, ""), tc.mode)
				if tc.wantCode != codes.OK {
					require.Error(t, err)
					require.Equal(t, tc.wantCode, status.Code(err))
				} else {
					require.NoError(t, err)
					require.InDelta(t, tc.wantResult, haveResult, 1e-9)
				}
			})
		}
	})

	t.Run("batch", func(t *testing.T) {
		expressions := []string{"2+3*4", "(-3)!", "1/0", strings.Repeat("9", 65)}
		results, err := client.EvaluateBatch(context.Background(), expressions, expr.Degrees)
		require.NoError(t, err)
		require.Len(t, results, len(expressions))

		require.Equal(t, 14.0, results[0].GetValue())
		require.Equal(t, v1pb.NONE, results[0].GetErrorKind())
		require.Empty(t, results[0].GetError())

		require.True(t, math.IsNaN(results[1].GetValue()))
		require.Equal(t, v1pb.DOMAIN_ERROR, results[1].GetErrorKind())
		require.Contains(t, results[1].GetError(), "domain error")

		require.True(t, math.IsInf(results[2].GetValue(), 1))
		require.Equal(t, v1pb.NONE, results[2].GetErrorKind())

		require.Equal(t, v1pb.EXPRESSION_TOO_LONG, results[3].GetErrorKind())
		require.Contains(t, results[3].GetError(), ErrExpressionTooLong.Error())
	})
}

func TestEvaluateStreamEndedEarly(t *testing.T) {
	svc := NewService(Config{MaxExpressionLength: 10})
	addr, destroyFunc := startServer(t, svc)
	defer destroyFunc()

	client := createClient(t, addr)
	defer client.Close()

	fragChan := make(chan string)
	producerDone := make(chan struct{})
	go func() {
		defer close(producerDone)
		defer close(fragChan)
		for i := 0; i < 1000; i++ {
			fragChan <- "11111"
		}
	}()

	_, err := client.EvaluateStream(fragChan, expr.Degrees)
	require.Equal(t, codes.ResourceExhausted, status.Code(err))

	select {
	case <-producerDone:
	case <-time.After(5 * time.Second):
		t.Fatal("producer still blocked after the stream ended")
	}
}

func TestServiceStrict(t *testing.T) {
	svc := NewService(Config{Strict: true})

	_, err := svc.Evaluate(context.Background(), &v1pb.EvaluateRequest{Expression: "(2+3"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "MISMATCHED_PARENS")

	resp, err := svc.Evaluate(context.Background(), &v1pb.EvaluateRequest{Expression: "(2+3)"})
	require.NoError(t, err)
	require.Equal(t, 5.0, resp.GetResult())
}

func TestServiceCancelledContext(t *testing.T) {
	svc := NewService(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Evaluate(ctx, &v1pb.EvaluateRequest{Expression: "1+1"})
	require.Equal(t, context.Canceled, err)
}

func startServer(t *testing.T, service *Service) (string, func()) {
	t.Helper()

	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}

	addr := lis.Addr().String()
	srv := grpc.NewServer()
	v1pb.RegisterCalculatorServer(srv, service)

	go func() {
		if err := srv.Serve(lis); err != nil {
			panic(err)
		}
	}()

	destroyFunc := func() {
		srv.GracefulStop()
		lis.Close()
	}

	return addr, destroyFunc
}

func createClient(t *testing.T, addr string) *Client {
	t.Helper()

	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		t.Fatal(err)
	}

	return NewClient(conn)
}

func TestEvaluateAllLocal(t *testing.T) {
	local := Local{Config: Config{MaxExpressionLength: 8}}
	results := EvaluateAll(context.Background(), local, []string{"2^10", "sin()", "123456789"}, expr.Degrees)
	require.Len(t, results, 3)

	require.Equal(t, 1024.0, results[0].GetValue())
	require.Equal(t, v1pb.NONE, results[0].GetErrorKind())

	require.True(t, math.IsNaN(results[1].GetValue()))
	require.Equal(t, v1pb.STACK_UNDERFLOW, results[1].GetErrorKind())

	require.True(t, math.IsNaN(results[2].GetValue()))
	require.Equal(t, v1pb.EXPRESSION_TOO_LONG, results[2].GetErrorKind())
}
