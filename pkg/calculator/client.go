package calculator

import (
	"context"
	"io"

	"github.com/charithe/scicalc/pkg/expr"
	"github.com/charithe/scicalc/pkg/v1pb"
	"google.golang.org/grpc"
)

// Client implements the RPC client for the Calculator service
type Client struct {
	conn   *grpc.ClientConn
	client v1pb.CalculatorClient
}

func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:   conn,
		client: v1pb.NewCalculatorClient(conn),
	}
}

func (c *Client) Evaluate(ctx context.Context, expression string, mode expr.AngleMode) (float64, error) {
	req := &v1pb.EvaluateRequest{
		Expression: expression,
		AngleMode:  fromAngleMode(mode),
	}

	resp, err := c.client.Evaluate(ctx, req)
	if err != nil {
		return 0, err
	}

	return resp.Result, nil
}

// EvaluateStream sends each fragment as it arrives and returns the result of
// the concatenated expression once fragments is closed. If the stream ends
// early, the remaining fragments are drained in the background so the
// producer can finish and close the channel.
func (c *Client) EvaluateStream(fragments <-chan string, mode expr.AngleMode) (float64, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := c.client.EvaluateStream(ctx)
	if err != nil {
		return 0, err
	}

	for fragment := range fragments {
		req := &v1pb.EvaluateStreamRequest{
			Fragment:  fragment,
			AngleMode: fromAngleMode(mode),
		}
		if err := stream.Send(req); err != nil {
			go drain(fragments)
			if err == io.EOF {
				// the server closed the stream; its status comes from CloseAndRecv
				break
			}
			return 0, err
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return 0, err
	}

	return resp.Result, nil
}

// EvaluateBatch evaluates every expression in one call. The returned results
// are in input order; failed expressions carry an error kind and message.
func (c *Client) EvaluateBatch(ctx context.Context, expressions []string, mode expr.AngleMode) ([]*v1pb.EvaluateResult, error) {
	req := &v1pb.EvaluateBatchRequest{
		Expressions: expressions,
		AngleMode:   fromAngleMode(mode),
	}

	resp, err := c.client.EvaluateBatch(ctx, req)
	if err != nil {
		return nil, err
	}

	return resp.Results, nil
}

func drain(fragments <-chan string) {
	for range fragments {
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
