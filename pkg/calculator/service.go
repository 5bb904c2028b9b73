package calculator

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charithe/scicalc/pkg/v1pb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/status"
)

// Service implements the RPC interface of the calculator
type Service struct {
	*health.Server
	conf Config
}

func NewService(conf Config) *Service {
	return &Service{
		Server: health.NewServer(),
		conf:   conf,
	}
}

func (s *Service) Evaluate(ctx context.Context, req *v1pb.EvaluateRequest) (*v1pb.EvaluateResponse, error) {
	// if the context has already expired, we can avoid unnecessary work
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.evaluate(ctx, req.GetExpression(), req.GetAngleMode())
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1pb.EvaluateResponse{Result: result}, nil
}

func (s *Service) EvaluateBatch(ctx context.Context, req *v1pb.EvaluateBatchRequest) (*v1pb.EvaluateBatchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]*v1pb.EvaluateResult, len(req.GetExpressions()))
	for i, expression := range req.GetExpressions() {
		results[i] = newResult(s.evaluate(ctx, expression, req.GetAngleMode()))
	}

	return &v1pb.EvaluateBatchResponse{Results: results}, nil
}

func (s *Service) EvaluateStream(stream v1pb.Calculator_EvaluateStreamServer) error {
	var (
		buf  strings.Builder
		mode v1pb.AngleMode
		n    int
	)

	for {
		req, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				// end of the client-side stream so calculate the result
				expression := buf.String()
				result, err := s.evaluate(stream.Context(), expression, mode)
				if err != nil {
					return toStatus(err)
				}

				resp := &v1pb.EvaluateStreamResponse{Result: result, Expression: expression}
				if err := stream.SendAndClose(resp); err != nil {
					zap.S().Errorw("Failed to send response", "error", err)
					return err
				}

				return nil
			}

			zap.S().Warnw("Failed to receive request from stream", "error", err)
			return err
		}

		n += utf8.RuneCountInString(req.GetFragment())
		if s.conf.MaxExpressionLength > 0 && n > s.conf.MaxExpressionLength {
			return status.Errorf(codes.ResourceExhausted, "%v: %d runes allowed", ErrExpressionTooLong, s.conf.MaxExpressionLength)
		}

		buf.WriteString(req.GetFragment())
		mode = req.GetAngleMode()
	}
}

func (s *Service) evaluate(ctx context.Context, expression string, mode v1pb.AngleMode) (float64, error) {
	result, err := s.conf.eval(expression, toAngleMode(mode))
	record(ctx, expression, err)
	if err != nil {
		zap.S().Debugw("Evaluation failed", "expression", expression, "mode", mode, "error", err)
	}
	return result, err
}

func toStatus(err error) error {
	if errors.Cause(err) == ErrExpressionTooLong {
		return status.Error(codes.ResourceExhausted, err.Error())
	}
	return status.Errorf(codes.InvalidArgument, "%s: %v", toErrorKind(err), err)
}
