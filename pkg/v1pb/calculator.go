// Package v1pb holds the wire types and gRPC bindings of calculator.proto.
//
// The messages are plain struct-tagged protobuf messages registered with the
// gogo registry; keep the field numbers in sync with calculator.proto.
package v1pb

import (
	"context"

	proto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc"
)

type AngleMode int32

const (
	DEGREES AngleMode = 0
	RADIANS AngleMode = 1
)

var AngleMode_name = map[int32]string{
	0: "DEGREES",
	1: "RADIANS",
}

var AngleMode_value = map[string]int32{
	"DEGREES": 0,
	"RADIANS": 1,
}

func (x AngleMode) String() string {
	return proto.EnumName(AngleMode_name, int32(x))
}

type ErrorKind int32

const (
	NONE                ErrorKind = 0
	LEXICAL_REJECT      ErrorKind = 1
	STACK_UNDERFLOW     ErrorKind = 2
	UNKNOWN_SYMBOL      ErrorKind = 3
	MALFORMED_RESULT    ErrorKind = 4
	DOMAIN_ERROR        ErrorKind = 5
	MISMATCHED_PARENS   ErrorKind = 6
	INTERNAL_FAULT      ErrorKind = 7
	EXPRESSION_TOO_LONG ErrorKind = 8
)

var ErrorKind_name = map[int32]string{
	0: "NONE",
	1: "LEXICAL_REJECT",
	2: "STACK_UNDERFLOW",
	3: "UNKNOWN_SYMBOL",
	4: "MALFORMED_RESULT",
	5: "DOMAIN_ERROR",
	6: "MISMATCHED_PARENS",
	7: "INTERNAL_FAULT",
	8: "EXPRESSION_TOO_LONG",
}

var ErrorKind_value = map[string]int32{
	"NONE":                0,
	"LEXICAL_REJECT":      1,
	"STACK_UNDERFLOW":     2,
	"UNKNOWN_SYMBOL":      3,
	"MALFORMED_RESULT":    4,
	"DOMAIN_ERROR":        5,
	"MISMATCHED_PARENS":   6,
	"INTERNAL_FAULT":      7,
	"EXPRESSION_TOO_LONG": 8,
}

func (x ErrorKind) String() string {
	return proto.EnumName(ErrorKind_name, int32(x))
}

type EvaluateRequest struct {
	Expression string    `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
	AngleMode  AngleMode `protobuf:"varint,2,opt,name=angle_mode,json=angleMode,proto3,enum=calculator.v1.AngleMode" json:"angle_mode,omitempty"`
}

func (m *EvaluateRequest) Reset()         { *m = EvaluateRequest{} }
func (m *EvaluateRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateRequest) ProtoMessage()    {}

func (m *EvaluateRequest) GetExpression() string {
	if m != nil {
		return m.Expression
	}
	return ""
}

func (m *EvaluateRequest) GetAngleMode() AngleMode {
	if m != nil {
		return m.AngleMode
	}
	return DEGREES
}

type EvaluateResponse struct {
	Result float64 `protobuf:"fixed64,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *EvaluateResponse) Reset()         { *m = EvaluateResponse{} }
func (m *EvaluateResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateResponse) ProtoMessage()    {}

func (m *EvaluateResponse) GetResult() float64 {
	if m != nil {
		return m.Result
	}
	return 0
}

type EvaluateBatchRequest struct {
	Expressions []string  `protobuf:"bytes,1,rep,name=expressions,proto3" json:"expressions,omitempty"`
	AngleMode   AngleMode `protobuf:"varint,2,opt,name=angle_mode,json=angleMode,proto3,enum=calculator.v1.AngleMode" json:"angle_mode,omitempty"`
}

func (m *EvaluateBatchRequest) Reset()         { *m = EvaluateBatchRequest{} }
func (m *EvaluateBatchRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateBatchRequest) ProtoMessage()    {}

func (m *EvaluateBatchRequest) GetExpressions() []string {
	if m != nil {
		return m.Expressions
	}
	return nil
}

func (m *EvaluateBatchRequest) GetAngleMode() AngleMode {
	if m != nil {
		return m.AngleMode
	}
	return DEGREES
}

type EvaluateResult struct {
	Value     float64   `protobuf:"fixed64,1,opt,name=value,proto3" json:"value,omitempty"`
	ErrorKind ErrorKind `protobuf:"varint,2,opt,name=error_kind,json=errorKind,proto3,enum=calculator.v1.ErrorKind" json:"error_kind,omitempty"`
	Error     string    `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *EvaluateResult) Reset()         { *m = EvaluateResult{} }
func (m *EvaluateResult) String() string { return proto.CompactTextString(m) }
func (*EvaluateResult) ProtoMessage()    {}

func (m *EvaluateResult) GetValue() float64 {
	if m != nil {
		return m.Value
	}
	return 0
}

func (m *EvaluateResult) GetErrorKind() ErrorKind {
	if m != nil {
		return m.ErrorKind
	}
	return NONE
}

func (m *EvaluateResult) GetError() string {
	if m != nil {
		return m.Error
	}
	return ""
}

type EvaluateBatchResponse struct {
	Results []*EvaluateResult `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *EvaluateBatchResponse) Reset()         { *m = EvaluateBatchResponse{} }
func (m *EvaluateBatchResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateBatchResponse) ProtoMessage()    {}

func (m *EvaluateBatchResponse) GetResults() []*EvaluateResult {
	if m != nil {
		return m.Results
	}
	return nil
}

type EvaluateStreamRequest struct {
	Fragment  string    `protobuf:"bytes,1,opt,name=fragment,proto3" json:"fragment,omitempty"`
	AngleMode AngleMode `protobuf:"varint,2,opt,name=angle_mode,json=angleMode,proto3,enum=calculator.v1.AngleMode" json:"angle_mode,omitempty"`
}

func (m *EvaluateStreamRequest) Reset()         { *m = EvaluateStreamRequest{} }
func (m *EvaluateStreamRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateStreamRequest) ProtoMessage()    {}

func (m *EvaluateStreamRequest) GetFragment() string {
	if m != nil {
		return m.Fragment
	}
	return ""
}

func (m *EvaluateStreamRequest) GetAngleMode() AngleMode {
	if m != nil {
		return m.AngleMode
	}
	return DEGREES
}

type EvaluateStreamResponse struct {
	Result     float64 `protobuf:"fixed64,1,opt,name=result,proto3" json:"result,omitempty"`
	Expression string  `protobuf:"bytes,2,opt,name=expression,proto3" json:"expression,omitempty"`
}

func (m *EvaluateStreamResponse) Reset()         { *m = EvaluateStreamResponse{} }
func (m *EvaluateStreamResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateStreamResponse) ProtoMessage()    {}

func (m *EvaluateStreamResponse) GetResult() float64 {
	if m != nil {
		return m.Result
	}
	return 0
}

func (m *EvaluateStreamResponse) GetExpression() string {
	if m != nil {
		return m.Expression
	}
	return ""
}

func init() {
	proto.RegisterEnum("calculator.v1.AngleMode", AngleMode_name, AngleMode_value)
	proto.RegisterEnum("calculator.v1.ErrorKind", ErrorKind_name, ErrorKind_value)
	proto.RegisterType((*EvaluateRequest)(nil), "calculator.v1.EvaluateRequest")
	proto.RegisterType((*EvaluateResponse)(nil), "calculator.v1.EvaluateResponse")
	proto.RegisterType((*EvaluateBatchRequest)(nil), "calculator.v1.EvaluateBatchRequest")
	proto.RegisterType((*EvaluateResult)(nil), "calculator.v1.EvaluateResult")
	proto.RegisterType((*EvaluateBatchResponse)(nil), "calculator.v1.EvaluateBatchResponse")
	proto.RegisterType((*EvaluateStreamRequest)(nil), "calculator.v1.EvaluateStreamRequest")
	proto.RegisterType((*EvaluateStreamResponse)(nil), "calculator.v1.EvaluateStreamResponse")
}

// CalculatorClient is the client API for the Calculator service.
type CalculatorClient interface {
	Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error)
	EvaluateBatch(ctx context.Context, in *EvaluateBatchRequest, opts ...grpc.CallOption) (*EvaluateBatchResponse, error)
	EvaluateStream(ctx context.Context, opts ...grpc.CallOption) (Calculator_EvaluateStreamClient, error)
}

type calculatorClient struct {
	cc *grpc.ClientConn
}

func NewCalculatorClient(cc *grpc.ClientConn) CalculatorClient {
	return &calculatorClient{cc}
}

func (c *calculatorClient) Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error) {
	out := new(EvaluateResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/Evaluate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) EvaluateBatch(ctx context.Context, in *EvaluateBatchRequest, opts ...grpc.CallOption) (*EvaluateBatchResponse, error) {
	out := new(EvaluateBatchResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/EvaluateBatch", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) EvaluateStream(ctx context.Context, opts ...grpc.CallOption) (Calculator_EvaluateStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Calculator_serviceDesc.Streams[0], "/calculator.v1.Calculator/EvaluateStream", opts...)
	if err != nil {
		return nil, err
	}
	return &calculatorEvaluateStreamClient{stream}, nil
}

type Calculator_EvaluateStreamClient interface {
	Send(*EvaluateStreamRequest) error
	CloseAndRecv() (*EvaluateStreamResponse, error)
	grpc.ClientStream
}

type calculatorEvaluateStreamClient struct {
	grpc.ClientStream
}

func (x *calculatorEvaluateStreamClient) Send(m *EvaluateStreamRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *calculatorEvaluateStreamClient) CloseAndRecv() (*EvaluateStreamResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(EvaluateStreamResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// CalculatorServer is the server API for the Calculator service.
type CalculatorServer interface {
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
	EvaluateBatch(context.Context, *EvaluateBatchRequest) (*EvaluateBatchResponse, error)
	EvaluateStream(Calculator_EvaluateStreamServer) error
}

func RegisterCalculatorServer(s *grpc.Server, srv CalculatorServer) {
	s.RegisterService(&_Calculator_serviceDesc, srv)
}

func _Calculator_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/Evaluate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Evaluate(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_EvaluateBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).EvaluateBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/EvaluateBatch",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).EvaluateBatch(ctx, req.(*EvaluateBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_EvaluateStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(CalculatorServer).EvaluateStream(&calculatorEvaluateStreamServer{stream})
}

type Calculator_EvaluateStreamServer interface {
	SendAndClose(*EvaluateStreamResponse) error
	Recv() (*EvaluateStreamRequest, error)
	grpc.ServerStream
}

type calculatorEvaluateStreamServer struct {
	grpc.ServerStream
}

func (x *calculatorEvaluateStreamServer) SendAndClose(m *EvaluateStreamResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *calculatorEvaluateStreamServer) Recv() (*EvaluateStreamRequest, error) {
	m := new(EvaluateStreamRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var _Calculator_serviceDesc = grpc.ServiceDesc{
	ServiceName: "calculator.v1.Calculator",
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    _Calculator_Evaluate_Handler,
		},
		{
			MethodName: "EvaluateBatch",
			Handler:    _Calculator_EvaluateBatch_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "EvaluateStream",
			Handler:       _Calculator_EvaluateStream_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "calculator.proto",
}
