package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dreamshade/recruit-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "recruit not found",
			expected: "NOT_FOUND: recruit not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown stat",
			expected: "INVALID_ARGUMENT: unknown stat",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(baseErr, "failed to get recruit")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to get recruit", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrapf(baseErr, "recruit %s not found", "r1")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("recruit r1 not found", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("boom").WithMeta("key", "value")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("value", wrapped.Meta["key"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"AlreadyExists", func() *errors.Error { return errors.AlreadyExists("test") }, errors.CodeAlreadyExists},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unimplemented", func() *errors.Error { return errors.Unimplemented("test") }, errors.CodeUnimplemented},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Equal(tc.code, err.Code)
			s.Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestConfigurationMissing() {
	err := errors.ConfigurationMissing("calibration_table")

	s.Equal(errors.CodeFailedPrecondition, err.Code)
	s.Equal("configuration missing: calibration_table", err.Message)
	s.True(errors.IsConfigurationMissing(err))
	s.True(errors.IsConfigurationMissing(errors.Wrap(err, "failed to generate recruit")))

	s.False(errors.IsConfigurationMissing(errors.FailedPrecondition("other")))
	s.False(errors.IsConfigurationMissing(fmt.Errorf("plain")))
	s.False(errors.IsConfigurationMissing(nil))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
	s.True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("caller message")
	wrapped := errors.Wrap(err, "wrapped message")

	s.Equal("caller message", errors.GetMessage(err))
	s.Equal("wrapped message", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestCodesSurviveGRPC() {
	for _, code := range []errors.Code{
		errors.CodeCanceled,
		errors.CodeInvalidArgument,
		errors.CodeDeadlineExceeded,
		errors.CodeNotFound,
		errors.CodeAlreadyExists,
		errors.CodeFailedPrecondition,
		errors.CodeOutOfRange,
		errors.CodeUnimplemented,
		errors.CodeInternal,
		errors.CodeUnavailable,
	} {
		s.Run(code.String(), func() {
			back := errors.FromGRPCError(errors.ToGRPCError(errors.New(code, "boom")))
			s.Equal(code, errors.GetCode(back))
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.ConfigurationMissing("profile:elite")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("configuration missing: profile:elite", st.Message())

	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Equal(errors.ErrorDomain, info.GetDomain())
	s.Equal("profile:elite", info.GetMetadata()[errors.MetaMissingConfig])

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsConfigurationMissing(back))
}

func (s *ErrorsTestSuite) TestGRPCConversionPlain() {
	grpcErr := status.Error(codes.InvalidArgument, "invalid input")
	err := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Equal("invalid input", errors.GetMessage(err))

	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("raw")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())

	s.Nil(errors.ToGRPCError(nil))
	s.Nil(errors.FromGRPCError(nil))
}
