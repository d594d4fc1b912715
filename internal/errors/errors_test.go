package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/assetforge/halfscale/internal/errors"
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
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "missing required field \"characters\"",
			expected: "INVALID_ARGUMENT: missing required field \"characters\"",
		},
		{
			name:     "internal error",
			code:     errors.CodeInternal,
			message:  "something went wrong",
			expected: "INTERNAL: something went wrong",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.InvalidArgument("missing required field").
		WithMeta("field", "spriteName").
		WithMeta("document", "room")

	s.Assert().Equal("spriteName", err.Meta["field"])
	s.Assert().Equal("room", err.Meta["document"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("unexpected end of JSON input")
	wrapped := errors.Wrap(baseErr, "failed to decode room")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to decode room", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.InvalidArgument("position must be a 2-element array").
		WithMeta("field", "position")
	wrapped := errors.Wrap(baseErr, "failed to decode character")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("failed to decode character", wrapped.Message)
	s.Assert().Equal("position", wrapped.Meta["field"])
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("invalid character 'x' looking for beginning of value")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "failed to decode inventory")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().True(errors.IsInvalidArgument(wrapped))
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "no-op"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInvalidArgument, "no-op"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad input")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
}

func (s *ErrorsTestSuite) TestTypeChecking() {
	invalidErr := errors.InvalidArgumentf("size must be a 2-element array, got %d elements", 3)
	internalErr := errors.Internal("unexpected state")

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInternal(invalidErr))
	s.Assert().True(errors.IsInternal(internalErr))
	s.Assert().False(errors.IsInvalidArgument(nil))
}
