package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questlog-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Catalog").
		Fieldf("LogLimit", "must be at least %d", 1)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Catalog: is required")
	s.Contains(err.Error(), "LogLimit: must be at least 1")
	s.NotNil(errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", "   ", vb)
	errors.ValidateRequired("type", "daily", vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "title: is required")
	s.NotContains(err.Error(), "type")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 0, 1, 99, vb)
	s.Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("level", 5, 1, 99, vb)
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("difficulty", "legendary", []string{"easy", "medium", "hard", "epic"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: easy, medium, hard, epic")
}
