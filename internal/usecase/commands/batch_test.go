//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"bagtrack/internal/pkg/config"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/commands"
	"bagtrack/tests/common/builder"
	commandsmock "bagtrack/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BatchCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockBagCommands *commandsmock.MockBagCommands
	batch           commands.BatchCommands
}

func (s *BatchCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBagCommands = commandsmock.NewMockBagCommands(s.mockCtrl)
	s.batch = commands.NewBatchCommands(s.mockBagCommands, config.BatchConfig{
		MaxConcurrency: 4,
		MaxSize:        10,
	})
}

func (s *BatchCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBatchCommandsSuite(t *testing.T) {
	suite.Run(t, new(BatchCommandsTestSuite))
}

func (s *BatchCommandsTestSuite) TestUpdateStatuses() {
	ctx := context.Background()
	view := builder.NewBagBuilder().BuildView()

	s.Run("empty batch returns empty result without any calls", func() {
		result, err := s.batch.UpdateStatuses(ctx, nil, "washing", nil)
		s.Require().NoError(err)
		s.Empty(result.Succeeded)
		s.Empty(result.Failed)
	})

	s.Run("oversized batch rejected up front", func() {
		ids := make([]uuid.UUID, 11)
		for i := range ids {
			ids[i] = uuid.New()
		}

		result, err := s.batch.UpdateStatuses(ctx, ids, "washing", nil)
		s.ErrorIs(err, errs.ErrBatchTooLarge)
		s.Nil(result)
	})

	s.Run("every bag succeeds", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		for _, id := range ids {
			s.mockBagCommands.EXPECT().UpdateStatus(gomock.Any(), id, "washing", gomock.Nil()).
				Return(view, nil).Times(1)
		}

		result, err := s.batch.UpdateStatuses(ctx, ids, "washing", nil)
		s.Require().NoError(err)
		s.Equal(ids, result.Succeeded, "input order must be preserved")
		s.Empty(result.Failed)
	})

	s.Run("one failure never blocks the rest", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
		s.mockBagCommands.EXPECT().UpdateStatus(gomock.Any(), ids[0], "drying", gomock.Nil()).
			Return(view, nil).Times(1)
		s.mockBagCommands.EXPECT().UpdateStatus(gomock.Any(), ids[1], "drying", gomock.Nil()).
			Return(nil, errs.ErrInvalidTransition).Times(1)
		s.mockBagCommands.EXPECT().UpdateStatus(gomock.Any(), ids[2], "drying", gomock.Nil()).
			Return(nil, errs.ErrBagNotFound).Times(1)
		s.mockBagCommands.EXPECT().UpdateStatus(gomock.Any(), ids[3], "drying", gomock.Nil()).
			Return(view, nil).Times(1)

		result, err := s.batch.UpdateStatuses(ctx, ids, "drying", nil)
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{ids[0], ids[3]}, result.Succeeded)
		s.Require().Len(result.Failed, 2)
		s.Equal(commands.BatchFailure{BagID: ids[1], Reason: "invalid_transition"}, result.Failed[0])
		s.Equal(commands.BatchFailure{BagID: ids[2], Reason: "not_found"}, result.Failed[1])
	})

	s.Run("failure reasons stay machine readable", func() {
		cases := []struct {
			err    error
			reason string
		}{
			{errs.ErrBagNotFound, "not_found"},
			{errs.ErrInvalidTransition, "invalid_transition"},
			{errs.ErrTransitionConflict, "conflict"},
			{errs.ErrInvalidNote, "invalid_note"},
			{errors.New("connection reset"), "internal_error"},
		}

		for _, tc := range cases {
			id := uuid.New()
			s.mockBagCommands.EXPECT().UpdateStatus(gomock.Any(), id, "ready", gomock.Nil()).
				Return(nil, tc.err).Times(1)

			result, err := s.batch.UpdateStatuses(ctx, []uuid.UUID{id}, "ready", nil)
			s.Require().NoError(err)
			s.Require().Len(result.Failed, 1)
			s.Equal(tc.reason, result.Failed[0].Reason)
		}
	})

	s.Run("note is passed through to every transition", func() {
		note := "rack 7"
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		for _, id := range ids {
			s.mockBagCommands.EXPECT().UpdateStatus(gomock.Any(), id, "ready", &note).
				Return(view, nil).Times(1)
		}

		result, err := s.batch.UpdateStatuses(ctx, ids, "ready", &note)
		s.Require().NoError(err)
		s.Len(result.Succeeded, 2)
	})
}
