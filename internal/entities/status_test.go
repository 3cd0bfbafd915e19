package entities_test

import (
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTransition(t *testing.T) {
	allowed := map[entities.Status][]entities.Status{
		entities.StatusPending:    {entities.StatusConfirmed, entities.StatusCancelled},
		entities.StatusConfirmed:  {entities.StatusProcessing, entities.StatusCancelled},
		entities.StatusProcessing: {entities.StatusShipped, entities.StatusCancelled},
		entities.StatusShipped:    {entities.StatusDelivered},
	}

	for _, from := range entities.Statuses {
		for _, to := range entities.Statuses {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}

			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				err := entities.CheckTransition(from, to)
				if want {
					assert.NoError(t, err)
					return
				}

				require.ErrorIs(t, err, entities.ErrInvalidStatusTransition)
				var te *entities.StatusTransitionError
				require.True(t, errors.As(err, &te))
				assert.Equal(t, from, te.From)
				assert.Equal(t, to, te.To)
				assert.Equal(t, entities.CodeInvalidStatusTransition, entities.ErrorCode(err))
			})
		}
	}
}

func TestCheckCancellable(t *testing.T) {
	testCases := []struct {
		status   entities.Status
		wantCode string
	}{
		{status: entities.StatusPending},
		{status: entities.StatusConfirmed},
		{status: entities.StatusProcessing},
		{status: entities.StatusShipped, wantCode: entities.CodeOrderAlreadyShipped},
		{status: entities.StatusDelivered, wantCode: entities.CodeOrderAlreadyDelivered},
		{status: entities.StatusCancelled, wantCode: entities.CodeOrderAlreadyCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			err := entities.CheckCancellable(tc.status)
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, entities.ErrOrderCancellationRejected)
			assert.Equal(t, tc.wantCode, entities.ErrorCode(err))
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := entities.ParseStatus(" shipped ")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusShipped, s)

	_, err = entities.ParseStatus("LOST")
	assert.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range entities.Statuses {
		terminal := s == entities.StatusDelivered || s == entities.StatusCancelled
		assert.Equal(t, terminal, s.IsTerminal(), s.String())
	}
}
