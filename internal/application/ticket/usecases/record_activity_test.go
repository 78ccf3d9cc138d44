package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/errors"
)

func TestRecordActivityUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()
	outsiderID := uuid.New()

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existingTicket(t, ticketID, 1, ownerID), nil
		},
	}

	tests := []struct {
		name    string
		cmd     RecordActivityCommand
		wantErr bool
		errType errors.ErrorType
	}{
		{
			name: "valid activity",
			cmd:  RecordActivityCommand{CallerID: ownerID, TicketID: 5, Action: "status_changed", Details: "open -> in_progress"},
		},
		{
			name: "details optional",
			cmd:  RecordActivityCommand{CallerID: ownerID, TicketID: 5, Action: "assigned"},
		},
		{
			name: "non-owner can record",
			cmd:  RecordActivityCommand{CallerID: outsiderID, TicketID: 5, Action: "commented"},
		},
		{
			name:    "missing action",
			cmd:     RecordActivityCommand{CallerID: ownerID, TicketID: 5},
			wantErr: true,
			errType: errors.ErrorTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activityRepo := &mockActivityRepository{
				SaveFunc: func(ctx context.Context, a *ticket.Activity) error {
					return a.SetID(8)
				},
			}

			uc := NewRecordActivityUseCase(activityRepo, ticketRepo, newTestLogger())
			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr {
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.errType, appErr.Type)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(8), result.ID)
			assert.Equal(t, tt.cmd.Action, result.Action)
			assert.Equal(t, tt.cmd.Details, result.Details)
			assert.Equal(t, tt.cmd.CallerID.String(), result.ActorID)
		})
	}

	t.Run("missing ticket", func(t *testing.T) {
		absentTicketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		activityRepo := &mockActivityRepository{
			SaveFunc: func(ctx context.Context, a *ticket.Activity) error {
				t.Fatal("save should not be reached")
				return nil
			},
		}

		uc := NewRecordActivityUseCase(activityRepo, absentTicketRepo, newTestLogger())
		_, err := uc.Execute(context.Background(), RecordActivityCommand{CallerID: ownerID, TicketID: 99, Action: "assigned"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestListActivitiesUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()
	outsiderID := uuid.New()

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existingTicket(t, ticketID, 1, ownerID), nil
		},
	}

	reconstructedActivity := func(id uint, actorID uuid.UUID) *ticket.Activity {
		a, err := ticket.ReconstructActivity(id, 5, actorID, "status_changed", "", time.Now())
		require.NoError(t, err)
		return a
	}

	t.Run("full ticket list readable by any caller", func(t *testing.T) {
		activityRepo := &mockActivityRepository{
			ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Activity, error) {
				return []*ticket.Activity{reconstructedActivity(1, ownerID), reconstructedActivity(2, uuid.New())}, nil
			},
		}

		uc := NewListActivitiesUseCase(activityRepo, ticketRepo, newTestLogger())
		result, err := uc.Execute(context.Background(), ListActivitiesQuery{CallerID: outsiderID, TicketID: 5})

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("actor-only list scopes to caller", func(t *testing.T) {
		activityRepo := &mockActivityRepository{
			ListByTicketAndActorFunc: func(ctx context.Context, ticketID uint, actorID uuid.UUID) ([]*ticket.Activity, error) {
				assert.Equal(t, outsiderID, actorID)
				return []*ticket.Activity{reconstructedActivity(1, outsiderID)}, nil
			},
		}

		uc := NewListActivitiesUseCase(activityRepo, ticketRepo, newTestLogger())
		result, err := uc.Execute(context.Background(), ListActivitiesQuery{CallerID: outsiderID, TicketID: 5, ActorOnly: true})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, outsiderID.String(), result[0].ActorID)
	})
}

func TestDeleteActivityUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()
	actorID := uuid.New()

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existingTicket(t, ticketID, 1, ownerID), nil
		},
	}

	t.Run("actor deletes own entry without owning the project", func(t *testing.T) {
		deleted := false
		activityRepo := &mockActivityRepository{
			DeleteByIDAndActorFunc: func(ctx context.Context, activityID, ticketID uint, actor uuid.UUID) error {
				deleted = true
				assert.Equal(t, uint(8), activityID)
				assert.Equal(t, uint(5), ticketID)
				assert.Equal(t, actorID, actor)
				return nil
			},
		}

		uc := NewDeleteActivityUseCase(activityRepo, ticketRepo, newTestLogger())
		err := uc.Execute(context.Background(), DeleteActivityCommand{CallerID: actorID, TicketID: 5, ActivityID: 8})

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("foreign entry reads as absent", func(t *testing.T) {
		activityRepo := &mockActivityRepository{
			DeleteByIDAndActorFunc: func(ctx context.Context, activityID, ticketID uint, actor uuid.UUID) error {
				return errors.NewNotFoundError("activity not found")
			},
		}

		uc := NewDeleteActivityUseCase(activityRepo, ticketRepo, newTestLogger())
		err := uc.Execute(context.Background(), DeleteActivityCommand{CallerID: actorID, TicketID: 5, ActivityID: 8})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("missing ticket stops before the delete query", func(t *testing.T) {
		absentTicketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		activityRepo := &mockActivityRepository{
			DeleteByIDAndActorFunc: func(ctx context.Context, activityID, ticketID uint, actor uuid.UUID) error {
				t.Fatal("delete should not be reached")
				return nil
			},
		}

		uc := NewDeleteActivityUseCase(activityRepo, absentTicketRepo, newTestLogger())
		err := uc.Execute(context.Background(), DeleteActivityCommand{CallerID: actorID, TicketID: 99, ActivityID: 8})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
