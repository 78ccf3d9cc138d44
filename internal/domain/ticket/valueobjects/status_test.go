package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketStatus
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid open status",
			input:   "open",
			want:    StatusOpen,
			wantErr: false,
		},
		{
			name:    "valid in_progress status",
			input:   "in_progress",
			want:    StatusInProgress,
			wantErr: false,
		},
		{
			name:    "valid resolved status",
			input:   "resolved",
			want:    StatusResolved,
			wantErr: false,
		},
		{
			name:    "valid closed status",
			input:   "closed",
			want:    StatusClosed,
			wantErr: false,
		},
		{
			name:    "invalid status",
			input:   "pending",
			wantErr: true,
			errMsg:  "invalid ticket status: pending",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
			errMsg:  "invalid ticket status",
		},
		{
			name:    "case sensitive - uppercase",
			input:   "OPEN",
			wantErr: true,
			errMsg:  "invalid ticket status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTicketStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status TicketStatus
		want   bool
	}{
		{"open is valid", StatusOpen, true},
		{"in_progress is valid", StatusInProgress, true},
		{"resolved is valid", StatusResolved, true},
		{"closed is valid", StatusClosed, true},
		{"unknown status", TicketStatus("reopened"), false},
		{"empty status", TicketStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestTicketStatus_StateCheckers(t *testing.T) {
	assert.True(t, StatusOpen.IsOpen())
	assert.False(t, StatusClosed.IsOpen())
	assert.True(t, StatusInProgress.IsInProgress())
	assert.True(t, StatusResolved.IsResolved())
	assert.True(t, StatusClosed.IsClosed())
	assert.False(t, StatusOpen.IsClosed())
}

func TestDefaultStatus(t *testing.T) {
	assert.Equal(t, StatusOpen, DefaultStatus)
}
