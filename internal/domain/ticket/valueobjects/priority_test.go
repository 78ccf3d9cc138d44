package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Priority
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid low priority",
			input:   "low",
			want:    PriorityLow,
			wantErr: false,
		},
		{
			name:    "valid medium priority",
			input:   "medium",
			want:    PriorityMedium,
			wantErr: false,
		},
		{
			name:    "valid high priority",
			input:   "high",
			want:    PriorityHigh,
			wantErr: false,
		},
		{
			name:    "valid critical priority",
			input:   "critical",
			want:    PriorityCritical,
			wantErr: false,
		},
		{
			name:    "invalid priority",
			input:   "urgent",
			wantErr: true,
			errMsg:  "invalid priority: urgent",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
			errMsg:  "invalid priority",
		},
		{
			name:    "case sensitive - uppercase",
			input:   "HIGH",
			wantErr: true,
			errMsg:  "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPriority(tt.input)

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

func TestPriority_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		want     bool
	}{
		{"low is valid", PriorityLow, true},
		{"medium is valid", PriorityMedium, true},
		{"high is valid", PriorityHigh, true},
		{"critical is valid", PriorityCritical, true},
		{"unknown priority", Priority("urgent"), false},
		{"empty priority", Priority(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.priority.IsValid())
		})
	}
}

func TestPriority_StateCheckers(t *testing.T) {
	assert.True(t, PriorityLow.IsLow())
	assert.True(t, PriorityMedium.IsMedium())
	assert.True(t, PriorityHigh.IsHigh())
	assert.True(t, PriorityCritical.IsCritical())
	assert.False(t, PriorityLow.IsCritical())
}

func TestDefaultPriority(t *testing.T) {
	assert.Equal(t, PriorityMedium, DefaultPriority)
}
