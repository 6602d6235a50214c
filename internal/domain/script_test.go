package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waabox/clidemo/internal/domain"
)

func validSteps() []domain.Step {
	return []domain.Step{
		{ID: 1, Title: "Write Code", Command: "vim main.go", Status: domain.StatusSuccess, Delay: 2 * time.Second},
		{ID: 2, Title: "Run Tests", Command: "go test ./...", Status: domain.StatusError, Delay: 3 * time.Second},
	}
}

func TestScript_Validate_AcceptsWellFormedScript(t *testing.T) {
	s := domain.Script{Name: "demo", Steps: validSteps()}
	require.NoError(t, s.Validate())
}

func TestScript_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Script)
	}{
		{"no steps", func(s *domain.Script) { s.Steps = nil }},
		{"zero id", func(s *domain.Script) { s.Steps[0].ID = 0 }},
		{"duplicate id", func(s *domain.Script) { s.Steps[1].ID = 1 }},
		{"descending ids", func(s *domain.Script) { s.Steps[0].ID = 5 }},
		{"zero delay", func(s *domain.Script) { s.Steps[1].Delay = 0 }},
		{"unknown status", func(s *domain.Script) { s.Steps[0].Status = "done" }},
		{"unknown policy", func(s *domain.Script) { s.EndPolicy = "bounce" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.Script{Name: "demo", Steps: validSteps()}
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), domain.ErrInvalidScript)
		})
	}
}

func TestScript_PolicyDefaultsToStop(t *testing.T) {
	assert.Equal(t, domain.EndStop, domain.Script{}.Policy())
	assert.Equal(t, domain.EndLoop, domain.Script{EndPolicy: domain.EndLoop}.Policy())
}

func TestScript_LoopPauseOrDefault(t *testing.T) {
	assert.Equal(t, domain.DefaultLoopPause, domain.Script{}.LoopPauseOrDefault())
	assert.Equal(t, time.Second, domain.Script{LoopPause: time.Second}.LoopPauseOrDefault())
}
