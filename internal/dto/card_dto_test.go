package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/domain"
)

func TestUpdateCardRequest_Validation(t *testing.T) {
	tests := []struct {
		name        string
		jsonStr     string
		expectError bool
	}{
		{name: "empty body", jsonStr: `{}`},
		{name: "status with space", jsonStr: `{"status": "In Progress"}`},
		{name: "priority", jsonStr: `{"priority": "Low"}`},
		{name: "deadline", jsonStr: `{"deadline": "2026-11-01T17:00:00Z"}`},
		{name: "unknown status", jsonStr: `{"status": "Blocked"}`, expectError: true},
		{name: "lowercase priority", jsonStr: `{"priority": "high"}`, expectError: true},
		{name: "assignee without name", jsonStr: `{"assignee": {"avatar": "x.png"}}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateCardRequest
			err := validate(t, tt.jsonStr, &req)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateCardRequest_ToPatch(t *testing.T) {
	var req UpdateCardRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "New",
		"assignee": {"name": "Jamie", "avatar": "j.png"},
		"status": "Done",
		"priority": "High"
	}`), &req))

	patch := req.ToPatch()
	require.NotNil(t, patch.Title)
	assert.Equal(t, "New", *patch.Title)
	assert.Equal(t, &domain.Assignee{Name: "Jamie", Avatar: "j.png"}, patch.Assignee)
	assert.Equal(t, domain.CardStatusDone, *patch.Status)
	assert.Equal(t, domain.CardPriorityHigh, *patch.Priority)
	assert.Nil(t, patch.Description)
	assert.Nil(t, patch.Deadline)
	assert.True(t, patch.Valid())
	assert.False(t, req.IsEmpty())

	assert.True(t, UpdateCardRequest{}.IsEmpty())
}

func TestUpdateCardRequest_ClearFlags(t *testing.T) {
	var req UpdateCardRequest
	require.NoError(t, json.Unmarshal([]byte(`{"clearAssignee": true, "clearDeadline": true}`), &req))

	assert.False(t, req.IsEmpty())
	patch := req.ToPatch()
	assert.True(t, patch.ClearAssignee)
	assert.True(t, patch.ClearDeadline)
	assert.False(t, patch.ClearDescription)
	assert.True(t, patch.Valid())

	desc := "kept"
	req.Description = &desc
	req.ClearDescription = true
	assert.False(t, req.ToPatch().Valid(), "a field cannot be set and cleared at once")
}

func TestNewCardResponse_DeadlineState(t *testing.T) {
	created := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	deadline := created.Add(100 * time.Hour)
	card := domain.NewCard("c1", "Ship", created)
	card.Deadline = &deadline

	tests := []struct {
		name        string
		now         time.Time
		wantUrgency string
		wantPercent int
	}{
		{name: "just created", now: created, wantUrgency: "on_track", wantPercent: 100},
		{name: "half way", now: created.Add(50 * time.Hour), wantUrgency: "on_track", wantPercent: 50},
		{name: "last day", now: deadline.Add(-12 * time.Hour), wantUrgency: "due_soon", wantPercent: 12},
		{name: "past deadline", now: deadline.Add(time.Hour), wantUrgency: "overdue", wantPercent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewCardResponse(card, tt.now)
			assert.Equal(t, tt.wantUrgency, resp.Urgency)
			assert.Equal(t, tt.wantPercent, resp.TimeRemainingPercent)
			assert.Equal(t, "Medium", resp.Priority)
		})
	}
}

func TestDragRequest_NullTarget(t *testing.T) {
	var req DragRequest
	require.NoError(t, validate(t, `{"draggedId": "c1", "dropTargetId": null}`, &req))
	assert.Nil(t, req.DropTargetID)

	var missing DragRequest
	assert.Error(t, validate(t, `{"dropTargetId": "c2"}`, &missing))
}
