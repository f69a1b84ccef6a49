package domain

import (
	"strings"
	"time"
)

// CardStatus represents the workflow status of a card
type CardStatus string

const (
	CardStatusPending    CardStatus = "Pending"
	CardStatusInProgress CardStatus = "In Progress"
	CardStatusDone       CardStatus = "Done"
)

// Valid reports whether s is one of the known statuses
func (s CardStatus) Valid() bool {
	switch s {
	case CardStatusPending, CardStatusInProgress, CardStatusDone:
		return true
	}
	return false
}

// CardPriority represents the priority of a card
type CardPriority string

const (
	CardPriorityHigh   CardPriority = "High"
	CardPriorityMedium CardPriority = "Medium"
	CardPriorityLow    CardPriority = "Low"
)

// Valid reports whether p is one of the known priorities
func (p CardPriority) Valid() bool {
	switch p {
	case CardPriorityHigh, CardPriorityMedium, CardPriorityLow:
		return true
	}
	return false
}

// Assignee is the person a card is assigned to
type Assignee struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Card represents a work item on a board
type Card struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Assignee    *Assignee    `json:"assignee,omitempty"`
	Status      CardStatus   `json:"status"`
	Priority    CardPriority `json:"priority"`
	CreatedAt   time.Time    `json:"createdAt"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
}

// NewCard creates a card with the default status and priority
func NewCard(id, title string, now time.Time) Card {
	return Card{
		ID:        id,
		Title:     title,
		Status:    CardStatusPending,
		Priority:  CardPriorityMedium,
		CreatedAt: now,
	}
}

// CardPatch holds the card fields to merge; nil fields are left untouched.
// The Clear flags remove an optional field and cannot be combined with a new value for it.
type CardPatch struct {
	Title       *string
	Description *string
	Assignee    *Assignee
	Status      *CardStatus
	Priority    *CardPriority
	Deadline    *time.Time

	ClearDescription bool
	ClearAssignee    bool
	ClearDeadline    bool
}

// Valid reports whether every present field holds an acceptable value
func (p CardPatch) Valid() bool {
	if p.Title != nil && IsBlank(*p.Title) {
		return false
	}
	if p.Status != nil && !p.Status.Valid() {
		return false
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return false
	}
	if (p.ClearDescription && p.Description != nil) ||
		(p.ClearAssignee && p.Assignee != nil) ||
		(p.ClearDeadline && p.Deadline != nil) {
		return false
	}
	return true
}

// Apply returns a copy of c with the patch merged in. ID and CreatedAt never change.
func (p CardPatch) Apply(c Card) Card {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		d := *p.Description
		c.Description = &d
	}
	if p.Assignee != nil {
		a := *p.Assignee
		c.Assignee = &a
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.Deadline != nil {
		d := *p.Deadline
		c.Deadline = &d
	}
	if p.ClearDescription {
		c.Description = nil
	}
	if p.ClearAssignee {
		c.Assignee = nil
	}
	if p.ClearDeadline {
		c.Deadline = nil
	}
	return c
}

// IsBlank reports whether s is empty or whitespace only
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
