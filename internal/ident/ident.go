// Package ident produces collision-resistant identifiers for new
// entities. There is no registry; uniqueness rests on UUID entropy.
package ident

import (
	"github.com/google/uuid"
)

func New(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "_" + uuid.NewString()
}

func NewTaskID() string {
	return New("task")
}

func NewGoalID() string {
	return New("goal")
}
