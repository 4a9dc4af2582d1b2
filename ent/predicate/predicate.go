// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Mission is the predicate function for mission builders.
type Mission func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectContext is the predicate function for projectcontext builders.
type ProjectContext func(*sql.Selector)

// Proposal is the predicate function for proposal builders.
type Proposal func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)

// Trigger is the predicate function for trigger builders.
type Trigger func(*sql.Selector)
