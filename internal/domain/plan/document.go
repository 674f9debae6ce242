// Package plan describes a production graph declaratively: which buildings
// exist, how they are configured and how their ports are wired. Documents
// are what plan files and the plan store hold; a live graph is rebuilt from
// one with Apply and described by one with Capture.
package plan

import (
	"time"

	"github.com/andrescamacho/factoryplan-go/internal/domain/shared"
)

// BuildingSpec describes one building by its editor ID. Only the fields that
// apply to the building's kind are read; storage containers reuse Resource
// for the stored material and Belt for the unloading belt.
type BuildingSpec struct {
	ID   string `json:"id" validate:"required"`
	Kind string `json:"kind" validate:"required"`

	// Recipe buildings
	Recipe     string   `json:"recipe,omitempty"`
	Speed      *float64 `json:"speed,omitempty" validate:"omitempty,min=0,max=250"`
	Amplifiers int      `json:"amplifiers,omitempty" validate:"min=0,max=4"`

	// Extractors
	Resource string `json:"resource,omitempty"`
	Purity   string `json:"purity,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Belt     string `json:"belt,omitempty"`
	Pipe     string `json:"pipe,omitempty"`
}

// ConnectionSpec wires an output port of one building to an input port of another
type ConnectionSpec struct {
	From   string `json:"from" validate:"required"`
	Output int    `json:"output" validate:"min=0"`
	To     string `json:"to" validate:"required"`
	Input  int    `json:"input" validate:"min=0"`
}

// Document is a complete, named production plan
type Document struct {
	ID          string           `json:"id"`
	Name        string           `json:"name" validate:"required,max=128"`
	Description string           `json:"description,omitempty"`
	Buildings   []BuildingSpec   `json:"buildings" validate:"dive"`
	Connections []ConnectionSpec `json:"connections" validate:"dive"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewDocument creates an empty document stamped with the clock's time.
// If clock is nil, uses RealClock.
func NewDocument(id, name string, clock shared.Clock) *Document {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	now := clock.Now()
	return &Document{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification time
func (d *Document) Touch(clock shared.Clock) {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	d.UpdatedAt = clock.Now()
}

// Building returns the spec with the given editor ID
func (d *Document) Building(id string) (BuildingSpec, bool) {
	for _, b := range d.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return BuildingSpec{}, false
}
