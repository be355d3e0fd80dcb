// Package domain holds run history types shared by the runs service and its callers
package domain

import (
	"time"

	"almanac/internal/core/interval"
)

// Kinds of recorded runs
const (
	KindRemap = "remap"
	KindSolve = "solve"
)

// NewRun is what a caller hands to Record
type NewRun struct {
	Kind        string
	Mode        string
	Answer      *uint64 // nil when the final set was empty
	Inputs      int     // initial intervals
	FinalRanges int
	InputDigest string
	Elapsed     time.Duration
	Reports     []interval.StageReport
}

// Run is a stored run summary
type Run struct {
	ID          string    `json:"id"           example:"0b6f3c52-4ad4-4d8e-9a62-1b2b8f1c0e11"`
	Kind        string    `json:"kind"         example:"solve"`
	Mode        string    `json:"mode"         example:"ranges"`
	Answer      *uint64   `json:"answer,omitempty" example:"46"`
	Inputs      int       `json:"inputs"       example:"2"`
	Stages      int       `json:"stages"       example:"7"`
	FinalRanges int       `json:"final_ranges" example:"7"`
	InputDigest string    `json:"input_digest" example:"9f86d081884c7d65"`
	ElapsedUS   int64     `json:"elapsed_us"   example:"412"`
	CreatedAt   time.Time `json:"created_at"`
}

// StageTrace is one stored stage report
// lengths are decimal strings since they may exceed 64 bits
type StageTrace struct {
	Index      int       `json:"index"      example:"0"`
	Name       string    `json:"name"       example:"seed-to-soil"`
	Rules      int       `json:"rules"      example:"2"`
	In         int       `json:"in"         example:"2"`
	Out        int       `json:"out"        example:"3"`
	Translated int       `json:"translated" example:"2"`
	InLen      string    `json:"in_len"     example:"27"`
	OutLen     string    `json:"out_len"    example:"27"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecentInput bounds a listing
type RecentInput struct {
	Limit int `json:"limit" validate:"min=0,max=500"`
}
