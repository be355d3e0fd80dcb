// Package domain holds remap request and response types
package domain

import (
	"almanac/internal/core/interval"
)

// RangeInput is one seed range written as start plus length
type RangeInput struct {
	Start uint64 `json:"start" example:"79"`
	Len   uint64 `json:"len"   example:"14"`
}

// StageInput is one named rule list
type StageInput struct {
	Name  string            `json:"name"  validate:"omitempty,slug,max=64" example:"seed-to-soil"`
	Rules []interval.Triple `json:"rules" validate:"max=4096"`
}

// RemapInput pushes ranges through stages
type RemapInput struct {
	Ranges []RangeInput `json:"ranges" validate:"max=100000,dive"`
	Stages []StageInput `json:"stages" validate:"max=64,dive"`
	Record bool         `json:"record"`
}

// StageSummary reports what one stage did
// lengths are decimal strings since sums may exceed 64 bits
type StageSummary struct {
	Index      int    `json:"index"      example:"0"`
	Name       string `json:"name"       example:"seed-to-soil"`
	Rules      int    `json:"rules"      example:"2"`
	In         int    `json:"in"         example:"2"`
	Out        int    `json:"out"        example:"2"`
	Translated int    `json:"translated" example:"2"`
	InLen      string `json:"in_len"     example:"27"`
	OutLen     string `json:"out_len"    example:"27"`
	Conserved  bool   `json:"conserved"  example:"true"`
}

// RemapOutput is the final range set plus per stage summaries
type RemapOutput struct {
	Ranges   []interval.Interval `json:"ranges"`
	Min      *uint64             `json:"min,omitempty" example:"46"`
	TotalLen string              `json:"total_len"     example:"27"`
	Stages   []StageSummary      `json:"stages"`
	RunID    string              `json:"run_id,omitempty"`
}

// SolveInput is a whole almanac document
type SolveInput struct {
	Almanac string `json:"almanac" validate:"required"`
	Format  string `json:"format"  validate:"omitempty,oneof=text yaml yml" example:"text"`
	Mode    string `json:"mode"    validate:"omitempty,oneof=ranges seeds" example:"ranges"`
	Record  bool   `json:"record"`
}

// SolveOutput is the lowest location and how it was reached
type SolveOutput struct {
	Mode        string              `json:"mode"   example:"ranges"`
	Answer      uint64              `json:"answer" example:"46"`
	FinalRanges []interval.Interval `json:"final_ranges"`
	Stages      []StageSummary      `json:"stages"`
	RunID       string              `json:"run_id,omitempty"`
}
