package almanac

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"almanac/internal/core/interval"
	perr "almanac/internal/platform/errors"
)

// Document is the YAML shape of an almanac
type Document struct {
	Seeds  []uint64        `yaml:"seeds" json:"seeds"`
	Stages []StageDocument `yaml:"stages" json:"stages"`
}

// StageDocument is one named mapping block
type StageDocument struct {
	Name  string            `yaml:"name" json:"name"`
	Rules []interval.Triple `yaml:"rules" json:"rules"`
}

// ParseYAML reads the YAML form
func ParseYAML(r io.Reader) (*Almanac, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, perr.WithField(perr.InvalidArgf("empty document"), "seeds")
		}
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "decode yaml almanac")
	}
	return doc.Almanac()
}

// Almanac validates the document into an Almanac
func (d Document) Almanac() (*Almanac, error) {
	stages := make([]interval.Stage, 0, len(d.Stages))
	for i, sd := range d.Stages {
		name := sd.Name
		if name == "" {
			name = fmt.Sprintf("stage-%d", i)
		}
		s, err := interval.BuildStage(name, sd.Rules)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return &Almanac{Seeds: append([]uint64(nil), d.Seeds...), Pipeline: interval.NewPipeline(stages...)}, nil
}

// ToDocument is the inverse of Document.Almanac
func ToDocument(a *Almanac) Document {
	doc := Document{Seeds: append([]uint64(nil), a.Seeds...)}
	for _, s := range a.Pipeline.Stages() {
		doc.Stages = append(doc.Stages, StageDocument{Name: s.Name(), Rules: s.Triples()})
	}
	return doc
}

// FormatYAML renders an almanac as YAML
func FormatYAML(a *Almanac) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToDocument(a)); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "encode yaml almanac")
	}
	if err := enc.Close(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "encode yaml almanac")
	}
	return buf.Bytes(), nil
}

// Format renders an almanac back into the text form
func Format(a *Almanac) string {
	var b bytes.Buffer
	b.WriteString(seedsPrefix)
	for _, s := range a.Seeds {
		fmt.Fprintf(&b, " %d", s)
	}
	b.WriteString("\n")
	for _, s := range a.Pipeline.Stages() {
		fmt.Fprintf(&b, "\n%s %s\n", s.Name(), mapSuffix)
		for _, t := range s.Triples() {
			fmt.Fprintf(&b, "%d %d %d\n", t.Dest, t.Source, t.Len)
		}
	}
	return b.String()
}
