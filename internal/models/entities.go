package models

import "strconv"

// Record is a display row. Read and search results are returned as records so
// the presentation layer can render any kind without knowing its type.
type Record interface {
	GetID() int64
	Cells() []string
}

// Laboratory owns researchers and objects
type Laboratory struct {
	ID   int64
	Name string
}

func (l Laboratory) GetID() int64 { return l.ID }

func (l Laboratory) Cells() []string {
	return []string{strconv.FormatInt(l.ID, 10), l.Name}
}

// Researcher belongs to one laboratory. LabName is filled by reads and
// searches from the joined laboratory row.
type Researcher struct {
	ID           int64
	FullName     string
	Level        Level
	LaboratoryID int64
	LabName      string
}

func (r Researcher) GetID() int64 { return r.ID }

func (r Researcher) Cells() []string {
	return []string{strconv.FormatInt(r.ID, 10), r.FullName, string(r.Level), r.LabName}
}

// ObjectType classifies objects and records where in the galaxy they are found
type ObjectType struct {
	ID             int64
	Type           string
	GalaxyLocation string
}

func (t ObjectType) GetID() int64 { return t.ID }

func (t ObjectType) Cells() []string {
	return []string{strconv.FormatInt(t.ID, 10), t.Type, t.GalaxyLocation}
}

// Object is an astronomical object observed by a laboratory.
// LabName, TypeName and GalaxyLocation come from the joined rows.
type Object struct {
	ID             int64
	Name           string
	Distance       int64
	LaboratoryID   int64
	TypeID         int64
	LabName        string
	TypeName       string
	GalaxyLocation string
}

func (o Object) GetID() int64 { return o.ID }

func (o Object) Cells() []string {
	return []string{
		strconv.FormatInt(o.ID, 10),
		o.Name,
		strconv.FormatInt(o.Distance, 10),
		o.LabName,
		o.TypeName,
		o.GalaxyLocation,
	}
}

// Headers returns the column titles matching Cells() for a kind
func Headers(kind Kind) []string {
	switch kind {
	case KindLaboratory:
		return []string{"id", "lab_name"}
	case KindResearcher:
		return []string{"id", "full_name", "level", "lab_name"}
	case KindObjectType:
		return []string{"id", "type", "galaxy_location"}
	case KindObject:
		return []string{"id", "name", "distance", "lab_name", "type", "galaxy_location"}
	default:
		return nil
	}
}

// ToRecords converts a typed slice into records
func ToRecords[T Record](rows []T) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}
