package models

import (
	"fmt"
	"strings"
)

// ValueType describes how a raw value for a column must be shaped
type ValueType int

const (
	ValueText ValueType = iota
	ValueInt
)

// Field selects one updatable column of one entity kind. The zero value and
// any Field not obtained from this package are rejected by the data access
// layer, so the variables below are the complete allow-list.
type Field struct {
	kind   Kind
	column string
	value  ValueType
}

// Allow-listed updatable fields
var (
	FieldLabName = Field{KindLaboratory, "lab_name", ValueText}

	FieldResearcherFullName     = Field{KindResearcher, "full_name", ValueText}
	FieldResearcherLevel        = Field{KindResearcher, "level", ValueText}
	FieldResearcherLaboratoryID = Field{KindResearcher, "laboratory_id", ValueInt}

	FieldObjectTypeType           = Field{KindObjectType, "type", ValueText}
	FieldObjectTypeGalaxyLocation = Field{KindObjectType, "galaxy_location", ValueText}

	FieldObjectName         = Field{KindObject, "name", ValueText}
	FieldObjectDistance     = Field{KindObject, "distance", ValueInt}
	FieldObjectLaboratoryID = Field{KindObject, "laboratory_id", ValueInt}
	FieldObjectTypeID       = Field{KindObject, "type_id", ValueInt}
)

// Kind returns the entity kind the field belongs to
func (f Field) Kind() Kind { return f.kind }

// Column returns the column name
func (f Field) Column() string { return f.column }

// ValueType returns how raw input for the field is shaped
func (f Field) ValueType() ValueType { return f.value }

// String returns "<table>.<column>"
func (f Field) String() string {
	if f.IsZero() {
		return "<no field>"
	}
	return f.kind.Table() + "." + f.column
}

// IsZero reports whether f is the zero Field
func (f Field) IsZero() bool { return f.column == "" }

// Allowed reports whether f is one of the allow-listed fields
func (f Field) Allowed() bool {
	if f.IsZero() {
		return false
	}
	for _, allowed := range FieldsFor(f.kind) {
		if allowed == f {
			return true
		}
	}
	return false
}

// FieldsFor returns the allow-list for a kind, in column order
func FieldsFor(kind Kind) []Field {
	switch kind {
	case KindLaboratory:
		return []Field{FieldLabName}
	case KindResearcher:
		return []Field{FieldResearcherFullName, FieldResearcherLevel, FieldResearcherLaboratoryID}
	case KindObjectType:
		return []Field{FieldObjectTypeType, FieldObjectTypeGalaxyLocation}
	case KindObject:
		return []Field{FieldObjectName, FieldObjectDistance, FieldObjectLaboratoryID, FieldObjectTypeID}
	default:
		return nil
	}
}

// ParseField looks a column name up in the kind's allow-list
func ParseField(kind Kind, name string) (Field, error) {
	name = strings.TrimSpace(name)
	for _, f := range FieldsFor(kind) {
		if f.column == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %q for %s", ErrInvalidField, name, kind)
}

// CreateFields returns the columns a create call takes for kind, in argument
// order. They coincide with the updatable fields.
func CreateFields(kind Kind) []Field {
	return FieldsFor(kind)
}
