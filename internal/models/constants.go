package models

// ============================================================================
// RESEARCHER LEVELS
// ============================================================================

// Level is a researcher's seniority. The schema stores it as plain text and
// does not enforce the set below.
type Level string

const (
	LevelJunior Level = "Junior"
	LevelMiddle Level = "Middle"
	LevelSenior Level = "Senior"
	LevelLead   Level = "Lead"
)

// Levels returns the known levels in ascending seniority
func Levels() []Level {
	return []Level{LevelJunior, LevelMiddle, LevelSenior, LevelLead}
}

// IsKnown reports whether l is one of Levels()
func (l Level) IsKnown() bool {
	for _, known := range Levels() {
		if l == known {
			return true
		}
	}
	return false
}

// ============================================================================
// GENERATOR CONSTANTS
// ============================================================================

// LabSuffixes are the allowed trailing letters of a generated laboratory name
var LabSuffixes = []string{"L", "O", "I", "R"}

const (
	// GeneratedNameLength is the length of generated researcher, object and object type names
	GeneratedNameLength = 5

	// LabPrefixLength is the number of random letters before the dash in a generated lab name
	LabPrefixLength = 3

	// MinGeneratedDistance and MaxGeneratedDistance bound generated object distances (inclusive)
	MinGeneratedDistance = 1000
	MaxGeneratedDistance = 1_000_000_000
)

// ============================================================================
// COLUMN LIMITS
// ============================================================================

// Column length limits enforced by the schema
const (
	MaxLabNameLength        = 50
	MaxFullNameLength       = 100
	MaxLevelLength          = 10
	MaxTypeLength           = 50
	MaxGalaxyLocationLength = 50
	MaxObjectNameLength     = 50
)

// NoFilter is the sentinel filter value meaning "do not restrict on this condition"
const NoFilter = "-"
