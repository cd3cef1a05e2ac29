package addrtree

// Level identifies a depth in the containment hierarchy. Levels are
// strictly ordered: every node's children sit exactly one level below it.
type Level int

const (
	LevelPlanet Level = iota
	LevelCountry
	LevelRegion
	LevelCity
	LevelPostcode
	LevelStreet
	LevelNumber
	LevelUnit
)

var levelNames = [...]string{
	LevelPlanet:   "planet",
	LevelCountry:  "country",
	LevelRegion:   "region",
	LevelCity:     "city",
	LevelPostcode: "postcode",
	LevelStreet:   "street",
	LevelNumber:   "number",
	LevelUnit:     "unit",
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// Levels returns all hierarchy levels in containment order.
func Levels() []Level {
	return []Level{
		LevelPlanet, LevelCountry, LevelRegion, LevelCity,
		LevelPostcode, LevelStreet, LevelNumber, LevelUnit,
	}
}

// levelStep describes one record-driven step of the insertion walk:
// which level it lands on, which record field labels the node, and
// whether an absent field is a terminal stop rather than an error.
// The planet and country levels are not record-driven and are handled
// before this table is consulted.
type levelStep struct {
	level    Level
	field    func(AddressRecord) string
	required bool
}

// insertSteps drives Hierarchy.Insert. One generic loop over this table
// replaces per-level branching; order mirrors the Level constants.
var insertSteps = []levelStep{
	{LevelRegion, func(r AddressRecord) string { return r.Region }, true},
	{LevelCity, func(r AddressRecord) string { return r.City }, true},
	{LevelPostcode, func(r AddressRecord) string { return r.Postcode }, true},
	{LevelStreet, func(r AddressRecord) string { return r.Street }, true},
	{LevelNumber, func(r AddressRecord) string { return r.Number }, false},
	{LevelUnit, func(r AddressRecord) string { return r.Unit }, false},
}
