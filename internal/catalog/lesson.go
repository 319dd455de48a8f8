package catalog

// Unit represents a course unit grouping related lessons.
type Unit string

const (
	UnitPythonBasics    Unit = "python-basics"
	UnitDataStructures  Unit = "data-structures"
	UnitControlFlow     Unit = "control-flow"
	UnitFunctions       Unit = "functions"
	UnitModulesPackages Unit = "modules-packages"
)

// AllUnits returns all units in course order.
func AllUnits() []Unit {
	return []Unit{
		UnitPythonBasics,
		UnitDataStructures,
		UnitControlFlow,
		UnitFunctions,
		UnitModulesPackages,
	}
}

// UnitDisplayName returns a human-readable name for a unit.
func UnitDisplayName(u Unit) string {
	switch u {
	case UnitPythonBasics:
		return "Python Basics"
	case UnitDataStructures:
		return "Data Structures"
	case UnitControlFlow:
		return "Control Flow"
	case UnitFunctions:
		return "Functions"
	case UnitModulesPackages:
		return "Modules & Packages"
	default:
		return string(u)
	}
}

// Lesson is one unit of teaching content. Fields are fixed at catalog
// construction; a Lesson is never mutated afterwards.
type Lesson struct {
	ID            string
	Title         string
	Summary       string
	Unit          Unit
	Order         int
	EstimatedMins int
	Objectives    []string
	Prerequisites []string
}
