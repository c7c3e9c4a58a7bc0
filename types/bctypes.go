package types

import "strings"

// BCFLAG classifies the boundary condition applied to a mesh boundary
// attribute.
type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Dirichlet
	BC_Neumann
)

func (bc BCFLAG) String() string {
	switch bc {
	case BC_Dirichlet:
		return "Dirichlet"
	case BC_Neumann:
		return "Neumann"
	}
	return "None"
}

var BCNameMap = map[string]BCFLAG{
	"dirichlet": BC_Dirichlet,
	"essential": BC_Dirichlet,
	"fixed":     BC_Dirichlet,
	"neumann":   BC_Neumann,
	"natural":   BC_Neumann,
	"free":      BC_Neumann,
	"none":      BC_None,
}

// ParseBCName converts a boundary condition name to a BCFLAG. Matching is
// case-insensitive; unknown names default to Dirichlet, the only essential
// type in this solver.
func ParseBCName(name string) BCFLAG {
	if bc, ok := BCNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return bc
	}
	return BC_Dirichlet
}
