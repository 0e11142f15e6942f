// Package types provides type definitions for the request and response
// contracts used throughout the team-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SeniorityLevel is the ordered tier of a specialized role:
// Junior < Staff < Senior < Architect. It is distinct from the SFIA
// score, which is an integer competency rating per technology.
type SeniorityLevel string

// Seniority tiers in ascending order.
const (
	LevelJunior    SeniorityLevel = "Junior"
	LevelStaff     SeniorityLevel = "Staff"
	LevelSenior    SeniorityLevel = "Senior"
	LevelArchitect SeniorityLevel = "Architect"
)

// levelRanks maps each tier to its position in the ordering. The numeric
// codes double as the legacy wire encoding still emitted by older clients.
var levelRanks = map[SeniorityLevel]int{
	LevelJunior:    0,
	LevelStaff:     1,
	LevelSenior:    2,
	LevelArchitect: 3,
}

var ranksToLevel = map[int]SeniorityLevel{
	0: LevelJunior,
	1: LevelStaff,
	2: LevelSenior,
	3: LevelArchitect,
}

// ParseSeniorityLevel converts a tier name or a legacy numeric code ("0".."3")
// into a SeniorityLevel. Matching on names is case-insensitive.
func ParseSeniorityLevel(s string) (SeniorityLevel, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("seniority level is empty")
	}

	if code, err := strconv.Atoi(trimmed); err == nil {
		if level, ok := ranksToLevel[code]; ok {
			return level, nil
		}
		return "", fmt.Errorf("unknown seniority level code: %d", code)
	}

	for level := range levelRanks {
		if strings.EqualFold(string(level), trimmed) {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown seniority level: %q", s)
}

// Rank returns the position of the level in the ordering (Junior=0).
// Unknown levels rank below Junior.
func (l SeniorityLevel) Rank() int {
	if rank, ok := levelRanks[l]; ok {
		return rank
	}
	return -1
}

// Valid reports whether the level is one of the known tiers.
func (l SeniorityLevel) Valid() bool {
	_, ok := levelRanks[l]
	return ok
}

// String returns the canonical tier name.
func (l SeniorityLevel) String() string {
	return string(l)
}

// UnmarshalJSON accepts either a tier name ("Senior") or a legacy numeric
// code (2). An empty string decodes to the zero value so requests with an
// optional level field can send "" to mean "no level filter". The canonical
// internal representation is always the tier name; translation to the
// persisted encoding happens in the db package.
func (l *SeniorityLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if strings.TrimSpace(name) == "" {
			*l = ""
			return nil
		}
		level, perr := ParseSeniorityLevel(name)
		if perr != nil {
			return perr
		}
		*l = level
		return nil
	}

	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("seniority level must be a tier name or numeric code: %s", string(data))
	}
	level, ok := ranksToLevel[code]
	if !ok {
		return fmt.Errorf("unknown seniority level code: %d", code)
	}
	*l = level
	return nil
}
