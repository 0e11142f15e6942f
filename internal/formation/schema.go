package formation

// Top-level shape contracts for model answers. Only presence and types of
// the top-level fields are checked; membership invariants inside them are
// the model's responsibility.

const formationSchema = `{
  "type": "object",
  "required": ["teams", "recommended_leader", "team_analysis", "compatibility_score", "recommended_Members"],
  "properties": {
    "teams": {"type": "array"},
    "recommended_leader": {"type": "object"},
    "team_analysis": {"type": "object"},
    "compatibility_score": {"type": "integer", "minimum": 0, "maximum": 100},
    "recommended_Members": {"type": "array"}
  }
}`

const blendedSchema = `{
  "type": "object",
  "required": ["teams", "recommended_leader", "team_analysis", "compatibility_score", "recommended_Members", "complexity_analysis", "level_distribution"],
  "properties": {
    "teams": {"type": "array"},
    "recommended_leader": {"type": "object"},
    "team_analysis": {"type": "object"},
    "compatibility_score": {"type": "integer", "minimum": 0, "maximum": 100},
    "recommended_Members": {"type": "array"},
    "complexity_analysis": {"type": "array"},
    "level_distribution": {"type": "object"}
  }
}`
