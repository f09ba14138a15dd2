package model

// ── Reference rows ─────────────────────────────────────
// Loaded once at startup from the CSV reference tables and treated as
// immutable for the life of the process.

// Industry is one row of industries.csv
type Industry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// JobRole is one row of job_roles.csv; many roles per industry
type JobRole struct {
	ID            string `json:"id"`
	IndustryID    string `json:"industryId"`
	RoleName      string `json:"roleName"`
	Department    string `json:"department"`
	SubDepartment string `json:"subDepartment"`
	Description   string `json:"description"`
}

// Skill is one row of skills.csv; many skills per job role
type Skill struct {
	ID         string `json:"id"`
	JobRoleID  string `json:"jobRoleId"`
	SkillName  string `json:"skillName"`
	SkillLevel string `json:"skillLevel"`
	Importance string `json:"importance"`
}

// Task is one row of tasks.csv; many tasks per job role
type Task struct {
	ID         string `json:"id"`
	JobRoleID  string `json:"jobRoleId"`
	TaskName   string `json:"taskName"`
	Frequency  string `json:"frequency"`
	Complexity string `json:"complexity"`
}

// KnowledgeAreaMap is one row of knowledge_areas.csv. It links to skills by
// case-insensitive substring match on SkillName, not by id — the source data
// has no authoritative foreign key for this relationship.
type KnowledgeAreaMap struct {
	ID                 string `json:"id"`
	SkillName          string `json:"skillName"`
	KnowledgeArea      string `json:"knowledgeArea"`
	AbilityDescription string `json:"abilityDescription"`
}

// MasterSkill is one row of master_skills.csv, linked to skills the same
// soft way as KnowledgeAreaMap.
type MasterSkill struct {
	ID               string `json:"id"`
	SkillCategory    string `json:"skillCategory"`
	SkillName        string `json:"skillName"`
	Description      string `json:"description"`
	ProficiencyLevel string `json:"proficiencyLevel"`
}

// ── Derived results ────────────────────────────────────

// MatchedData is the consolidated reconciliation result. Recomputed on every
// request, never persisted.
type MatchedData struct {
	Industry           Industry           `json:"industry"`
	JobRole            JobRole            `json:"jobRole"`
	JobRoles           []JobRole          `json:"jobRoles"`
	Skills             []Skill            `json:"skills"`
	Tasks              []Task             `json:"tasks"`
	KnowledgeAreas     []KnowledgeAreaMap `json:"knowledgeAreas"`
	MasterSkills       []MasterSkill      `json:"masterSkills"`
	Confidence         int                `json:"confidence"`
	IndustryConfidence int                `json:"industryConfidence"`
	JobRoleConfidence  int                `json:"jobRoleConfidence"`
}

// CompanyInference is the structured guess produced for a company website,
// either by Claude or by the offline hostname heuristic. The reconciliation
// engine cannot tell the two apart.
type CompanyInference struct {
	Industry       string   `json:"industry"`
	Department     string   `json:"department"`
	SubDepartment  string   `json:"subDepartment"`
	JobRole        string   `json:"jobRole"`
	Skills         []string `json:"skills"`
	Tasks          []string `json:"tasks"`
	KnowledgeAreas []string `json:"knowledgeAreas"`
	Reasoning      string   `json:"reasoning"`
	Confidence     int      `json:"confidence"`
}
