package match

import (
	"math"
	"strings"

	"github.com/yourusername/roleradar-api/internal/model"
	"github.com/yourusername/roleradar-api/internal/refdata"
)

// Per-table fallback tuning. Job roles get the looser floor because role
// names inside a single industry are more varied than industry names.
const (
	industryFloor = 0.3
	jobRoleFloor  = 0.2

	industryStubConfidence = 20
	jobRoleStubConfidence  = 15
)

// Engine reconciles free-text industry and job-role labels against the
// reference snapshot. All of its methods are total: degraded input yields
// degraded confidence, never an error.
type Engine struct {
	tables *refdata.Tables
}

func NewEngine(tables *refdata.Tables) *Engine {
	return &Engine{tables: tables}
}

// MatchCompanyData resolves an inferred industry and job role into canonical
// reference records and gathers everything hanging off the resolved role.
// Deterministic for a fixed reference snapshot.
func (e *Engine) MatchCompanyData(industryLabel, jobRoleLabel string, skillLabels []string) model.MatchedData {
	industry, industryConf := e.MatchIndustry(industryLabel)
	return e.MatchWithIndustry(industry, industryConf, jobRoleLabel, skillLabels)
}

// MatchWithIndustry is the shared core of the inference-driven path and the
// explicit re-resolution path, which substitutes a user-picked industry while
// keeping the originally inferred job-role text.
func (e *Engine) MatchWithIndustry(industry model.Industry, industryConf int, jobRoleLabel string, skillLabels []string) model.MatchedData {
	role, roleConf := e.FindBestJobRole(jobRoleLabel, industry.ID)

	md := model.MatchedData{
		Industry:           industry,
		JobRole:            role,
		JobRoles:           e.tables.RolesForIndustry(industry.ID),
		Skills:             e.tables.SkillsForRole(role.ID),
		Tasks:              e.tables.TasksForRole(role.ID),
		IndustryConfidence: industryConf,
		JobRoleConfidence:  roleConf,
	}

	names := skillNames(md.Skills, skillLabels)
	md.KnowledgeAreas = e.knowledgeAreasFor(names)
	md.MasterSkills = e.masterSkillsFor(names)
	md.Confidence = int(math.Round(float64(industryConf+roleConf) / 2))
	return md
}

// MatchIndustry resolves a free-text industry label. An empty reference
// table yields a synthetic Technology record at confidence 0.
func (e *Engine) MatchIndustry(label string) (model.Industry, int) {
	res := Best(label, e.tables.Industries, industryKeys, Options[model.Industry]{
		Floor:          industryFloor,
		StubConfidence: industryStubConfidence,
		Fallback: func() (model.Industry, bool) {
			return model.Industry{
				Name:        "Technology",
				Description: "Software and technology companies",
			}, true
		},
	})
	return res.Item, res.Confidence
}

// FindBestJobRole resolves a job-role label scoped to one industry. When that
// industry has no roles at all, the match runs against the whole unfiltered
// role table as a last resort — so the returned role can belong to an
// unrelated industry. That quirk is kept on purpose; callers can detect it by
// comparing the role's IndustryID.
func (e *Engine) FindBestJobRole(label, industryID string) (model.JobRole, int) {
	candidates := e.tables.RolesForIndustry(industryID)
	if len(candidates) == 0 {
		candidates = e.tables.JobRoles
	}

	res := Best(label, candidates, jobRoleKeys, Options[model.JobRole]{
		Floor:          jobRoleFloor,
		StubConfidence: jobRoleStubConfidence,
	})
	return res.Item, res.Confidence
}

func industryKeys(i model.Industry) []string {
	return []string{i.Name, i.Description}
}

func jobRoleKeys(r model.JobRole) []string {
	return []string{r.RoleName, r.Department, r.Description}
}

// ── Soft joins ─────────────────────────────────────────

// skillNames collects the names to drive the knowledge-area and master-skill
// joins: the resolved skills plus any extra inferred skill labels.
func skillNames(skills []model.Skill, extra []string) []string {
	names := make([]string, 0, len(skills)+len(extra))
	for _, s := range skills {
		names = append(names, s.SkillName)
	}
	for _, label := range extra {
		if strings.TrimSpace(label) != "" {
			names = append(names, label)
		}
	}
	return names
}

// knowledgeAreasFor joins skills to knowledge-area rows by case-insensitive
// bidirectional substring containment on the skill name. The linkage is
// approximate on purpose — the source data has no foreign key here.
func (e *Engine) knowledgeAreasFor(names []string) []model.KnowledgeAreaMap {
	areas := []model.KnowledgeAreaMap{}
	for _, row := range e.tables.KnowledgeAreas {
		for _, name := range names {
			if softMatch(name, row.SkillName) {
				areas = append(areas, row)
				break
			}
		}
	}
	return areas
}

// masterSkillsFor applies the same soft join against the master-skill table.
func (e *Engine) masterSkillsFor(names []string) []model.MasterSkill {
	skills := []model.MasterSkill{}
	for _, row := range e.tables.MasterSkills {
		for _, name := range names {
			if softMatch(name, row.SkillName) {
				skills = append(skills, row)
				break
			}
		}
	}
	return skills
}

// softMatch reports whether either lowercased string contains the other.
// Blank strings never match.
func softMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
