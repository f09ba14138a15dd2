package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/roleradar-api/internal/model"
	"github.com/yourusername/roleradar-api/internal/refdata"
)

// testTables mirrors the shipped dataset in miniature. Healthcare
// deliberately has no job roles.
func testTables() *refdata.Tables {
	return &refdata.Tables{
		Industries: []model.Industry{
			{ID: "ind-tech", Name: "Technology", Description: "Software development and technology services"},
			{ID: "ind-health", Name: "Healthcare", Description: "Hospitals clinics and medical providers"},
			{ID: "ind-media", Name: "Media", Description: "Film, television, gaming and interactive entertainment"},
		},
		JobRoles: []model.JobRole{
			{ID: "role-se", IndustryID: "ind-tech", RoleName: "Software Engineer", Department: "Engineering", Description: "Designs and builds software systems"},
			{ID: "role-gd", IndustryID: "ind-media", RoleName: "Game Developer", Department: "Production", Description: "Implements gameplay systems"},
			{ID: "role-cp", IndustryID: "ind-media", RoleName: "Content Producer", Department: "Production", Description: "Plans and produces content"},
		},
		Skills: []model.Skill{
			{ID: "skill-1", JobRoleID: "role-se", SkillName: "Data Analysis", SkillLevel: "Advanced", Importance: "High"},
			{ID: "skill-2", JobRoleID: "role-gd", SkillName: "Game Design", SkillLevel: "Advanced", Importance: "Critical"},
			{ID: "skill-3", JobRoleID: "role-gd", SkillName: "Programming", SkillLevel: "Advanced", Importance: "Critical"},
		},
		Tasks: []model.Task{
			{ID: "task-1", JobRoleID: "role-gd", TaskName: "Implement gameplay features", Frequency: "Daily", Complexity: "High"},
			{ID: "task-2", JobRoleID: "role-se", TaskName: "Write and review code", Frequency: "Daily", Complexity: "High"},
		},
		KnowledgeAreas: []model.KnowledgeAreaMap{
			{ID: "ka-1", SkillName: "Analysis", KnowledgeArea: "Statistics", AbilityDescription: "Draw conclusions from data"},
			{ID: "ka-2", SkillName: "Advanced Data Analysis Methods", KnowledgeArea: "Applied Mathematics", AbilityDescription: "Model complex datasets"},
			{ID: "ka-3", SkillName: "Game Design", KnowledgeArea: "Interactive Media", AbilityDescription: "Shape engaging player systems"},
		},
		MasterSkills: []model.MasterSkill{
			{ID: "ms-1", SkillCategory: "Technical", SkillName: "Programming", Description: "Writing software", ProficiencyLevel: "Expert"},
			{ID: "ms-2", SkillCategory: "Analytical", SkillName: "Analysis", Description: "Working with data", ProficiencyLevel: "Advanced"},
		},
	}
}

func TestMatchCompanyDataGamingStudio(t *testing.T) {
	e := NewEngine(testTables())

	md := e.MatchCompanyData("gaming studio", "dev", nil)

	assert.Equal(t, "Media", md.Industry.Name)
	assert.Equal(t, "Game Developer", md.JobRole.RoleName)
	assert.Greater(t, md.Confidence, 0)

	// Full role roster for the resolved industry, not just the best match.
	require.Len(t, md.JobRoles, 2)

	// Skills and tasks hang off the resolved role.
	require.Len(t, md.Skills, 2)
	require.Len(t, md.Tasks, 1)
	assert.Equal(t, "Implement gameplay features", md.Tasks[0].TaskName)
}

func TestMatchCompanyDataEmptyLabels(t *testing.T) {
	e := NewEngine(testTables())

	md := e.MatchCompanyData("", "", nil)

	// First industry in the table, confidence 0, no panic.
	assert.Equal(t, "ind-tech", md.Industry.ID)
	assert.Equal(t, 0, md.IndustryConfidence)
	assert.Equal(t, 0, md.Confidence)
}

func TestMatchCompanyDataIndustryWithoutRoles(t *testing.T) {
	e := NewEngine(testTables())

	md := e.MatchCompanyData("hospitals and clinics", "zzzqqq", nil)

	require.Equal(t, "Healthcare", md.Industry.Name)
	assert.Empty(t, md.JobRoles)

	// With no Healthcare roles the matcher falls back to the global first
	// role at the stub confidence, even though it belongs elsewhere.
	assert.Equal(t, "role-se", md.JobRole.ID)
	assert.Equal(t, jobRoleStubConfidence, md.JobRoleConfidence)
	assert.NotEqual(t, md.Industry.ID, md.JobRole.IndustryID)
}

func TestMatchCompanyDataDeterministic(t *testing.T) {
	e := NewEngine(testTables())

	first := e.MatchCompanyData("gaming studio", "dev", []string{"Programming"})
	second := e.MatchCompanyData("gaming studio", "dev", []string{"Programming"})

	assert.Equal(t, first, second)
}

func TestSoftJoinSymmetry(t *testing.T) {
	e := NewEngine(testTables())

	// Resolved skill "Data Analysis" must pick up both the shorter
	// knowledge-area name ("Analysis") and the longer one containing it.
	md := e.MatchCompanyData("technology", "software engineer", nil)

	require.Equal(t, "role-se", md.JobRole.ID)

	var areaIDs []string
	for _, ka := range md.KnowledgeAreas {
		areaIDs = append(areaIDs, ka.ID)
	}
	assert.Contains(t, areaIDs, "ka-1")
	assert.Contains(t, areaIDs, "ka-2")
	assert.NotContains(t, areaIDs, "ka-3")
}

func TestSkillLabelsJoinIntoSoftMatch(t *testing.T) {
	e := NewEngine(testTables())

	// The inferred extra skill label drives the master-skill join even when
	// the resolved role carries no such skill row.
	md := e.MatchWithIndustry(model.Industry{ID: "ind-health", Name: "Healthcare"}, 100, "zzzqqq", []string{"Programming"})

	var names []string
	for _, ms := range md.MasterSkills {
		names = append(names, ms.SkillName)
	}
	assert.Contains(t, names, "Programming")
}

func TestRematchRoundTrip(t *testing.T) {
	e := NewEngine(testTables())

	original := e.MatchCompanyData("gaming studio", "dev", nil)
	rematched := e.MatchWithIndustry(original.Industry, 100, "dev", nil)

	// Same records modulo confidence recomputation.
	assert.Equal(t, original.Industry, rematched.Industry)
	assert.Equal(t, original.JobRole, rematched.JobRole)
	assert.Equal(t, original.JobRoles, rematched.JobRoles)
	assert.Equal(t, original.Skills, rematched.Skills)
	assert.Equal(t, original.Tasks, rematched.Tasks)
	assert.Equal(t, original.KnowledgeAreas, rematched.KnowledgeAreas)
	assert.Equal(t, original.MasterSkills, rematched.MasterSkills)
	assert.Equal(t, 100, rematched.IndustryConfidence)
}

func TestMatchIndustryEmptyTable(t *testing.T) {
	e := NewEngine(&refdata.Tables{})

	ind, conf := e.MatchIndustry("anything")

	assert.Equal(t, "Technology", ind.Name)
	assert.Equal(t, 0, conf)
}

func TestFindBestJobRoleScopedToIndustry(t *testing.T) {
	e := NewEngine(testTables())

	// "engineer" exists in Technology; scoped to Media it must still pick a
	// Media role.
	role, conf := e.FindBestJobRole("producer", "ind-media")
	assert.Equal(t, "Content Producer", role.RoleName)
	assert.Greater(t, conf, 0)

	role, _ = e.FindBestJobRole("engineer", "ind-tech")
	assert.Equal(t, "Software Engineer", role.RoleName)
}

func TestSoftMatch(t *testing.T) {
	assert.True(t, softMatch("Data Analysis", "analysis"))
	assert.True(t, softMatch("analysis", "Advanced Data Analysis Methods"))
	assert.False(t, softMatch("", "analysis"))
	assert.False(t, softMatch("analysis", ""))
	assert.False(t, softMatch("cooking", "analysis"))
}
