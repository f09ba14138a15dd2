// Package refdata loads the flat-file reference tables (industries, job
// roles, skills, tasks, knowledge areas, master skills) into an immutable
// in-memory snapshot for the life of the process.
package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/yourusername/roleradar-api/internal/model"
)

// Reference table file names inside DATA_DIR.
const (
	industriesFile     = "industries.csv"
	jobRolesFile       = "job_roles.csv"
	skillsFile         = "skills.csv"
	tasksFile          = "tasks.csv"
	knowledgeAreasFile = "knowledge_areas.csv"
	masterSkillsFile   = "master_skills.csv"
)

// Tables is one loaded snapshot of all reference data. Slices are never
// mutated after Load returns.
type Tables struct {
	Industries     []model.Industry
	JobRoles       []model.JobRole
	Skills         []model.Skill
	Tasks          []model.Task
	KnowledgeAreas []model.KnowledgeAreaMap
	MasterSkills   []model.MasterSkill
}

var (
	sharedOnce sync.Once
	shared     *Tables
	sharedErr  error
)

// Shared returns the process-wide snapshot, loading it on first call.
// Reads never block after the first population.
func Shared(dir string) (*Tables, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = Load(dir)
	})
	return shared, sharedErr
}

// Load parses all six reference tables from dir. A missing or unreadable
// file is fatal; malformed rows inside a file are skipped, never fatal.
func Load(dir string) (*Tables, error) {
	t := &Tables{}

	industries, err := loadFile(dir, industriesFile)
	if err != nil {
		return nil, err
	}
	for _, row := range industries {
		if row["name"] == "" {
			continue
		}
		t.Industries = append(t.Industries, model.Industry{
			ID:          row["id"],
			Name:        row["name"],
			Description: row["description"],
		})
	}

	roles, err := loadFile(dir, jobRolesFile)
	if err != nil {
		return nil, err
	}
	for _, row := range roles {
		if row["role_name"] == "" {
			continue
		}
		t.JobRoles = append(t.JobRoles, model.JobRole{
			ID:            row["id"],
			IndustryID:    row["industry_id"],
			RoleName:      row["role_name"],
			Department:    row["department"],
			SubDepartment: row["sub_department"],
			Description:   row["description"],
		})
	}

	skills, err := loadFile(dir, skillsFile)
	if err != nil {
		return nil, err
	}
	for _, row := range skills {
		if row["skill_name"] == "" {
			continue
		}
		t.Skills = append(t.Skills, model.Skill{
			ID:         row["id"],
			JobRoleID:  row["jobrole_id"],
			SkillName:  row["skill_name"],
			SkillLevel: row["skill_level"],
			Importance: row["importance"],
		})
	}

	tasks, err := loadFile(dir, tasksFile)
	if err != nil {
		return nil, err
	}
	for _, row := range tasks {
		if row["task_name"] == "" {
			continue
		}
		t.Tasks = append(t.Tasks, model.Task{
			ID:         row["id"],
			JobRoleID:  row["jobrole_id"],
			TaskName:   row["task_name"],
			Frequency:  row["frequency"],
			Complexity: row["complexity"],
		})
	}

	areas, err := loadFile(dir, knowledgeAreasFile)
	if err != nil {
		return nil, err
	}
	for _, row := range areas {
		if row["skill_name"] == "" {
			continue
		}
		t.KnowledgeAreas = append(t.KnowledgeAreas, model.KnowledgeAreaMap{
			ID:                 row["id"],
			SkillName:          row["skill_name"],
			KnowledgeArea:      row["knowledge_area"],
			AbilityDescription: row["ability_description"],
		})
	}

	master, err := loadFile(dir, masterSkillsFile)
	if err != nil {
		return nil, err
	}
	for _, row := range master {
		if row["skill_name"] == "" {
			continue
		}
		t.MasterSkills = append(t.MasterSkills, model.MasterSkill{
			ID:               row["id"],
			SkillCategory:    row["skill_category"],
			SkillName:        row["skill_name"],
			Description:      row["description"],
			ProficiencyLevel: row["proficiency_level"],
		})
	}

	log.Info().
		Int("industries", len(t.Industries)).
		Int("jobRoles", len(t.JobRoles)).
		Int("skills", len(t.Skills)).
		Int("tasks", len(t.Tasks)).
		Int("knowledgeAreas", len(t.KnowledgeAreas)).
		Int("masterSkills", len(t.MasterSkills)).
		Msg("Reference data loaded")

	return t, nil
}

// ── Lookups ────────────────────────────────────────────

// IndustryByID returns the industry with the given id.
func (t *Tables) IndustryByID(id string) (model.Industry, bool) {
	for _, ind := range t.Industries {
		if ind.ID == id {
			return ind, true
		}
	}
	return model.Industry{}, false
}

// RolesForIndustry returns every job role belonging to the industry.
// May be empty — some industries in the dataset carry no roles.
func (t *Tables) RolesForIndustry(industryID string) []model.JobRole {
	roles := []model.JobRole{}
	for _, r := range t.JobRoles {
		if r.IndustryID == industryID {
			roles = append(roles, r)
		}
	}
	return roles
}

// SkillsForRole returns every skill row tied to the job role.
func (t *Tables) SkillsForRole(jobRoleID string) []model.Skill {
	skills := []model.Skill{}
	for _, s := range t.Skills {
		if s.JobRoleID == jobRoleID {
			skills = append(skills, s)
		}
	}
	return skills
}

// TasksForRole returns every task row tied to the job role.
func (t *Tables) TasksForRole(jobRoleID string) []model.Task {
	tasks := []model.Task{}
	for _, task := range t.Tasks {
		if task.JobRoleID == jobRoleID {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// ── CSV parsing ────────────────────────────────────────

func loadFile(dir, name string) ([]map[string]string, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("opening reference table %s: %w", name, err)
	}
	defer f.Close()
	return parseTable(f), nil
}

// parseTable reads delimited text: first row is the header, each later row is
// zipped with the header into a field map. Short rows are padded with empty
// strings, rows where every field is blank are dropped, and malformed lines
// are skipped rather than aborting the load.
func parseTable(r io.Reader) []map[string]string {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.LazyQuotes = true

	var header []string
	var rows []map[string]string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed line; keep going with the rest of the file.
			log.Debug().Err(err).Msg("Skipping malformed reference row")
			continue
		}

		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}

		if header == nil {
			header = record
			continue
		}

		row := make(map[string]string, len(header))
		empty := true
		for i, key := range header {
			val := ""
			if i < len(record) {
				val = record[i]
			}
			if val != "" {
				empty = false
			}
			row[key] = val
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows
}
