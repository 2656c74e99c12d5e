package hiremind

// JobDescription describes an open role. It is a value object: it has no
// identity until the remote service assigns one, and it is only used as
// matching input. Requirements and skills are built up incrementally before
// submission.
type JobDescription struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title"`
	Company      string   `json:"company,omitempty"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience,omitempty"`
	Location     string   `json:"location,omitempty"`
	Salary       string   `json:"salary,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

// AddSkill appends a skill. Duplicates are not deduplicated; the order of
// insertion is preserved.
func (jd *JobDescription) AddSkill(skill string) {
	jd.Skills = append(jd.Skills, skill)
}

// RemoveSkillAt removes the skill at the given index. Out-of-range indexes
// are a no-op.
func (jd *JobDescription) RemoveSkillAt(idx int) {
	if idx < 0 || idx >= len(jd.Skills) {
		return
	}
	jd.Skills = append(jd.Skills[:idx], jd.Skills[idx+1:]...)
}

// AddRequirement appends a requirement line.
func (jd *JobDescription) AddRequirement(req string) {
	jd.Requirements = append(jd.Requirements, req)
}

// RemoveRequirementAt removes the requirement at the given index.
// Out-of-range indexes are a no-op.
func (jd *JobDescription) RemoveRequirementAt(idx int) {
	if idx < 0 || idx >= len(jd.Requirements) {
		return
	}
	jd.Requirements = append(jd.Requirements[:idx], jd.Requirements[idx+1:]...)
}
