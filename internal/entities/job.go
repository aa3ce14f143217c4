package entities

type JobPosting struct {
	ID             int        `json:"id"`
	Title          string     `json:"titulo"`
	Description    string     `json:"descricao"`
	RequiredSkills string     `json:"requisitos_obrigatorios"`
	DesiredSkills  string     `json:"requisitos_desejaveis"`
	CreatedAt      string     `json:"criado_em,omitempty"`
	Users          []TableRef `json:"usuario"`
}

// OwnedBy reports whether the posting's owner list contains userID.
// Ownership filtering is the only access control in the system.
func (j JobPosting) OwnedBy(userID int) bool {
	return RefersTo(j.Users, userID)
}
