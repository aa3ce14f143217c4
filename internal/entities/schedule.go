package entities

// ScheduleEvent mirrors a row of the interviews table. The table's field
// names are accented; the JSON tags carry the exact wire contract.
type ScheduleEvent struct {
	ID        int        `json:"id"`
	Title     string     `json:"Título"`
	Start     string     `json:"Início"`
	End       string     `json:"Fim"`
	Details   string     `json:"Detalhes,omitempty"`
	Candidate []TableRef `json:"Candidato,omitempty"`
	Job       []TableRef `json:"Vaga,omitempty"`
}
