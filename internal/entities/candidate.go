package entities

import (
	"encoding/json"
	"fmt"
)

// CandidateStatus is the closed set of pipeline stages. Any status is
// reachable from any other; values outside the set are rejected before
// they reach storage.
type CandidateStatus string

const (
	StatusTriagem    CandidateStatus = "Triagem"
	StatusEntrevista CandidateStatus = "Entrevista"
	StatusAprovado   CandidateStatus = "Aprovado"
	StatusReprovado  CandidateStatus = "Reprovado"
)

func AllStatuses() []CandidateStatus {
	return []CandidateStatus{StatusTriagem, StatusEntrevista, StatusAprovado, StatusReprovado}
}

func ParseStatus(value string) (CandidateStatus, error) {
	for _, status := range AllStatuses() {
		if string(status) == value {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown candidate status %q", value)
}

// StatusRef is the single-select shape Baserow returns for the status field.
type StatusRef struct {
	ID    int             `json:"id"`
	Value CandidateStatus `json:"value"`
}

type Candidate struct {
	ID         int        `json:"id"`
	Name       string     `json:"nome"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"telefone,omitempty"`
	Score      *int       `json:"score"`
	AISummary  string     `json:"resumo_ia,omitempty"`
	ScreenedAt string     `json:"data_triagem,omitempty"`
	Jobs       []TableRef `json:"vaga"`
	Users      []TableRef `json:"usuario"`
	Resume     []FileRef  `json:"curriculo,omitempty"`
	Status     *StatusRef `json:"status,omitempty"`
}

func (c Candidate) OwnedBy(userID int) bool {
	return RefersTo(c.Users, userID)
}

func (c Candidate) AppliedTo(jobID int) bool {
	return RefersTo(c.Jobs, jobID)
}

// whatsappCandidate is the secondary-source row shape: identical to
// Candidate except that "vaga" is a bare string instead of a link-row list.
type whatsappCandidate struct {
	Candidate
	Jobs json.RawMessage `json:"vaga"`
}

// CandidateFromWhatsAppRow adapts a secondary-source row into the canonical
// Candidate shape. A string job reference becomes a single TableRef with a
// zero id, matching how primary-source rows are consumed downstream.
func CandidateFromWhatsAppRow(row json.RawMessage) (Candidate, error) {

	var raw whatsappCandidate
	if err := json.Unmarshal(row, &raw); err != nil {
		return Candidate{}, fmt.Errorf("error decoding whatsapp candidate: %w", err)
	}

	candidate := raw.Candidate

	if len(raw.Jobs) == 0 || string(raw.Jobs) == "null" {
		candidate.Jobs = nil
		return candidate, nil
	}

	var jobName string
	if err := json.Unmarshal(raw.Jobs, &jobName); err == nil {
		if jobName != "" {
			candidate.Jobs = []TableRef{{ID: 0, Value: jobName}}
		}
		return candidate, nil
	}

	var jobRefs []TableRef
	if err := json.Unmarshal(raw.Jobs, &jobRefs); err != nil {
		return Candidate{}, fmt.Errorf("error decoding whatsapp candidate job reference: %w", err)
	}

	candidate.Jobs = jobRefs
	return candidate, nil
}
