package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseStatus_AcceptsAllPipelineStages(t *testing.T) {

	for _, value := range []string{"Triagem", "Entrevista", "Aprovado", "Reprovado"} {
		status, err := ParseStatus(value)
		assert.NoError(t, err)
		assert.Equal(t, CandidateStatus(value), status)
	}
}

func Test_ParseStatus_RejectsUnknownValue(t *testing.T) {

	_, err := ParseStatus("Contratado")
	assert.Error(t, err)
}

func Test_CandidateFromWhatsAppRow_NormalizesStringJobReference(t *testing.T) {

	row := json.RawMessage(`{"id": 5, "nome": "Maria", "telefone": "11999990000",
		"vaga": "Desenvolvedor Backend", "usuario": [{"id": 42, "value": "Ana"}]}`)

	candidate, err := CandidateFromWhatsAppRow(row)
	assert.NoError(t, err)

	assert.Equal(t, 5, candidate.ID)
	assert.Equal(t, []TableRef{{ID: 0, Value: "Desenvolvedor Backend"}}, candidate.Jobs)
	assert.True(t, candidate.OwnedBy(42))
}

func Test_CandidateFromWhatsAppRow_KeepsStructuredJobReference(t *testing.T) {

	row := json.RawMessage(`{"id": 6, "nome": "João", "vaga": [{"id": 9, "value": "Analista"}]}`)

	candidate, err := CandidateFromWhatsAppRow(row)
	assert.NoError(t, err)
	assert.Equal(t, []TableRef{{ID: 9, Value: "Analista"}}, candidate.Jobs)
}

func Test_CandidateFromWhatsAppRow_ToleratesMissingJobReference(t *testing.T) {

	row := json.RawMessage(`{"id": 7, "nome": "Pedro"}`)

	candidate, err := CandidateFromWhatsAppRow(row)
	assert.NoError(t, err)
	assert.Empty(t, candidate.Jobs)
}

func Test_UserProfile_PublicStripsCredentials(t *testing.T) {

	user := UserProfile{ID: 1, Name: "Ana", PasswordHash: "hash", GoogleRefreshToken: "rft-1"}

	public := user.Public()
	assert.Empty(t, public.PasswordHash)
	assert.Empty(t, public.GoogleRefreshToken)
	assert.Equal(t, "Ana", public.Name)
}
