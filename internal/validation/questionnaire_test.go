package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrails-dev/greentrails/internal/domain"
)

func filledQuestionnaire() domain.Questionnaire {
	return domain.Questionnaire{
		ViaggioPreferito:     "montagna",
		AlloggioPreferito:    "agriturismo",
		AttivitaPreferita:    "trekking",
		PreferenzaAlimentare: "vegetariana",
		AnimaleDomestico:     "no",
		BudgetPreferito:      "medio",
		Souvenir:             "artigianato",
		StagioniPreferite:    "estate",
	}
}

func TestValidateQuestionnaireComplete(t *testing.T) {
	assert.NoError(t, ValidateQuestionnaire(filledQuestionnaire()))
}

func TestValidateQuestionnaireAllEmpty(t *testing.T) {
	err := ValidateQuestionnaire(domain.Questionnaire{})
	require.Error(t, err)

	qErr, ok := err.(*QuestionnaireError)
	require.True(t, ok)
	assert.Len(t, qErr.Missing, 8)
	assert.Contains(t, qErr.Error(), "più domande")
}

func TestValidateQuestionnaireSingleMissingNamesTheQuestion(t *testing.T) {
	tests := []struct {
		name  string
		unset func(q *domain.Questionnaire)
		label string
	}{
		{"first question", func(q *domain.Questionnaire) { q.ViaggioPreferito = "" }, "prima domanda!"},
		{"second question", func(q *domain.Questionnaire) { q.AlloggioPreferito = "" }, "seconda domanda!"},
		{"third question", func(q *domain.Questionnaire) { q.PreferenzaAlimentare = "" }, "terza domanda!"},
		{"fourth question", func(q *domain.Questionnaire) { q.AttivitaPreferita = "" }, "quarta domanda!"},
		{"fifth question", func(q *domain.Questionnaire) { q.AnimaleDomestico = "" }, "quinta domanda!"},
		{"sixth question", func(q *domain.Questionnaire) { q.BudgetPreferito = "" }, "sesta domanda!"},
		{"second to last question", func(q *domain.Questionnaire) { q.Souvenir = "" }, "penultima domanda!"},
		{"last question", func(q *domain.Questionnaire) { q.StagioniPreferite = "" }, "ultima domanda!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := filledQuestionnaire()
			tt.unset(&q)

			err := ValidateQuestionnaire(q)
			require.Error(t, err)

			qErr, ok := err.(*QuestionnaireError)
			require.True(t, ok)
			require.Len(t, qErr.Missing, 1)
			assert.Equal(t, tt.label, qErr.Missing[0])
			assert.Contains(t, qErr.Error(), tt.label)
		})
	}
}
