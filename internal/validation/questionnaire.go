package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/greentrails-dev/greentrails/internal/domain"
)

// questionLabels maps each questionnaire field to the label the dialog
// uses when that answer is the only one missing.
var questionLabels = map[string]string{
	"ViaggioPreferito":     "prima domanda!",
	"AlloggioPreferito":    "seconda domanda!",
	"PreferenzaAlimentare": "terza domanda!",
	"AttivitaPreferita":    "quarta domanda!",
	"AnimaleDomestico":     "quinta domanda!",
	"BudgetPreferito":      "sesta domanda!",
	"Souvenir":             "penultima domanda!",
	"StagioniPreferite":    "ultima domanda!",
}

// QuestionnaireError reports the unanswered questions. Its message is what
// the feedback dialog shows; when exactly one answer is missing the message
// names that question.
type QuestionnaireError struct {
	Missing []string
}

func (e *QuestionnaireError) Error() string {
	if len(e.Missing) == 1 {
		return fmt.Sprintf("Il questionario non è stato salvato con successo perché il visitatore non ha indicato alcuna preferenza alla %s", e.Missing[0])
	}
	return "Il questionario non è stato salvato con successo, perché non è stata indicata alcuna preferenza a più domande!"
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateQuestionnaire checks the eight required answers. It runs before
// any network call; on error the submission is never issued.
func ValidateQuestionnaire(q domain.Questionnaire) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if label, known := questionLabels[fieldErr.Field()]; known {
			missing = append(missing, label)
		}
	}
	return &QuestionnaireError{Missing: missing}
}
