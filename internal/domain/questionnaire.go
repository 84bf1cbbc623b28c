package domain

// Questionnaire holds the eight preference answers a visitor submits.
// All answers are required; validation happens before any network call.
type Questionnaire struct {
	ViaggioPreferito     string `validate:"required"`
	AlloggioPreferito    string `validate:"required"`
	AttivitaPreferita    string `validate:"required"`
	PreferenzaAlimentare string `validate:"required"`
	AnimaleDomestico     string `validate:"required"`
	BudgetPreferito      string `validate:"required"`
	Souvenir             string `validate:"required"`
	StagioniPreferite    string `validate:"required"`
}
