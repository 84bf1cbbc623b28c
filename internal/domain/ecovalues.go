package domain

// EcoValues is the set of boolean eco-sustainability flags attached to an
// activity or to a visitor's preferences.
type EcoValues struct {
	ID                    int64 `json:"id,omitempty"`
	PoliticheAntispreco   bool  `json:"politicheAntispreco"`
	ProdottiLocali        bool  `json:"prodottiLocali"`
	EnergiaVerde          bool  `json:"energiaVerde"`
	RaccoltaDifferenziata bool  `json:"raccoltaDifferenziata"`
	LimiteEmissioneCO2    bool  `json:"limiteEmissioneCO2"`
	ContattoConNatura     bool  `json:"contattoConNatura"`
}
