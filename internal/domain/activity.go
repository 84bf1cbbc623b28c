package domain

// Activity is a lodging or tourist activity as returned by the backend.
// The access layer treats payloads opaquely; these types exist only so the
// page handlers can decode what they render.
type Activity struct {
	ID          int64   `json:"id"`
	Nome        string  `json:"nome"`
	Descrizione string  `json:"descrizione"`
	Indirizzo   string  `json:"indirizzo"`
	Latitudine  float64 `json:"latitudine"`
	Longitudine float64 `json:"longitudine"`
	Prezzo      float64 `json:"prezzo"`
	IsAlloggio  bool    `json:"isAlloggio"`
	Media       string  `json:"media"`

	Categorie []Category `json:"categorie,omitempty"`
	Valori    *EcoValues `json:"valoriEcosostenibilita,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type Room struct {
	ID            int64   `json:"id"`
	IDAlloggio    int64   `json:"idAlloggio"`
	TipoCamera    string  `json:"tipoCamera"`
	Descrizione   string  `json:"descrizione"`
	Disponibilita int     `json:"disponibilita"`
	Capienza      int     `json:"capienza"`
	Prezzo        float64 `json:"prezzo"`
}
