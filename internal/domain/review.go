package domain

import "html/template"

type Review struct {
	ID                          int64  `json:"id"`
	IDAttivita                  int64  `json:"idAttivita"`
	ValutazioneStelleEsperienza int    `json:"valutazioneStelleEsperienza"`
	Descrizione                 string `json:"descrizione"`
	Immagine                    string `json:"immagine,omitempty"`

	// DescrizioneHTML is filled by the handler after markdown rendering
	// and sanitization; never decoded from the backend.
	DescrizioneHTML template.HTML `json:"-"`
}

type Complaint struct {
	ID          int64    `json:"id"`
	IDAttivita  int64    `json:"idAttivita"`
	Descrizione string   `json:"descrizione"`
	Immagini    []string `json:"immagini,omitempty"`
}
