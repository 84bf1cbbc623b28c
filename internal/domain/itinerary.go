package domain

// Itinerary is a visitor-owned collection of bookings.
type Itinerary struct {
	ID          int64             `json:"id"`
	Alloggi     []LodgingBooking  `json:"prenotazioniAlloggio,omitempty"`
	Attivita    []ActivityBooking `json:"prenotazioniAttivita,omitempty"`
	TotaleStima float64           `json:"totaleStima,omitempty"`
}

type LodgingBooking struct {
	ID         int64  `json:"id"`
	IDCamera   int64  `json:"idCamera"`
	NumAdulti  int    `json:"numAdulti"`
	NumBambini int    `json:"numBambini"`
	NumCamere  int    `json:"numCamere"`
	DataInizio string `json:"dataInizio"`
	DataFine   string `json:"dataFine"`
	Confermata bool   `json:"confermata"`
}

type ActivityBooking struct {
	ID         int64  `json:"id"`
	IDAttivita int64  `json:"idAttivita"`
	NumAdulti  int    `json:"numAdulti"`
	NumBambini int    `json:"numBambini"`
	DataInizio string `json:"dataInizio"`
	DataFine   string `json:"dataFine"`
	Confermata bool   `json:"confermata"`
}
