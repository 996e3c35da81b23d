package model

import (
	"strconv"
	"strings"
)

// Maintenance-event sheet column names, matching the published form
// responses header verbatim. The form never gained the event-type column
// the dashboard was designed around; the card-type column stands in for it.
const (
	ColEventTimestamp = "Marca temporal"
	ColEventEmail     = "Dirección de correo electrónico"
	ColCardType       = "Tipo de tarjeta"
	ColCardNumber     = "Nro de tarjeta o aviso"
	ColLocation       = "Ubicación"
	ColAuthor         = "Autor"
	ColDetectionDate  = "Fecha detección anomalía"
	ColDetectionTime  = "Hora detección anomalía"
	ColAnomaly        = "Descripción de anomalía"
	ColProposedAction = "Acción propuesta"
	ColEquipmentTag   = "Tag del equipo"
	ColEventLog       = "Registro de eventos"
	ColSolutionLog    = "Registro de soluciones"
)

// EventMediaSlots is the number of before/after media references per event.
const EventMediaSlots = 3

// EventRecordCol returns the column name of the i-th "before" media slot
// (1-based).
func EventRecordCol(i int) string {
	return "Registro " + strconv.Itoa(i)
}

// EventSolutionCol returns the column name of the i-th "after" media slot
// (1-based).
func EventSolutionCol(i int) string {
	return "Solución " + strconv.Itoa(i)
}

// Event is the typed view of one maintenance-event record. The detection
// date is parsed once; DetectedAt.Valid is false when the cell does not
// parse, and callers decide how to treat such records instead of defaulting
// to the current instant.
type Event struct {
	Row Record

	CardType       string
	CardNumber     string
	Location       string
	Author         string
	Anomaly        string
	ProposedAction string
	EquipmentTag   string
	EventLog       string
	SolutionLog    string
	DetectionDate  string
	DetectionTime  string

	DetectedAt    Date
	RecordLinks   [EventMediaSlots]string
	SolutionLinks [EventMediaSlots]string

	// SearchText is the lower-cased concatenation of every cell in header
	// order, computed once for free-text filtering.
	SearchText string
}

// NewEvent builds the typed view of a record.
func NewEvent(rec Record) Event {
	ev := Event{
		Row:            rec,
		CardType:       rec[ColCardType],
		CardNumber:     rec[ColCardNumber],
		Location:       rec[ColLocation],
		Author:         rec[ColAuthor],
		Anomaly:        rec[ColAnomaly],
		ProposedAction: rec[ColProposedAction],
		EquipmentTag:   rec[ColEquipmentTag],
		EventLog:       rec[ColEventLog],
		SolutionLog:    rec[ColSolutionLog],
		DetectionDate:  rec[ColDetectionDate],
		DetectionTime:  rec[ColDetectionTime],
		DetectedAt:     ParseDMY(rec[ColDetectionDate]),
	}
	for i := 1; i <= EventMediaSlots; i++ {
		ev.RecordLinks[i-1] = rec[EventRecordCol(i)]
		ev.SolutionLinks[i-1] = rec[EventSolutionCol(i)]
	}
	return ev
}

// Events builds typed views for every record of a table.
func Events(t Table) []Event {
	rows := make([]Event, len(t.Records))
	for i, rec := range t.Records {
		rows[i] = NewEvent(rec)
		rows[i].SearchText = strings.ToLower(rec.JoinedText(t.Header))
	}
	return rows
}
