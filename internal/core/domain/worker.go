package domain

import "time"

// WorkerGender is the declared gender of a housed worker.
type WorkerGender string

const (
	Man   WorkerGender = "man"
	Woman WorkerGender = "woman"
)

// WorkerStatus tracks whether a worker is currently housed.
type WorkerStatus string

const (
	StatusActive   WorkerStatus = "active"
	StatusInactive WorkerStatus = "inactive"
)

// ExitReason is the recorded reason a worker left the site.
type ExitReason string

const (
	ExitEndOfContract ExitReason = "fin_contrat"
	ExitResignation   ExitReason = "demission"
	ExitDismissal     ExitReason = "licenciement"
	ExitTransfer      ExitReason = "mutation"
	ExitIllness       ExitReason = "maladie"
	ExitRetirement    ExitReason = "retraite"
	ExitOther         ExitReason = "autre"
)

// Worker is a housed person. BirthYear is the source of truth for Age: Age is
// recomputed on every write that touches BirthYear and is never independently
// editable. RoomNumber is a soft link to a Room by number; nothing ties it to
// the room's OccupantRefs transactionally.
type Worker struct {
	WorkerID       string       `json:"-"`
	FullName       string       `json:"fullName"`
	NationalID     string       `json:"nationalId"`
	Phone          string       `json:"phone"`
	Gender         WorkerGender `json:"gender"`
	Age            int          `json:"age"`
	BirthYear      int          `json:"birthYear"`
	SiteID         string       `json:"siteId"`
	RoomNumber     string       `json:"roomNumber"`
	DormitoryLabel string       `json:"dormitoryLabel"`
	Status         WorkerStatus `json:"status"`
	EntryDate      time.Time    `json:"entryDate"`
	ExitDate       *time.Time   `json:"exitDate,omitempty"`
	ExitReason     ExitReason   `json:"exitReason,omitempty"`
	AuditFields
}

// CalculateAge derives a worker's age from a birth year.
func CalculateAge(birthYear int) int {
	return time.Now().Year() - birthYear
}

// IsActive reports whether the worker is currently housed.
func (w Worker) IsActive() bool {
	return w.Status == StatusActive
}
