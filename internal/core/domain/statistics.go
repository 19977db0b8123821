package domain

// HousingStats is the dashboard aggregate computed over the current worker and
// room snapshots. All counts consider active workers only.
type HousingStats struct {
	TotalWorkers    int `json:"totalWorkers"`
	MaleWorkers     int `json:"maleWorkers"`
	FemaleWorkers   int `json:"femaleWorkers"`
	TotalRooms      int `json:"totalRooms"`
	OccupiedRooms   int `json:"occupiedRooms"`
	AvailableRooms  int `json:"availableRooms"`
	TotalCapacity   int `json:"totalCapacity"`
	OccupiedPlaces  int `json:"occupiedPlaces"`
	AvailablePlaces int `json:"availablePlaces"`
	OccupancyRate   int `json:"occupancyRate"`
	AverageAge      int `json:"averageAge"`
	AverageAgeMen   int `json:"averageAgeMen"`
	AverageAgeWomen int `json:"averageAgeWomen"`
	RecentArrivals  int `json:"recentArrivals"`
}

// SiteStats is the per-site row of the superadmin comparison table.
type SiteStats struct {
	SiteID        string `json:"siteId"`
	SiteName      string `json:"siteName"`
	Workers       int    `json:"workers"`
	Rooms         int    `json:"rooms"`
	OccupiedRooms int    `json:"occupiedRooms"`
	OccupancyRate int    `json:"occupancyRate"`
}

// AgeDistribution buckets active workers by age band.
type AgeDistribution struct {
	From18To25 int `json:"18-25"`
	From26To35 int `json:"26-35"`
	From36To45 int `json:"36-45"`
	Above46    int `json:"46+"`
}

// IntegrityReport is the output of the housing integrity checker: the soft
// link between Room.OccupantRefs and Worker.RoomNumber is never reconciled
// automatically, this report only surfaces the discrepancies.
type IntegrityReport struct {
	CheckedRooms   int              `json:"checkedRooms"`
	CheckedWorkers int              `json:"checkedWorkers"`
	Issues         []IntegrityIssue `json:"issues"`
}

// IntegrityIssueKind classifies a housing integrity discrepancy.
type IntegrityIssueKind string

const (
	// IssueOccupancyMismatch: CurrentOccupancy != len(OccupantRefs).
	IssueOccupancyMismatch IntegrityIssueKind = "occupancy_mismatch"
	// IssueUnknownOccupant: OccupantRefs names a national id with no matching worker.
	IssueUnknownOccupant IntegrityIssueKind = "unknown_occupant"
	// IssueRoomMismatch: a worker's RoomNumber points at a room that does not
	// list the worker, or at no room at all.
	IssueRoomMismatch IntegrityIssueKind = "room_mismatch"
)

// IntegrityIssue is a single discrepancy found by the checker.
type IntegrityIssue struct {
	Kind       IntegrityIssueKind `json:"kind"`
	SiteID     string             `json:"siteId"`
	RoomNumber string             `json:"roomNumber,omitempty"`
	WorkerRef  string             `json:"workerRef,omitempty"`
	Detail     string             `json:"detail"`
}
