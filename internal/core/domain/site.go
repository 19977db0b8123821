package domain

// Site represents a housing site ("ferme"): a farm with dormitory rooms for
// seasonal workers.
//
// TotalRooms and TotalCapacity are cache fields, not sources of truth: the
// truth is the set of Room documents whose SiteID matches. They may go stale
// between a room mutation and the next recalculation, and nothing may rely on
// them being instantaneously correct.
type Site struct {
	SiteID        string   `json:"-"`
	Name          string   `json:"name"`
	TotalRooms    int      `json:"totalRooms"`
	TotalCapacity int      `json:"totalCapacity"`
	AdminIDs      []string `json:"adminIds"`
	AuditFields
}

// RoomPlan describes the optional bulk room creation performed when a site is
// created: MenCount rooms numbered [MenStart, MenStart+MenCount) and
// WomenCount rooms numbered [WomenStart, WomenStart+WomenCount).
type RoomPlan struct {
	AutoCreateRooms bool
	MenCount        int
	MenCapacity     int
	MenStart        int
	WomenCount      int
	WomenCapacity   int
	WomenStart      int
}

// DefaultRoomPlan returns the standard dormitory layout: ten men's rooms
// from 101 and ten women's rooms from 201, all with four places.
func DefaultRoomPlan() RoomPlan {
	return RoomPlan{
		MenCount:      10,
		MenCapacity:   4,
		MenStart:      101,
		WomenCount:    10,
		WomenCapacity: 4,
		WomenStart:    201,
	}
}

// PlannedRooms returns the number of rooms the plan will create.
func (p RoomPlan) PlannedRooms() int {
	return p.MenCount + p.WomenCount
}

// PlannedCapacity returns the total capacity of the planned rooms. It is
// written to the site at creation time instead of being recomputed by a scan,
// which would race the still-in-flight room creations.
func (p RoomPlan) PlannedCapacity() int {
	return p.MenCount*p.MenCapacity + p.WomenCount*p.WomenCapacity
}
