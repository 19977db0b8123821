package domain

// RoomGender is the gender assignment of a dormitory room.
type RoomGender string

const (
	RoomMen   RoomGender = "men"
	RoomWomen RoomGender = "women"
)

// Room is a dormitory room owned by a Site. SiteID is immutable after
// creation. OccupantRefs holds worker ids; its length should
// equal CurrentOccupancy but the two are only eventually consistent, nothing
// enforces the pairing transactionally.
type Room struct {
	RoomID           string     `json:"-"`
	Number           string     `json:"number"`
	SiteID           string     `json:"siteId"`
	Gender           RoomGender `json:"gender"`
	RoomCapacity     int        `json:"roomCapacity"`
	CurrentOccupancy int        `json:"currentOccupancy"`
	OccupantRefs     []string   `json:"occupantRefs"`
	AuditFields
}

// AvailablePlaces returns the number of free places in the room.
func (r Room) AvailablePlaces() int {
	return r.RoomCapacity - r.CurrentOccupancy
}

// IsFull reports whether the room has no free places left.
func (r Room) IsFull() bool {
	return r.CurrentOccupancy >= r.RoomCapacity
}

// DormitoryLabel returns the display label of the dormitory wing the room
// belongs to. The labels are the ones printed on site signage.
func (r Room) DormitoryLabel() string {
	if r.Gender == RoomWomen {
		return "Dortoir Femmes"
	}
	return "Dortoir Hommes"
}

// Houses reports whether the room accepts workers of the given gender.
func (r Room) Houses(g WorkerGender) bool {
	if g == Woman {
		return r.Gender == RoomWomen
	}
	return r.Gender == RoomMen
}
