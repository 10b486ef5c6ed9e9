package domain

import "context"

// Hotel represents a partner hotel offered to in-person attendees.
type Hotel struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Room represents a hotel room with a guest capacity and a kind
// (e.g. "Single", "Double", "Triple").
type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	RoomKind string `json:"room_kind"`
	HotelID  int64  `json:"hotel_id"`
}

// HotelWithRooms is a hotel with its full room list.
type HotelWithRooms struct {
	Hotel
	Rooms []*Room `json:"rooms"`
}

// HotelView is a hotel formatted for listing: total guest capacity summed over
// rooms and the distinct room kinds joined into a single string.
type HotelView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Capacity  int    `json:"capacity"`
	RoomKinds string `json:"room_kinds"`
}

// HotelRepository defines the interface for hotel storage
type HotelRepository interface {
	ListWithRooms(ctx context.Context) ([]*HotelWithRooms, error)
	GetWithRooms(ctx context.Context, hotelID int64) (*HotelWithRooms, error)
}

// HotelService exposes hotel browsing to the HTTP layer. Room booking is not
// part of this service.
type HotelService interface {
	GetHotels(ctx context.Context, userID int64) ([]*HotelView, error)
	GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*HotelWithRooms, error)
}
