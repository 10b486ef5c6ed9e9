package postgres

import (
	"context"
	"database/sql"

	"activitydesk/internal/domain"
)

type hotelRepository struct {
	DB *sql.DB
}

func NewHotelRepository(db *sql.DB) domain.HotelRepository {
	return &hotelRepository{
		DB: db,
	}
}

func (r *hotelRepository) ListWithRooms(ctx context.Context) ([]*domain.HotelWithRooms, error) {
	query := `
		SELECT h.id, h.name, h.image,
			r.id, r.name, r.capacity, r.room_kind, r.hotel_id
		FROM hotels h
		LEFT JOIN rooms r ON r.hotel_id = h.id
		ORDER BY h.id, r.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []*domain.HotelWithRooms
	byID := make(map[int64]*domain.HotelWithRooms)
	for rows.Next() {
		var (
			hotelID      int64
			hotelName    string
			hotelImage   string
			roomID       sql.NullInt64
			roomName     sql.NullString
			roomCapacity sql.NullInt64
			roomKind     sql.NullString
			roomHotelID  sql.NullInt64
		)
		if err := rows.Scan(&hotelID, &hotelName, &hotelImage, &roomID, &roomName, &roomCapacity, &roomKind, &roomHotelID); err != nil {
			return nil, err
		}

		hotel, ok := byID[hotelID]
		if !ok {
			hotel = &domain.HotelWithRooms{
				Hotel: domain.Hotel{
					ID:    hotelID,
					Name:  hotelName,
					Image: hotelImage,
				},
				Rooms: []*domain.Room{},
			}
			byID[hotelID] = hotel
			hotels = append(hotels, hotel)
		}

		if roomID.Valid {
			hotel.Rooms = append(hotel.Rooms, &domain.Room{
				ID:       roomID.Int64,
				Name:     roomName.String,
				Capacity: int(roomCapacity.Int64),
				RoomKind: roomKind.String,
				HotelID:  roomHotelID.Int64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if hotels == nil {
		hotels = []*domain.HotelWithRooms{}
	}
	return hotels, nil
}

func (r *hotelRepository) GetWithRooms(ctx context.Context, hotelID int64) (*domain.HotelWithRooms, error) {
	query := `
		SELECT h.id, h.name, h.image,
			r.id, r.name, r.capacity, r.room_kind, r.hotel_id
		FROM hotels h
		LEFT JOIN rooms r ON r.hotel_id = h.id
		WHERE h.id = $1
		ORDER BY r.id
	`
	rows, err := r.DB.QueryContext(ctx, query, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotel *domain.HotelWithRooms
	for rows.Next() {
		var (
			id           int64
			name         string
			image        string
			roomID       sql.NullInt64
			roomName     sql.NullString
			roomCapacity sql.NullInt64
			roomKind     sql.NullString
			roomHotelID  sql.NullInt64
		)
		if err := rows.Scan(&id, &name, &image, &roomID, &roomName, &roomCapacity, &roomKind, &roomHotelID); err != nil {
			return nil, err
		}
		if hotel == nil {
			hotel = &domain.HotelWithRooms{
				Hotel: domain.Hotel{ID: id, Name: name, Image: image},
				Rooms: []*domain.Room{},
			}
		}
		if roomID.Valid {
			hotel.Rooms = append(hotel.Rooms, &domain.Room{
				ID:       roomID.Int64,
				Name:     roomName.String,
				Capacity: int(roomCapacity.Int64),
				RoomKind: roomKind.String,
				HotelID:  roomHotelID.Int64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, domain.ErrNotFound
	}
	return hotel, nil
}
