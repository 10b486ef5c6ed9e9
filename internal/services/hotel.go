package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"activitydesk/internal/domain"
)

type hotelService struct {
	ticketRepo domain.TicketRepository
	hotelRepo  domain.HotelRepository
}

// NewHotelService creates a HotelService with the given repositories.
func NewHotelService(ticketRepo domain.TicketRepository, hotelRepo domain.HotelRepository) domain.HotelService {
	return &hotelService{
		ticketRepo: ticketRepo,
		hotelRepo:  hotelRepo,
	}
}

func (s *hotelService) GetHotels(ctx context.Context, userID int64) ([]*domain.HotelView, error) {
	if err := s.checkHotelAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.ListWithRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	if len(hotels) == 0 {
		return nil, domain.ErrNotFound
	}

	views := make([]*domain.HotelView, 0, len(hotels))
	for _, h := range hotels {
		capacity := 0
		seen := make(map[string]struct{})
		var kinds []string
		for _, room := range h.Rooms {
			capacity += room.Capacity
			if _, ok := seen[room.RoomKind]; !ok {
				seen[room.RoomKind] = struct{}{}
				kinds = append(kinds, room.RoomKind)
			}
		}
		views = append(views, &domain.HotelView{
			ID:        h.ID,
			Name:      h.Name,
			Image:     h.Image,
			Capacity:  capacity,
			RoomKinds: strings.Join(kinds, ", "),
		})
	}
	return views, nil
}

func (s *hotelService) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*domain.HotelWithRooms, error) {
	if err := s.checkHotelAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.GetWithRooms(ctx, hotelID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	if len(hotel.Rooms) == 0 {
		return nil, domain.ErrNotFound
	}
	return hotel, nil
}

// checkHotelAccess applies the same entitlement rule as activities: paid
// in-person ticket that includes hotel.
func (s *hotelService) checkHotelAccess(ctx context.Context, userID int64) error {
	ticket, err := s.ticketRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get ticket: %w", err)
	}
	if ticket.Status != domain.TicketStatusPaid {
		return domain.ErrForbidden
	}
	ticketType, err := s.ticketRepo.GetTypeByID(ctx, ticket.TicketTypeID)
	if err != nil {
		return fmt.Errorf("get ticket type: %w", err)
	}
	if ticketType.IsRemote || !ticketType.IncludesHotel {
		return domain.ErrForbidden
	}
	return nil
}
