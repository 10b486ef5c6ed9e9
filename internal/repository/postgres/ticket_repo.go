package postgres

import (
	"context"
	"database/sql"
	"errors"

	"activitydesk/internal/domain"
)

type ticketRepository struct {
	DB *sql.DB
}

func NewTicketRepository(db *sql.DB) domain.TicketRepository {
	return &ticketRepository{
		DB: db,
	}
}

func (r *ticketRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Ticket, error) {
	query := `
		SELECT id, user_id, ticket_type_id, status
		FROM tickets
		WHERE user_id = $1
	`
	ticket := &domain.Ticket{}
	err := r.DB.QueryRowContext(ctx, query, userID).
		Scan(&ticket.ID, &ticket.UserID, &ticket.TicketTypeID, &ticket.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (r *ticketRepository) GetTypeByID(ctx context.Context, id int64) (*domain.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel
		FROM ticket_types
		WHERE id = $1
	`
	ticketType := &domain.TicketType{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&ticketType.ID, &ticketType.Name, &ticketType.Price, &ticketType.IsRemote, &ticketType.IncludesHotel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ticketType, nil
}
