package domain

import "context"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// Ticket represents a user's event ticket.
type Ticket struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"user_id"`
	TicketTypeID int64        `json:"ticket_type_id"`
	Status       TicketStatus `json:"status"`
}

// TicketType carries the attributes that decide activity eligibility.
type TicketType struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	IsRemote      bool   `json:"is_remote"`
	IncludesHotel bool   `json:"includes_hotel"`
}

// TicketRepository is the entitlement oracle: it resolves a user's ticket and
// ticket type. The services only read from it.
type TicketRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*Ticket, error)
	GetTypeByID(ctx context.Context, id int64) (*TicketType, error)
}
