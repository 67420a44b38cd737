package service

import (
	"context"

	"anugerah-resto/kitchen-svc/internal/domain"
)

type KitchenServiceInterface interface {
	CreateTicket(ctx context.Context, ticket *domain.Ticket) error
	GetTicket(id int) (*domain.Ticket, error)
	GetTicketByOrderID(orderID string) (*domain.Ticket, error)
	ListTickets(status string) ([]domain.Ticket, error)
	ListTicketsByChef(chefID int) ([]domain.Ticket, error)
	AssignChef(ctx context.Context, ticketID, chefID int) (*domain.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID int, status string) (*domain.Ticket, error)
	CompleteTicket(ctx context.Context, ticketID int) (*domain.Ticket, error)
	CancelTicket(ctx context.Context, ticketID int) (*domain.Ticket, error)
	UpdateEstimatedTime(ticketID, minutes int) (*domain.Ticket, error)
	CreateChef(chef *domain.Chef) error
	GetChef(id int) (*domain.Chef, error)
	ListChefs(status string) ([]domain.Chef, error)
}

type KitchenRepository interface {
	InsertTicket(ticket *domain.Ticket) error
	GetTicket(id int) (*domain.Ticket, error)
	GetTicketByOrderID(orderID string) (*domain.Ticket, error)
	// HasOpenTicket reports whether a non-terminal ticket already exists for
	// the order.
	HasOpenTicket(orderID string) (bool, error)
	ListTickets(status string) ([]domain.Ticket, error)
	ListTicketsByChef(chefID int) ([]domain.Ticket, error)
	// AssignChef moves a pending ticket to preparing and books the chef in
	// one transaction behind row locks. applied=false means the ticket was
	// not pending anymore.
	AssignChef(ticketID, chefID int) (applied bool, err error)
	// UpdateTicketStatus is a compare-and-set: it only applies when the
	// ticket still has the expected status.
	UpdateTicketStatus(ticketID int, from, to string) (applied bool, err error)
	// ReleaseChef unbooks one ticket from the chef, floored at zero.
	ReleaseChef(chefID int) error
	SetEstimatedTime(ticketID, minutes int) error
	CreateChef(chef *domain.Chef) error
	GetChef(id int) (*domain.Chef, error)
	ListChefs(status string) ([]domain.Chef, error)
}

type TicketPublisher interface {
	PublishTicket(ctx context.Context, evt domain.TicketEvent) error
}

var _ KitchenServiceInterface = (*KitchenService)(nil)
