package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"anugerah-resto/kitchen-svc/internal/domain"
)

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrChefNotFound      = errors.New("chef not found")
	ErrDuplicateTicket   = errors.New("ticket already exists for this order")
	ErrInvalidTransition = errors.New("invalid ticket status transition")
)

type KitchenService struct {
	repository KitchenRepository
	publisher  TicketPublisher
}

func NewKitchenService(repository KitchenRepository, publisher TicketPublisher) *KitchenService {
	return &KitchenService{
		repository: repository,
		publisher:  publisher,
	}
}

func (s *KitchenService) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	if ticket.OrderID == "" {
		return fmt.Errorf("order_id is required")
	}

	open, err := s.repository.HasOpenTicket(ticket.OrderID)
	if err != nil {
		return fmt.Errorf("failed to check existing tickets: %w", err)
	}
	if open {
		return fmt.Errorf("%w: %s", ErrDuplicateTicket, ticket.OrderID)
	}

	ticket.Status = domain.TicketPending
	if err := s.repository.InsertTicket(ticket); err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	s.publish(ctx, "ticket_created", ticket)
	return nil
}

// AssignChef is the single entry point that books a chef onto a ticket.
// The pending check, the status move and the chef counter update happen in
// one repository transaction, so two assignments racing for the same ticket
// cannot both succeed.
func (s *KitchenService) AssignChef(ctx context.Context, ticketID, chefID int) (*domain.Ticket, error) {
	if _, err := s.getChef(chefID); err != nil {
		return nil, err
	}
	if _, err := s.GetTicket(ticketID); err != nil {
		return nil, err
	}

	applied, err := s.repository.AssignChef(ticketID, chefID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign chef: %w", err)
	}
	if !applied {
		return nil, fmt.Errorf("%w: ticket %d is not pending", ErrInvalidTransition, ticketID)
	}

	ticket, err := s.GetTicket(ticketID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "chef_assigned", ticket)
	return ticket, nil
}

// UpdateStatus validates the move against the transition table before
// applying it. Terminal tickets accept nothing. Closing a ticket releases
// its chef.
func (s *KitchenService) UpdateStatus(ctx context.Context, ticketID int, status string) (*domain.Ticket, error) {
	ticket, err := s.GetTicket(ticketID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(ticket.Status, status) {
		if domain.IsTerminal(ticket.Status) {
			return nil, fmt.Errorf("%w: ticket %d is already %s", ErrInvalidTransition, ticketID, ticket.Status)
		}
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ticket.Status, status)
	}

	applied, err := s.repository.UpdateTicketStatus(ticketID, ticket.Status, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}
	if !applied {
		// Someone else moved the ticket between our read and the write.
		return nil, fmt.Errorf("%w: ticket %d changed concurrently", ErrInvalidTransition, ticketID)
	}

	if domain.IsTerminal(status) && ticket.ChefID != 0 {
		if err := s.repository.ReleaseChef(ticket.ChefID); err != nil {
			log.Printf("Warning: failed to release chef %d for ticket %d: %v", ticket.ChefID, ticketID, err)
		}
	}

	updated, err := s.GetTicket(ticketID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "ticket_"+status, updated)
	return updated, nil
}

func (s *KitchenService) CompleteTicket(ctx context.Context, ticketID int) (*domain.Ticket, error) {
	return s.UpdateStatus(ctx, ticketID, domain.TicketCompleted)
}

func (s *KitchenService) CancelTicket(ctx context.Context, ticketID int) (*domain.Ticket, error) {
	return s.UpdateStatus(ctx, ticketID, domain.TicketCancelled)
}

func (s *KitchenService) UpdateEstimatedTime(ticketID, minutes int) (*domain.Ticket, error) {
	if minutes <= 0 {
		return nil, fmt.Errorf("estimated minutes must be positive, got %d", minutes)
	}
	if _, err := s.GetTicket(ticketID); err != nil {
		return nil, err
	}
	if err := s.repository.SetEstimatedTime(ticketID, minutes); err != nil {
		return nil, fmt.Errorf("failed to set estimated time: %w", err)
	}
	return s.GetTicket(ticketID)
}

func (s *KitchenService) GetTicket(id int) (*domain.Ticket, error) {
	ticket, err := s.repository.GetTicket(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	return ticket, err
}

func (s *KitchenService) GetTicketByOrderID(orderID string) (*domain.Ticket, error) {
	ticket, err := s.repository.GetTicketByOrderID(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	return ticket, err
}

func (s *KitchenService) ListTickets(status string) ([]domain.Ticket, error) {
	return s.repository.ListTickets(status)
}

func (s *KitchenService) ListTicketsByChef(chefID int) ([]domain.Ticket, error) {
	if _, err := s.getChef(chefID); err != nil {
		return nil, err
	}
	return s.repository.ListTicketsByChef(chefID)
}

func (s *KitchenService) CreateChef(chef *domain.Chef) error {
	if chef.Status == "" {
		chef.Status = domain.ChefAvailable
	}
	return s.repository.CreateChef(chef)
}

func (s *KitchenService) GetChef(id int) (*domain.Chef, error) {
	return s.getChef(id)
}

func (s *KitchenService) ListChefs(status string) ([]domain.Chef, error) {
	return s.repository.ListChefs(status)
}

func (s *KitchenService) getChef(id int) (*domain.Chef, error) {
	chef, err := s.repository.GetChef(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChefNotFound
	}
	return chef, err
}

func (s *KitchenService) publish(ctx context.Context, eventType string, ticket *domain.Ticket) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishTicket(ctx, domain.TicketEvent{
		Type:      eventType,
		TicketID:  ticket.ID,
		OrderID:   ticket.OrderID,
		Status:    ticket.Status,
		ChefID:    ticket.ChefID,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s for ticket %d: %v", eventType, ticket.ID, err)
	}
}
