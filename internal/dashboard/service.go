package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/levelup-marketers/client-dashboard-service/internal/service"
)

// Service fetches a client's rows and projects them into overview and
// section payloads. It holds no state between requests.
type Service struct {
	clients  service.ClientServicer
	projects service.ProjectServicer
	tickets  service.TicketServicer
	extras   *service.ExtrasService
	now      func() time.Time
}

func NewService(clients service.ClientServicer, projects service.ProjectServicer, tickets service.TicketServicer, extras *service.ExtrasService) *Service {
	return &Service{
		clients:  clients,
		projects: projects,
		tickets:  tickets,
		extras:   extras,
		now:      time.Now,
	}
}

// Overview fetches everything the overview cards need for one client.
func (s *Service) Overview(ctx context.Context, clientID uint64) (*Overview, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	tickets, err := s.tickets.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	_, pluginsCount, _, err := s.extras.CountByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("count plugins: %w", err)
	}
	ov := BuildOverview(client, projects, tickets, pluginsCount, s.now())
	return &ov, nil
}

// PluginView is one row of the plugins section.
type PluginView struct {
	ID         uint64 `json:"id"`
	PluginName string `json:"plugin_name"`
}

// BillingView is one row of the billing section.
type BillingView struct {
	ID            uint64 `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	CreatedAt     string `json:"created_at"`
}

// Section fetches and formats one named dashboard section. The payload
// shape depends on the section; unknown names return an error.
func (s *Service) Section(ctx context.Context, clientID uint64, section string) (any, error) {
	switch section {
	case SectionProfile:
		client, err := s.clients.GetByID(ctx, clientID)
		if err != nil {
			return nil, err
		}
		return ProfileSection(client), nil
	case SectionProjects:
		projects, err := s.projects.ListByClient(ctx, clientID)
		if err != nil {
			return nil, err
		}
		return ProjectsSection(projects), nil
	case SectionTickets:
		tickets, err := s.tickets.ListByClient(ctx, clientID)
		if err != nil {
			return nil, err
		}
		return TicketsSection(tickets), nil
	case SectionPlugins:
		plugins, err := s.extras.ListPluginsByClient(ctx, clientID)
		if err != nil {
			return nil, err
		}
		views := make([]PluginView, 0, len(plugins))
		for _, p := range plugins {
			views = append(views, PluginView{ID: p.ID, PluginName: p.PluginName})
		}
		return views, nil
	case SectionBilling:
		records, err := s.extras.ListBillingByClient(ctx, clientID)
		if err != nil {
			return nil, err
		}
		views := make([]BillingView, 0, len(records))
		for _, b := range records {
			views = append(views, BillingView{
				ID:            b.ID,
				InvoiceNumber: b.InvoiceNumber,
				CreatedAt:     b.CreatedAt.Format("1/2/2006"),
			})
		}
		return views, nil
	}
	return nil, fmt.Errorf("unknown section %q", section)
}

// knownSections for handler validation.
var knownSections = map[string]bool{
	SectionProfile:  true,
	SectionProjects: true,
	SectionTickets:  true,
	SectionPlugins:  true,
	SectionBilling:  true,
}

// ValidSection reports whether name is a loadable section.
func ValidSection(name string) bool { return knownSections[name] }
