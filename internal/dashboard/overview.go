// Package dashboard aggregates record rows into the overview cards and
// formatted detail sections the front end renders. Everything here is a
// pure projection of already-fetched rows; fetching lives in service.go.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/levelup-marketers/client-dashboard-service/internal/alert"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"github.com/levelup-marketers/client-dashboard-service/internal/notes"
)

// Section identifiers, also the URL path segments.
const (
	SectionOverview = "overview"
	SectionProfile  = "profile"
	SectionProjects = "projects"
	SectionTickets  = "tickets"
	SectionPlugins  = "plugins"
	SectionBilling  = "billing"
)

// Card is one overview card with its aggregated status.
type Card struct {
	Section string           `json:"section"`
	Title   string           `json:"title"`
	Status  alert.CardStatus `json:"status"`
}

// Overview is the full overview section payload.
type Overview struct {
	ClientFor       string `json:"client_for,omitempty"`
	ProjectsCount   int64  `json:"projects_count"`
	PluginsCount    int64  `json:"plugins_count"`
	TicketsCount    int64  `json:"tickets_count"`
	ProfileComplete bool   `json:"profile_complete"`
	Cards           []Card `json:"cards"`
}

// profileRequiredFields drive the completeness check on the profile card.
var profileRequiredFields = []func(*model.Client) string{
	func(c *model.Client) string { return c.FirstName },
	func(c *model.Client) string { return c.LastName },
	func(c *model.Client) string { return c.Email },
	func(c *model.Client) string { return c.MailingAddress1 },
	func(c *model.Client) string { return c.MailingCity },
	func(c *model.Client) string { return c.MailingState },
	func(c *model.Client) string { return c.MailingPostcode },
	func(c *model.Client) string { return c.MailingCountry },
}

// ProfileComplete reports whether every required contact field is filled.
func ProfileComplete(c *model.Client) bool {
	for _, get := range profileRequiredFields {
		if notes.Normalize(get(c)) == "" {
			return false
		}
	}
	return true
}

// ClientTenure phrases how long someone has been a client ("3 years").
// Empty or unparsable client_since yields "".
func ClientTenure(clientSince string, now time.Time) string {
	since := notes.Normalize(clientSince)
	if since == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", since)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(humanize.RelTime(t, now, "", ""))
}

func statusSettled(status string, settled []string) bool {
	for _, s := range settled {
		if status == s {
			return true
		}
	}
	return false
}

// ProfileCard aggregates the client's own annotations plus the
// completeness check.
func ProfileCard(c *model.Client) alert.CardStatus {
	critical := []string{c.CriticalIssue}
	attention := []string{c.AttentionNeeded}
	if !ProfileComplete(c) {
		attention = append(attention, "Your profile info needs attention!")
	}
	return alert.BuildCardStatus(critical, attention, "All Good!")
}

// ProjectsCard aggregates annotations across the client's projects,
// subject-labelled with the project name, plus a generic attention entry
// when any project is still in flight.
func ProjectsCard(projects []model.Project) alert.CardStatus {
	var critical, attention []string
	unsettled := false
	for i := range projects {
		p := &projects[i]
		critical = append(critical, alert.FormatLabelledNote(p.ProjectName, p.CriticalIssue))
		attention = append(attention, alert.FormatLabelledNote(p.ProjectName, p.AttentionNeeded))
		if !statusSettled(p.Status, model.ProjectSettledStatuses) {
			unsettled = true
		}
	}
	if unsettled {
		attention = append(attention, "A project or service needs your attention!")
	}
	defaultMsg := fmt.Sprintf("Your %d Projects & Services are all good to go!", len(projects))
	if len(projects) == 0 {
		defaultMsg = "No projects or services yet."
	}
	return alert.BuildCardStatus(critical, attention, defaultMsg)
}

// TicketsCard aggregates annotations across the client's tickets,
// subject-labelled "Ticket #<id>", plus a generic attention entry when any
// ticket is still open.
func TicketsCard(tickets []model.Ticket) alert.CardStatus {
	var critical, attention []string
	unsettled := false
	for i := range tickets {
		t := &tickets[i]
		label := fmt.Sprintf("Ticket #%d", t.ID)
		critical = append(critical, alert.FormatLabelledNote(label, t.CriticalIssue))
		attention = append(attention, alert.FormatLabelledNote(label, t.AttentionNeeded))
		if !statusSettled(t.Status, model.TicketSettledStatuses) {
			unsettled = true
		}
	}
	if unsettled {
		attention = append(attention, "A support ticket needs your attention!")
	}
	return alert.BuildCardStatus(critical, attention, "Your support tickets are all resolved!")
}

// BuildOverview assembles the overview payload. Card order matches the
// dashboard navigation; client annotations come before project ones, and
// those before ticket ones, within each card's message list.
func BuildOverview(c *model.Client, projects []model.Project, tickets []model.Ticket, pluginsCount int64, now time.Time) Overview {
	return Overview{
		ClientFor:       ClientTenure(c.ClientSince, now),
		ProjectsCount:   int64(len(projects)),
		PluginsCount:    pluginsCount,
		TicketsCount:    int64(len(tickets)),
		ProfileComplete: ProfileComplete(c),
		Cards: []Card{
			{Section: SectionProfile, Title: "Profile Info", Status: ProfileCard(c)},
			{Section: SectionProjects, Title: "Projects & Services", Status: ProjectsCard(projects)},
			{Section: SectionTickets, Title: "Support Tickets", Status: TicketsCard(tickets)},
			{Section: SectionPlugins, Title: "Your Plugins", Status: alert.NeutralCard(fmt.Sprintf("%d plugins installed.", pluginsCount))},
			{Section: SectionBilling, Title: "Billing", Status: alert.NeutralCard("Billing records are available below.")},
		},
	}
}
