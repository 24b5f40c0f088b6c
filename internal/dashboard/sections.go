package dashboard

import (
	"strconv"

	"github.com/levelup-marketers/client-dashboard-service/internal/catalog"
	"github.com/levelup-marketers/client-dashboard-service/internal/format"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
)

// FieldView is one formatted field in a detail section.
type FieldView struct {
	Field     string              `json:"field"`
	Label     string              `json:"label"`
	AdminOnly bool                `json:"admin_only,omitempty"`
	Value     format.DisplayValue `json:"value"`
}

// RecordView is one record's formatted field list, e.g. a single project.
type RecordView struct {
	ID     uint64      `json:"id"`
	Title  string      `json:"title"`
	Fields []FieldView `json:"fields"`
}

func buildFieldViews(fields []catalog.Field, value func(string) any) []FieldView {
	views := make([]FieldView, 0, len(fields))
	for _, f := range fields {
		if f.Kind == catalog.KindHidden {
			continue
		}
		raw := value(f.Name)
		// Select fields display the option label, not the stored code.
		if f.Kind == catalog.KindSelect {
			if code, ok := raw.(string); ok {
				raw = catalog.StateName(code)
			}
		}
		views = append(views, FieldView{
			Field:     f.Name,
			Label:     f.Label,
			AdminOnly: f.AdminOnly,
			Value:     format.FieldValue(f.Name, raw, f),
		})
	}
	return views
}

// ProfileSection projects a client row through the field catalog.
func ProfileSection(c *model.Client) []FieldView {
	return buildFieldViews(catalog.ClientFields(), func(name string) any {
		return clientFieldValue(c, name)
	})
}

// ProjectsSection projects each project row into a titled field list.
func ProjectsSection(projects []model.Project) []RecordView {
	out := make([]RecordView, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		out = append(out, RecordView{
			ID:    p.ID,
			Title: p.ProjectName,
			Fields: buildFieldViews(catalog.ProjectFields(), func(name string) any {
				return projectFieldValue(p, name)
			}),
		})
	}
	return out
}

// TicketsSection projects each ticket row into a titled field list.
func TicketsSection(tickets []model.Ticket) []RecordView {
	out := make([]RecordView, 0, len(tickets))
	for i := range tickets {
		t := &tickets[i]
		out = append(out, RecordView{
			ID:    t.ID,
			Title: "Ticket #" + strconv.FormatUint(t.ID, 10),
			Fields: buildFieldViews(catalog.TicketFields(), func(name string) any {
				return ticketFieldValue(t, name)
			}),
		})
	}
	return out
}

func clientFieldValue(c *model.Client, name string) any {
	switch name {
	case "first_name":
		return c.FirstName
	case "last_name":
		return c.LastName
	case "email":
		return c.Email
	case "mailing_address1":
		return c.MailingAddress1
	case "mailing_address2":
		return c.MailingAddress2
	case "mailing_city":
		return c.MailingCity
	case "mailing_state":
		return c.MailingState
	case "mailing_postcode":
		return c.MailingPostcode
	case "mailing_country":
		return c.MailingCountry
	case "company_name":
		return c.CompanyName
	case "company_website":
		return c.CompanyWebsite
	case "company_address1":
		return c.CompanyAddress1
	case "company_address2":
		return c.CompanyAddress2
	case "company_city":
		return c.CompanyCity
	case "company_state":
		return c.CompanyState
	case "company_postcode":
		return c.CompanyPostcode
	case "company_country":
		return c.CompanyCountry
	case "company_logo":
		return c.CompanyLogo
	case "social_facebook":
		return c.SocialFacebook
	case "social_twitter":
		return c.SocialTwitter
	case "social_instagram":
		return c.SocialInstagram
	case "social_linkedin":
		return c.SocialLinkedIn
	case "social_yelp":
		return c.SocialYelp
	case "social_bbb":
		return c.SocialBBB
	case "client_since":
		return c.ClientSince
	case catalog.FieldAttentionNeeded:
		return c.AttentionNeeded
	case catalog.FieldCriticalIssue:
		return c.CriticalIssue
	}
	return ""
}

func projectFieldValue(p *model.Project, name string) any {
	switch name {
	case "project_name":
		return p.ProjectName
	case "project_type":
		return p.ProjectType
	case "start_date":
		return p.StartDate
	case "end_date":
		return p.EndDate
	case "status":
		return p.Status
	case "dev_link":
		return p.DevLink
	case "live_link":
		return p.LiveLink
	case "gdrive_link":
		return p.GDriveLink
	case "total_one_time_cost":
		return p.TotalOneTimeCost
	case "mrr":
		return p.MRR
	case "arr":
		return p.ARR
	case "monthly_support_time":
		return p.MonthlySupportTime
	case "description":
		return p.Description
	case "project_updates":
		return p.ProjectUpdates
	case catalog.FieldAttentionNeeded:
		return p.AttentionNeeded
	case catalog.FieldCriticalIssue:
		return p.CriticalIssue
	}
	return ""
}

func ticketFieldValue(t *model.Ticket, name string) any {
	switch name {
	case "creation_datetime":
		return t.CreationDatetime
	case "start_time":
		return t.StartTime
	case "end_time":
		return t.EndTime
	case "duration_minutes":
		return t.DurationMinutes
	case "status":
		return t.Status
	case "initial_description":
		return t.InitialDescription
	case "ticket_updates":
		return t.TicketUpdates
	case catalog.FieldAttentionNeeded:
		return t.AttentionNeeded
	case catalog.FieldCriticalIssue:
		return t.CriticalIssue
	}
	return ""
}
