// Package catalog holds the static field definitions for client, project
// and ticket records. The catalog is built once at init and never mutated.
package catalog

// Kind is the input/render kind of a field.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindURL      Kind = "url"
	KindDate     Kind = "date"
	KindDateTime Kind = "datetime"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
	KindHidden   Kind = "hidden"
	KindNumber   Kind = "number"
)

// Field describes one record attribute.
type Field struct {
	Name       string
	Label      string
	Kind       Kind
	IsCurrency bool
	AdminOnly  bool
	Options    map[string]string
}

// Annotation field names shared by clients, projects and tickets.
const (
	FieldAttentionNeeded = "attention_needed"
	FieldCriticalIssue   = "critical_issue"
)

var clientFields = []Field{
	{Name: "first_name", Label: "First Name", Kind: KindText},
	{Name: "last_name", Label: "Last Name", Kind: KindText},
	{Name: "email", Label: "Email", Kind: KindEmail},
	{Name: "mailing_address1", Label: "Mailing Address 1", Kind: KindText},
	{Name: "mailing_address2", Label: "Mailing Address 2", Kind: KindText},
	{Name: "mailing_city", Label: "Mailing City", Kind: KindText},
	{Name: "mailing_state", Label: "Mailing State", Kind: KindSelect, Options: usStates},
	{Name: "mailing_postcode", Label: "Mailing Postcode", Kind: KindText},
	{Name: "mailing_country", Label: "Mailing Country", Kind: KindText},
	{Name: "company_name", Label: "Company Name", Kind: KindText},
	{Name: "company_website", Label: "Company Website", Kind: KindURL},
	{Name: "company_address1", Label: "Company Address 1", Kind: KindText},
	{Name: "company_address2", Label: "Company Address 2", Kind: KindText},
	{Name: "company_city", Label: "Company City", Kind: KindText},
	{Name: "company_state", Label: "Company State", Kind: KindSelect, Options: usStates},
	{Name: "company_postcode", Label: "Company Postcode", Kind: KindText},
	{Name: "company_country", Label: "Company Country", Kind: KindText},
	{Name: "social_facebook", Label: "Facebook", Kind: KindURL},
	{Name: "social_twitter", Label: "Twitter", Kind: KindURL},
	{Name: "social_instagram", Label: "Instagram", Kind: KindURL},
	{Name: "social_linkedin", Label: "LinkedIn", Kind: KindURL},
	{Name: "social_yelp", Label: "Yelp", Kind: KindURL},
	{Name: "social_bbb", Label: "BBB", Kind: KindURL},
	{Name: "client_since", Label: "Client Since", Kind: KindDate},
	{Name: "company_logo", Label: "Company Logo", Kind: KindHidden},
	{Name: FieldAttentionNeeded, Label: "Attention Needed", Kind: KindTextarea, AdminOnly: true},
	{Name: FieldCriticalIssue, Label: "Critical Issue", Kind: KindTextarea, AdminOnly: true},
}

var projectFields = []Field{
	{Name: "project_name", Label: "Project Name", Kind: KindText},
	{Name: "project_type", Label: "Project Type", Kind: KindText},
	{Name: "start_date", Label: "Start Date", Kind: KindDate},
	{Name: "end_date", Label: "End Date", Kind: KindDate},
	{Name: "status", Label: "Status", Kind: KindText},
	{Name: "dev_link", Label: "Development Link", Kind: KindURL},
	{Name: "live_link", Label: "Live Link", Kind: KindURL},
	{Name: "gdrive_link", Label: "Google Drive Link", Kind: KindURL},
	{Name: "total_one_time_cost", Label: "Total One-Time Cost", Kind: KindNumber, IsCurrency: true},
	{Name: "mrr", Label: "MRR", Kind: KindNumber, IsCurrency: true},
	{Name: "arr", Label: "ARR", Kind: KindNumber, IsCurrency: true},
	{Name: "monthly_support_time", Label: "Monthly Support Time", Kind: KindNumber},
	{Name: "description", Label: "Description", Kind: KindTextarea},
	{Name: "project_updates", Label: "Project Updates", Kind: KindTextarea},
	{Name: FieldAttentionNeeded, Label: "Attention Needed", Kind: KindTextarea, AdminOnly: true},
	{Name: FieldCriticalIssue, Label: "Critical Issue", Kind: KindTextarea, AdminOnly: true},
}

var ticketFields = []Field{
	{Name: "creation_datetime", Label: "Created", Kind: KindDateTime},
	{Name: "start_time", Label: "Start Time", Kind: KindDateTime},
	{Name: "end_time", Label: "End Time", Kind: KindDateTime},
	{Name: "duration_minutes", Label: "Duration", Kind: KindNumber},
	{Name: "status", Label: "Status", Kind: KindText},
	{Name: "initial_description", Label: "Initial Description", Kind: KindTextarea},
	{Name: "ticket_updates", Label: "Ticket Updates", Kind: KindTextarea},
	{Name: FieldAttentionNeeded, Label: "Attention Needed", Kind: KindTextarea, AdminOnly: true},
	{Name: FieldCriticalIssue, Label: "Critical Issue", Kind: KindTextarea, AdminOnly: true},
}

// ClientFields returns the client field definitions in display order.
func ClientFields() []Field { return clientFields }

// ProjectFields returns the project field definitions in display order.
func ProjectFields() []Field { return projectFields }

// TicketFields returns the ticket field definitions in display order.
func TicketFields() []Field { return ticketFields }

var fieldIndex = map[string]Field{}

func init() {
	for _, set := range [][]Field{clientFields, projectFields, ticketFields} {
		for _, f := range set {
			if _, ok := fieldIndex[f.Name]; !ok {
				fieldIndex[f.Name] = f
			}
		}
	}
}

// Lookup returns the definition for a field name. The zero Field (KindText
// behavior) is returned for unknown names.
func Lookup(name string) (Field, bool) {
	f, ok := fieldIndex[name]
	return f, ok
}

// StateName resolves a US state abbreviation to its full name. Unknown
// codes come back unchanged.
func StateName(abbr string) string {
	if name, ok := usStates[abbr]; ok {
		return name
	}
	return abbr
}
