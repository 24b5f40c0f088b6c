package model

import "time"

// Project statuses that count as settled; anything else needs attention.
var ProjectSettledStatuses = []string{"Completed", "Cancelled"}

// Ticket statuses that count as settled; anything else needs attention.
var TicketSettledStatuses = []string{"Completed", "No Longer Applicable"}

const TicketStatusNotStarted = "Not Started"

// Client is one customer record, 1:1 with an external user account.
type Client struct {
	ID     uint64 `gorm:"column:client_id;primaryKey" json:"client_id"`
	UserID uint64 `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`

	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`

	MailingAddress1 string `gorm:"type:varchar(255)" json:"mailing_address1,omitempty"`
	MailingAddress2 string `gorm:"type:varchar(255)" json:"mailing_address2,omitempty"`
	MailingCity     string `gorm:"type:varchar(100)" json:"mailing_city,omitempty"`
	MailingState    string `gorm:"type:varchar(100)" json:"mailing_state,omitempty"`
	MailingPostcode string `gorm:"type:varchar(20)" json:"mailing_postcode,omitempty"`
	MailingCountry  string `gorm:"type:varchar(100)" json:"mailing_country,omitempty"`

	CompanyName     string `gorm:"type:varchar(255);not null" json:"company_name"`
	CompanyWebsite  string `gorm:"type:varchar(255)" json:"company_website,omitempty"`
	CompanyAddress1 string `gorm:"type:varchar(255)" json:"company_address1,omitempty"`
	CompanyAddress2 string `gorm:"type:varchar(255)" json:"company_address2,omitempty"`
	CompanyCity     string `gorm:"type:varchar(100)" json:"company_city,omitempty"`
	CompanyState    string `gorm:"type:varchar(100)" json:"company_state,omitempty"`
	CompanyPostcode string `gorm:"type:varchar(20)" json:"company_postcode,omitempty"`
	CompanyCountry  string `gorm:"type:varchar(100)" json:"company_country,omitempty"`
	CompanyLogo     string `gorm:"type:varchar(255)" json:"company_logo,omitempty"`

	SocialFacebook  string `gorm:"type:varchar(255)" json:"social_facebook,omitempty"`
	SocialTwitter   string `gorm:"type:varchar(255)" json:"social_twitter,omitempty"`
	SocialInstagram string `gorm:"type:varchar(255)" json:"social_instagram,omitempty"`
	SocialLinkedIn  string `gorm:"column:social_linkedin;type:varchar(255)" json:"social_linkedin,omitempty"`
	SocialYelp      string `gorm:"type:varchar(255)" json:"social_yelp,omitempty"`
	SocialBBB       string `gorm:"column:social_bbb;type:varchar(255)" json:"social_bbb,omitempty"`

	ClientSince     string `gorm:"type:date" json:"client_since,omitempty"`
	AttentionNeeded string `gorm:"type:text" json:"attention_needed,omitempty"`
	CriticalIssue   string `gorm:"type:text" json:"critical_issue,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

// Project belongs to exactly one client.
type Project struct {
	ID       uint64 `gorm:"column:project_id;primaryKey" json:"project_id"`
	ClientID uint64 `gorm:"index;not null" json:"client_id"`

	ProjectName string `gorm:"type:varchar(255);not null" json:"project_name"`
	ProjectType string `gorm:"type:varchar(100)" json:"project_type,omitempty"`
	StartDate   string `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     string `gorm:"type:date" json:"end_date,omitempty"`
	Status      string `gorm:"type:varchar(100);index" json:"status,omitempty"`

	DevLink    string `gorm:"type:varchar(255)" json:"dev_link,omitempty"`
	LiveLink   string `gorm:"type:varchar(255)" json:"live_link,omitempty"`
	GDriveLink string `gorm:"column:gdrive_link;type:varchar(255)" json:"gdrive_link,omitempty"`

	TotalOneTimeCost   float64 `gorm:"type:numeric(10,2)" json:"total_one_time_cost"`
	MRR                float64 `gorm:"column:mrr;type:numeric(10,2)" json:"mrr"`
	ARR                float64 `gorm:"column:arr;type:numeric(10,2)" json:"arr"`
	MonthlySupportTime float64 `gorm:"type:numeric(6,2)" json:"monthly_support_time"`

	Description     string `gorm:"type:text" json:"description,omitempty"`
	ProjectUpdates  string `gorm:"type:text" json:"project_updates,omitempty"`
	AttentionNeeded string `gorm:"type:text" json:"attention_needed,omitempty"`
	CriticalIssue   string `gorm:"type:text" json:"critical_issue,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// Ticket is one support request for a client.
type Ticket struct {
	ID       uint64 `gorm:"column:ticket_id;primaryKey" json:"ticket_id"`
	ClientID uint64 `gorm:"index;not null" json:"client_id"`

	CreationDatetime time.Time  `gorm:"not null" json:"creation_datetime"`
	StartTime        *time.Time `json:"start_time,omitempty"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	DurationMinutes  int        `gorm:"not null;default:0" json:"duration_minutes"`

	Status             string `gorm:"type:varchar(50);index;not null;default:'Not Started'" json:"status"`
	InitialDescription string `gorm:"type:text;not null" json:"initial_description"`
	TicketUpdates      string `gorm:"type:text" json:"ticket_updates,omitempty"`
	AttentionNeeded    string `gorm:"type:text" json:"attention_needed,omitempty"`
	CriticalIssue      string `gorm:"type:text" json:"critical_issue,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Ticket) TableName() string { return "tickets" }

// BillingRecord is one invoice reference for a client.
type BillingRecord struct {
	ID            uint64    `gorm:"column:billing_id;primaryKey" json:"billing_id"`
	ClientID      uint64    `gorm:"index;not null" json:"client_id"`
	InvoiceNumber string    `gorm:"type:varchar(100);not null" json:"invoice_number"`
	CreatedAt     time.Time `json:"created_at"`
}

func (BillingRecord) TableName() string { return "billing" }

// PluginRecord is one plugin licensed to a client.
type PluginRecord struct {
	ID         uint64    `gorm:"column:plugin_id;primaryKey" json:"plugin_id"`
	ClientID   uint64    `gorm:"index;not null" json:"client_id"`
	PluginName string    `gorm:"type:varchar(255);not null" json:"plugin_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PluginRecord) TableName() string { return "plugins" }

// Archive mirror table names, targeted with db.Table(...) when archiving.
const (
	ClientsArchiveTable  = "clients_archive"
	ProjectsArchiveTable = "projects_archive"
	TicketsArchiveTable  = "tickets_archive"
	BillingArchiveTable  = "billing_archive"
	PluginsArchiveTable  = "plugins_archive"
)
