package dashboard_test

import (
	"testing"
	"time"

	"github.com/levelup-marketers/client-dashboard-service/internal/alert"
	"github.com/levelup-marketers/client-dashboard-service/internal/dashboard"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"github.com/stretchr/testify/require"
)

func completeClient() *model.Client {
	return &model.Client{
		ID:              1,
		UserID:          10,
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		MailingAddress1: "1 Analytical Way",
		MailingCity:     "Columbus",
		MailingState:    "OH",
		MailingPostcode: "43004",
		MailingCountry:  "USA",
		CompanyName:     "Engine Works",
		ClientSince:     "2020-06-15",
	}
}

func TestProfileComplete(t *testing.T) {
	c := completeClient()
	require.True(t, dashboard.ProfileComplete(c))

	c.MailingCity = ""
	require.False(t, dashboard.ProfileComplete(c))

	c.MailingCity = "   "
	require.False(t, dashboard.ProfileComplete(c))
}

func TestClientTenure(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "4 years", dashboard.ClientTenure("2020-06-15", now))
	require.Equal(t, "", dashboard.ClientTenure("", now))
	require.Equal(t, "", dashboard.ClientTenure("not a date", now))
}

func TestProfileCard_AllGood(t *testing.T) {
	st := dashboard.ProfileCard(completeClient())
	require.Equal(t, alert.ClassGood, st.Class)
	require.Len(t, st.Messages, 1)
	require.Equal(t, "All Good!", st.Messages[0].Text)
}

func TestProfileCard_Incomplete(t *testing.T) {
	c := completeClient()
	c.MailingPostcode = ""
	st := dashboard.ProfileCard(c)
	require.Equal(t, alert.ClassAttention, st.Class)
	require.Len(t, st.Messages, 1)
	require.Equal(t, "Attention Needed: Your profile info needs attention!", st.Messages[0].Text)
}

func TestProfileCard_CriticalWins(t *testing.T) {
	c := completeClient()
	c.MailingPostcode = ""
	c.CriticalIssue = "Account suspended"
	st := dashboard.ProfileCard(c)
	require.Equal(t, alert.ClassCritical, st.Class)
	require.Equal(t, "Critical Issue: Account suspended", st.Messages[0].Text)
}

func TestProjectsCard_NoProjects(t *testing.T) {
	st := dashboard.ProjectsCard(nil)
	require.Equal(t, alert.ClassGood, st.Class)
	require.Equal(t, "No projects or services yet.", st.Messages[0].Text)
}

func TestProjectsCard_AllSettled(t *testing.T) {
	projects := []model.Project{
		{ProjectName: "Site", Status: "Completed"},
		{ProjectName: "SEO", Status: "Cancelled"},
	}
	st := dashboard.ProjectsCard(projects)
	require.Equal(t, alert.ClassGood, st.Class)
	require.Equal(t, "Your 2 Projects & Services are all good to go!", st.Messages[0].Text)
}

func TestProjectsCard_Unsettled(t *testing.T) {
	projects := []model.Project{{ProjectName: "Site", Status: "In Progress"}}
	st := dashboard.ProjectsCard(projects)
	require.Equal(t, alert.ClassAttention, st.Class)
	require.Equal(t, "Attention Needed: A project or service needs your attention!", st.Messages[0].Text)
}

func TestProjectsCard_LabelledCritical(t *testing.T) {
	projects := []model.Project{
		{ProjectName: "Main Site", Status: "Completed", CriticalIssue: "SSL expired"},
	}
	st := dashboard.ProjectsCard(projects)
	require.Equal(t, alert.ClassCritical, st.Class)
	require.Equal(t, "Critical Issue: Main Site - SSL expired", st.Messages[0].Text)
}

func TestTicketsCard_AllResolved(t *testing.T) {
	tickets := []model.Ticket{
		{ID: 7, Status: "Completed"},
		{ID: 8, Status: "No Longer Applicable"},
	}
	st := dashboard.TicketsCard(tickets)
	require.Equal(t, alert.ClassGood, st.Class)
	require.Equal(t, "Your support tickets are all resolved!", st.Messages[0].Text)
}

func TestTicketsCard_OpenTicket(t *testing.T) {
	tickets := []model.Ticket{{ID: 7, Status: "Not Started"}}
	st := dashboard.TicketsCard(tickets)
	require.Equal(t, alert.ClassAttention, st.Class)
	require.Equal(t, "Attention Needed: A support ticket needs your attention!", st.Messages[0].Text)
}

func TestTicketsCard_LabelledAttention(t *testing.T) {
	tickets := []model.Ticket{
		{ID: 42, Status: "Completed", AttentionNeeded: "Verify the fix"},
	}
	st := dashboard.TicketsCard(tickets)
	require.Equal(t, alert.ClassAttention, st.Class)
	require.Equal(t, "Attention Needed: Ticket #42 - Verify the fix", st.Messages[0].Text)
}

func TestBuildOverview(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	c := completeClient()
	projects := []model.Project{{ProjectName: "Site", Status: "Completed"}}
	tickets := []model.Ticket{{ID: 1, Status: "Completed"}}

	ov := dashboard.BuildOverview(c, projects, tickets, 3, now)
	require.Equal(t, "4 years", ov.ClientFor)
	require.EqualValues(t, 1, ov.ProjectsCount)
	require.EqualValues(t, 3, ov.PluginsCount)
	require.EqualValues(t, 1, ov.TicketsCount)
	require.True(t, ov.ProfileComplete)

	require.Len(t, ov.Cards, 5)
	sections := make([]string, 0, len(ov.Cards))
	for _, card := range ov.Cards {
		sections = append(sections, card.Section)
	}
	require.Equal(t, []string{
		dashboard.SectionProfile,
		dashboard.SectionProjects,
		dashboard.SectionTickets,
		dashboard.SectionPlugins,
		dashboard.SectionBilling,
	}, sections)

	require.Equal(t, alert.ClassNeutral, ov.Cards[3].Status.Class)
	require.Equal(t, "3 plugins installed.", ov.Cards[3].Status.Messages[0].Text)
	require.Equal(t, alert.ClassNeutral, ov.Cards[4].Status.Class)
}
