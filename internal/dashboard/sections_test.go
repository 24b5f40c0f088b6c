package dashboard_test

import (
	"testing"
	"time"

	"github.com/levelup-marketers/client-dashboard-service/internal/dashboard"
	"github.com/levelup-marketers/client-dashboard-service/internal/format"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"github.com/stretchr/testify/require"
)

func fieldByName(t *testing.T, views []dashboard.FieldView, name string) dashboard.FieldView {
	t.Helper()
	for _, v := range views {
		if v.Field == name {
			return v
		}
	}
	t.Fatalf("field %s not found", name)
	return dashboard.FieldView{}
}

func TestProfileSection(t *testing.T) {
	c := completeClient()
	views := dashboard.ProfileSection(c)

	state := fieldByName(t, views, "mailing_state")
	require.Equal(t, "Ohio", state.Value.DisplayText)

	email := fieldByName(t, views, "email")
	require.Equal(t, format.RenderEmail, email.Value.Render)

	since := fieldByName(t, views, "client_since")
	require.Equal(t, "6/15/2020", since.Value.DisplayText)

	website := fieldByName(t, views, "company_website")
	require.True(t, website.Value.IsEmpty)
	require.Equal(t, format.PlaceholderText, website.Value.DisplayText)

	critical := fieldByName(t, views, "critical_issue")
	require.True(t, critical.AdminOnly)

	// Hidden fields never reach the view.
	for _, v := range views {
		require.NotEqual(t, "company_logo", v.Field)
	}
}

func TestProjectsSection(t *testing.T) {
	projects := []model.Project{{
		ID:                 5,
		ProjectName:        "Main Site",
		Status:             "In Progress",
		StartDate:          "2024-03-05",
		EndDate:            "0000-00-00",
		TotalOneTimeCost:   1234.5,
		MRR:                200,
		MonthlySupportTime: 1.5,
	}}
	views := dashboard.ProjectsSection(projects)
	require.Len(t, views, 1)
	require.EqualValues(t, 5, views[0].ID)
	require.Equal(t, "Main Site", views[0].Title)

	require.Equal(t, "$1,234.50", fieldByName(t, views[0].Fields, "total_one_time_cost").Value.DisplayText)
	require.Equal(t, "$200.00", fieldByName(t, views[0].Fields, "mrr").Value.DisplayText)
	require.Equal(t, "1.5 Hours", fieldByName(t, views[0].Fields, "monthly_support_time").Value.DisplayText)
	require.Equal(t, "3/5/2024", fieldByName(t, views[0].Fields, "start_date").Value.DisplayText)
	require.Equal(t, "TBD", fieldByName(t, views[0].Fields, "end_date").Value.DisplayText)
}

func TestTicketsSection(t *testing.T) {
	created := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	tickets := []model.Ticket{{
		ID:                 42,
		CreationDatetime:   created,
		DurationMinutes:    125,
		Status:             "Completed",
		InitialDescription: "Login page\nthrows a 500",
	}}
	views := dashboard.TicketsSection(tickets)
	require.Len(t, views, 1)
	require.Equal(t, "Ticket #42", views[0].Title)

	require.Equal(t, "3/5/2024 - 2:30 PM", fieldByName(t, views[0].Fields, "creation_datetime").Value.DisplayText)
	require.Equal(t, "2 Hours, 5 Minutes", fieldByName(t, views[0].Fields, "duration_minutes").Value.DisplayText)

	desc := fieldByName(t, views[0].Fields, "initial_description")
	require.Equal(t, "Login page throws a 500", desc.Value.DisplayText)
	require.Equal(t, "Login page\nthrows a 500", desc.Value.FullText)
	require.True(t, desc.Value.AllowsMultiline)

	start := fieldByName(t, views[0].Fields, "start_time")
	require.True(t, start.Value.IsEmpty)
}
