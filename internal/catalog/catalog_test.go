package catalog_test

import (
	"testing"

	"github.com/levelup-marketers/client-dashboard-service/internal/catalog"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	f, ok := catalog.Lookup("mrr")
	require.True(t, ok)
	require.Equal(t, "MRR", f.Label)
	require.True(t, f.IsCurrency)

	_, ok = catalog.Lookup("no_such_field")
	require.False(t, ok)
}

func TestStateName(t *testing.T) {
	require.Equal(t, "Ohio", catalog.StateName("OH"))
	require.Equal(t, "California", catalog.StateName("CA"))
	require.Equal(t, "XX", catalog.StateName("XX"))
	require.Equal(t, "", catalog.StateName(""))
}

func TestAnnotationFieldsPresentEverywhere(t *testing.T) {
	for _, set := range [][]catalog.Field{
		catalog.ClientFields(),
		catalog.ProjectFields(),
		catalog.TicketFields(),
	} {
		names := make(map[string]catalog.Field, len(set))
		for _, f := range set {
			names[f.Name] = f
		}
		for _, name := range []string{catalog.FieldAttentionNeeded, catalog.FieldCriticalIssue} {
			f, ok := names[name]
			require.True(t, ok, "missing %s", name)
			require.True(t, f.AdminOnly)
		}
	}
}

func TestFieldNamesUniquePerSet(t *testing.T) {
	for _, set := range [][]catalog.Field{
		catalog.ClientFields(),
		catalog.ProjectFields(),
		catalog.TicketFields(),
	} {
		seen := make(map[string]bool, len(set))
		for _, f := range set {
			require.False(t, seen[f.Name], "duplicate field %s", f.Name)
			require.NotEmpty(t, f.Label, "field %s has no label", f.Name)
			seen[f.Name] = true
		}
	}
}
