package alert_test

import (
	"testing"

	"github.com/levelup-marketers/client-dashboard-service/internal/alert"
	"github.com/stretchr/testify/require"
)

func TestTypeLabel(t *testing.T) {
	require.Equal(t, "Critical Issue", alert.TypeLabel(alert.TypeCritical))
	require.Equal(t, "Attention Needed", alert.TypeLabel(alert.TypeAttention))
	require.Equal(t, "", alert.TypeLabel(alert.Type("bogus")))
}

func TestBuildMessage(t *testing.T) {
	msg := alert.BuildMessage("  dns expiring ", alert.TypeAttention)
	require.NotNil(t, msg)
	require.Equal(t, alert.TypeAttention, msg.Type)
	require.Equal(t, "dns expiring", msg.Message)

	require.Nil(t, alert.BuildMessage("", alert.TypeCritical))
	require.Nil(t, alert.BuildMessage("   ", alert.TypeCritical))
}

func TestFormatLabelledNote(t *testing.T) {
	require.Equal(t, "Main Site - SSL expired", alert.FormatLabelledNote("Main Site", "SSL expired"))
	require.Equal(t, "SSL expired", alert.FormatLabelledNote("", "SSL expired"))
	require.Equal(t, "SSL expired", alert.FormatLabelledNote("   ", " SSL expired "))
	require.Equal(t, "", alert.FormatLabelledNote("Main Site", "   "))
}

func TestPrepareItems_CriticalFirst(t *testing.T) {
	items := alert.PrepareItems(
		[]string{" C1 ", "", "C2"},
		[]string{"A1", "  ", "A2"},
	)
	require.Len(t, items, 4)
	require.Equal(t, alert.Entry{Type: alert.TypeCritical, Message: "C1"}, items[0])
	require.Equal(t, alert.Entry{Type: alert.TypeCritical, Message: "C2"}, items[1])
	require.Equal(t, alert.Entry{Type: alert.TypeAttention, Message: "A1"}, items[2])
	require.Equal(t, alert.Entry{Type: alert.TypeAttention, Message: "A2"}, items[3])
}

func TestBuildCardStatus_Good(t *testing.T) {
	st := alert.BuildCardStatus(nil, nil, "All Good!")
	require.Equal(t, alert.ClassGood, st.Class)
	require.Equal(t, alert.IconCheck, st.Icon)
	require.Len(t, st.Messages, 1)
	require.Equal(t, "All Good!", st.Messages[0].Text)
}

func TestBuildCardStatus_GoodWithoutDefault(t *testing.T) {
	st := alert.BuildCardStatus([]string{"  "}, []string{""}, "")
	require.Equal(t, alert.ClassGood, st.Class)
	require.Empty(t, st.Messages)
}

func TestBuildCardStatus_Attention(t *testing.T) {
	st := alert.BuildCardStatus(nil, []string{"Renew domain"}, "All Good!")
	require.Equal(t, alert.ClassAttention, st.Class)
	require.Equal(t, alert.IconWarning, st.Icon)
	require.Len(t, st.Messages, 1)
	require.Equal(t, alert.TypeAttention, st.Messages[0].Type)
	require.Equal(t, "Attention Needed: Renew domain", st.Messages[0].Text)
}

func TestBuildCardStatus_CriticalWins(t *testing.T) {
	st := alert.BuildCardStatus([]string{"Site down"}, []string{"Renew domain"}, "All Good!")
	require.Equal(t, alert.ClassCritical, st.Class)
	require.Equal(t, alert.IconCritical, st.Icon)
	require.Len(t, st.Messages, 2)
	require.Equal(t, "Critical Issue: Site down", st.Messages[0].Text)
	require.Equal(t, "Attention Needed: Renew domain", st.Messages[1].Text)
}

func TestBuildCardStatus_WhitespaceNotesAreAbsent(t *testing.T) {
	st := alert.BuildCardStatus([]string{"   "}, []string{"\n\t"}, "All Good!")
	require.Equal(t, alert.ClassGood, st.Class)
}

func TestNeutralCard(t *testing.T) {
	st := alert.NeutralCard("3 plugins installed.")
	require.Equal(t, alert.ClassNeutral, st.Class)
	require.Equal(t, alert.IconInfo, st.Icon)
	require.Len(t, st.Messages, 1)
	require.Equal(t, "3 plugins installed.", st.Messages[0].Text)

	require.Empty(t, alert.NeutralCard("  ").Messages)
}
