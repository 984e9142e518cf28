package tabconfig_test

import (
	"testing"

	"speedtab/feature/tab/tabconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	raw := []byte(`
default:
  tabTitle: "Welcome"
  tabFooter: "Bye"
servers:
  lobby:
    tabTitle: "&aLobby"
  survival:
    tabFooter: "&cPvP on"
  Creative:
    tabTitle: "Build"
    tabFooter: "Have fun"
  empty:
`)

	snap, err := tabconfig.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "Welcome", snap.DefaultTitle())
	assert.Equal(t, "Bye", snap.DefaultFooter())
	assert.Equal(t, []string{"Creative", "empty", "lobby", "survival"}, snap.Servers())

	tests := []struct {
		server string
		title  string
		footer string
	}{
		{"lobby", "&aLobby", "Bye"},
		{"survival", "Welcome", "&cPvP on"},
		{"Creative", "Build", "Have fun"},
		{"empty", "Welcome", "Bye"},
		{"creative", "Welcome", "Bye"},
		{"unknown", "Welcome", "Bye"},
	}

	for _, tt := range tests {
		t.Run(tt.server, func(t *testing.T) {
			assert.Equal(t, tt.title, snap.Title(tt.server))
			assert.Equal(t, tt.footer, snap.Footer(tt.server))
		})
	}
}

func TestParse_MissingDefaultSection(t *testing.T) {
	snap, err := tabconfig.Parse([]byte("servers:\n  lobby:\n    tabTitle: Lobby\n"))
	require.NoError(t, err)

	assert.Equal(t, tabconfig.BuiltinTitle, snap.DefaultTitle())
	assert.Equal(t, tabconfig.BuiltinFooter, snap.DefaultFooter())
	assert.Equal(t, "Lobby", snap.Title("lobby"))
	assert.Equal(t, tabconfig.BuiltinFooter, snap.Footer("lobby"))
}

func TestParse_EmptyDocument(t *testing.T) {
	snap, err := tabconfig.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, tabconfig.BuiltinTitle, snap.Title("lobby"))
	assert.Empty(t, snap.Servers())
}

func TestParse_ExplicitEmptyValue(t *testing.T) {
	snap, err := tabconfig.Parse([]byte("default:\n  tabTitle: Hi\n  tabFooter: Bye\nservers:\n  lobby:\n    tabFooter: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "", snap.Footer("lobby"))
	assert.Equal(t, "Hi", snap.Title("lobby"))
}

func TestParse_Malformed(t *testing.T) {
	_, err := tabconfig.Parse([]byte("default: [unclosed"))
	assert.Error(t, err)
}

func TestParse_Template(t *testing.T) {
	snap, err := tabconfig.Parse(tabconfig.Template)
	require.NoError(t, err)
	assert.True(t, snap.HasServer("lobby"))
	assert.Equal(t, snap.DefaultFooter(), snap.Footer("lobby"))
}

func TestNewSnapshot_CopiesMaps(t *testing.T) {
	titles := map[string]string{"lobby": "Lobby", "": "dropped"}
	snap := tabconfig.NewSnapshot("T", "F", titles, nil)

	titles["lobby"] = "Changed"
	titles["other"] = "Other"

	assert.Equal(t, "Lobby", snap.Title("lobby"))
	assert.False(t, snap.HasServer("other"))
	assert.False(t, snap.HasServer(""))
	assert.Equal(t, []string{"lobby"}, snap.Servers())
}

func TestDefaults(t *testing.T) {
	snap := tabconfig.Defaults()
	assert.Equal(t, tabconfig.BuiltinTitle, snap.Title("anything"))
	assert.Equal(t, tabconfig.BuiltinFooter, snap.Footer("anything"))
	assert.Empty(t, snap.Servers())
}

func TestParse_ServerNamesAreExact(t *testing.T) {
	raw := []byte(`
servers:
  "lobby":
    tabTitle: "Plain"
  " lobby":
    tabTitle: "Padded"
  "":
    tabTitle: "Nameless"
`)

	for i := 0; i < 10; i++ {
		snap, err := tabconfig.Parse(raw)
		require.NoError(t, err)

		assert.Equal(t, []string{" lobby", "lobby"}, snap.Servers())
		assert.Equal(t, "Plain", snap.Title("lobby"))
		assert.Equal(t, "Padded", snap.Title(" lobby"))
	}
}
