package render

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

func TestCSVRender(t *testing.T) {
	monsters := []*core.Monster{{
		Name:     "Goblin",
		TagsDesc: []string{"cowardly"},
		TagsOrg:  []string{"Horde"},
		HP:       4,
		Armor:    2,
		Weapon: core.Weapon{
			Name:      "Dagger",
			Damage:    "d6",
			TagsRange: []string{"Hand"},
		},
		Instinct:         "To swarm",
		Moves:            []string{"Stab", "Flee"},
		Qualities:        []string{"Stealthy"},
		Description:      "Fears fire.<br />Hates <i>everything</i>.",
		Reference:        23,
		Setting:          "Test Setting",
		SettingReference: 19,
	}}

	data, err := NewCSVRenderer().Render(monsters)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{
		"Goblin", "4", "2",
		"cowardly ~ Horde",
		"Dagger (d6) Hand",
		"To swarm",
		"Stab, Flee",
		"Stealthy",
		"Fears fire. \\ Hates everything.",
		"23", "Test Setting", "19",
	}, rows[1])
}

func TestCSVRenderEmptyOptionals(t *testing.T) {
	data, err := NewCSVRenderer().Render([]*core.Monster{{Name: "Shade"}})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Absent integers render as empty cells, not zeros.
	assert.Equal(t, "", rows[1][1])
	assert.Equal(t, "", rows[1][2])
	assert.Equal(t, "", rows[1][9])
}
