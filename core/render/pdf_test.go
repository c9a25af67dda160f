package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

func TestPDFRender(t *testing.T) {
	var monsters []*core.Monster
	// Five records force a second page.
	for _, name := range []string{"Ankheg", "Goblin", "Ogre", "Shade", "Treant"} {
		monsters = append(monsters, &core.Monster{
			Name:             name,
			TagsOrg:          []string{"Solitary"},
			HP:               4,
			Armor:            1,
			Weapon:           core.Weapon{Name: "Claw", Damage: "d6", TagsRange: []string{"Close"}},
			Instinct:         "To endure",
			Moves:            []string{"Attack"},
			Description:      "Somewhere <i>between</i> beast and nightmare.<br />Best avoided.",
			Setting:          "Test Setting",
			SettingReference: 19,
		})
	}

	data, err := NewPDFRenderer().Render(monsters)
	require.NoError(t, err)
	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBackRender(t *testing.T) {
	// A real image on disk: gofpdf reads it by path.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	path := filepath.Join(t.TempDir(), "back.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	data, err := NewBackRenderer(path).Render(nil)
	require.NoError(t, err)
	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBackRenderMissingImage(t *testing.T) {
	_, err := NewBackRenderer(filepath.Join(t.TempDir(), "nope.png")).Render(nil)
	assert.Error(t, err)
}
