package ingest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/monsterdeck/core"
	"github.com/gaurav-prasanna/monsterdeck/core/index"
)

func testIndex() *index.Index {
	return &index.Index{
		Settings: map[string]int{
			"Test Setting":  19,
			"Other Setting": 40,
		},
		Monsters: map[string]int{
			"goblin":      23,
			"fire beetle": 24,
			"treant":      25,
		},
	}
}

// doc assembles a markup document body, substituting <TAB> markers so
// fixtures stay readable.
func doc(body string) string {
	s := `<Root>
<h1>Test Setting</h1>
<Body>
` + body + `
</Body>
</Root>`
	return strings.ReplaceAll(s, "<TAB>", "\t")
}

const goblinBody = `<p aid:pstyle="MonsterName">Goblin<em>Small, Horde</em></p>
<p aid:pstyle="MonsterStats">4 HP<TAB>2 Armor<TAB>Dagger (d6)</p>
<p aid:pstyle="MonsterStats"><em>Hand</em></p>
<p aid:pstyle="MonsterQualities"><em>Special Qualities:</em> Stealthy, Cowardly</p>
<p aid:pstyle="MonsterDescription">Green and nasty. <em>Instinct</em>: To swarm</p>
<ul><li>Stab</li><li>Flee in numbers</li></ul>`

func TestParseGoblinDocument(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	require.NoError(t, p.Parse("goblin.xml", strings.NewReader(doc(goblinBody))))
	require.Equal(t, 1, store.Len())

	got, ok := store.Get("Goblin")
	require.True(t, ok)

	want := &core.Monster{
		Name:     "Goblin",
		TagsOrg:  []string{"Horde"},
		TagsSize: []string{"Small"},
		HP:       4,
		Armor:    2,
		Weapon: core.Weapon{
			Name:      "Dagger",
			Damage:    "d6",
			TagsRange: []string{"Hand"},
		},
		Instinct:         "To swarm",
		Moves:            []string{"Stab", "Flee in numbers"},
		Qualities:        []string{"Stealthy", "Cowardly"},
		Description:      "Green and nasty.",
		Reference:        23,
		Setting:          "Test Setting",
		SettingReference: 19,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTagOrderNormalized(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	body := `<p aid:pstyle="MonsterName">Goblin<em>Huge, Group, Tiny</em></p>
<ul><li>Lumber</li></ul>`
	require.NoError(t, p.Parse("t.xml", strings.NewReader(doc(body))))

	m, ok := store.Get("Goblin")
	require.True(t, ok)
	assert.Equal(t, []string{"Group"}, m.TagsOrg)
	assert.Equal(t, []string{"Tiny", "Huge"}, m.TagsSize)
	assert.Empty(t, m.TagsDesc)
}

func TestParseEmphasisInDescription(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	body := `<p aid:pstyle="MonsterName">Fire Beetle</p>
<p aid:pstyle="MonsterDescription">A beetle <em>on fire</em> wandering the woods. <em>Instinct</em>: To burn</p>
<ul><li>Ignite</li></ul>`
	require.NoError(t, p.Parse("beetle.xml", strings.NewReader(doc(body))))

	m, ok := store.Get("Fire Beetle")
	require.True(t, ok)
	assert.Equal(t, "A beetle<i>on fire</i> wandering the woods.", m.Description)
	assert.Equal(t, "To burn", m.Instinct)
}

func TestParseNoIndentLayout(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	body := `<p aid:pstyle="MonsterName">Treant</p>
<p aid:pstyle="MonsterDescription">Ancient tree guardians.</p>
<p aid:pstyle="NoIndent">Slow to rouse, slower to calm.</p>
<p aid:pstyle="NoIndent"><em>Instinct</em>: To guard the forest</p>
<ul><li>Crush</li></ul>`
	require.NoError(t, p.Parse("treant.xml", strings.NewReader(doc(body))))

	m, ok := store.Get("Treant")
	require.True(t, ok)
	assert.Equal(t, "Ancient tree guardians.<br />Slow to rouse, slower to calm.", m.Description)
	assert.Equal(t, "To guard the forest", m.Instinct)
}

func TestParseNoIndentChildWithoutInstinctText(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	body := `<p aid:pstyle="MonsterName">Treant</p>
<p aid:pstyle="NoIndent"><em>Instinct</em></p>
<ul><li>Crush</li></ul>`
	err := p.Parse("treant.xml", strings.NewReader(doc(body)))

	var merr *core.MalformedDocumentError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "treant.xml", merr.Path)
	assert.Equal(t, 0, store.Len())
}

func TestParseStatsBeforeName(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	body := `<p aid:pstyle="MonsterStats">4 HP</p>`
	err := p.Parse("bad.xml", strings.NewReader(doc(body)))

	var merr *core.MalformedDocumentError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 0, store.Len())
}

func TestParseBadHPStat(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	body := `<p aid:pstyle="MonsterName">Goblin</p>
<p aid:pstyle="MonsterStats">many HP</p>
<ul><li>Stab</li></ul>`
	err := p.Parse("bad.xml", strings.NewReader(doc(body)))

	var merr *core.MalformedDocumentError
	require.ErrorAs(t, err, &merr)
}

func TestParseMissingSettingHeading(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	err := p.Parse("bad.xml", strings.NewReader(`<Root><Body></Body></Root>`))
	var merr *core.MalformedDocumentError
	require.ErrorAs(t, err, &merr)
}

func TestParseUnknownSetting(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	err := p.Parse("bad.xml", strings.NewReader(`<Root><h1>Lost Setting</h1><Body></Body></Root>`))
	var rerr *core.UnresolvedReferenceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "setting", rerr.Kind)
	assert.Equal(t, "Lost Setting", rerr.Name)
}

func TestParseUnknownMonsterKeepsEarlierRecords(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	body := goblinBody + `
<p aid:pstyle="MonsterName">Unknown Horror</p>
<ul><li>Lurk</li></ul>`
	err := p.Parse("mixed.xml", strings.NewReader(doc(body)))

	var rerr *core.UnresolvedReferenceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "monster", rerr.Kind)

	// The record committed before the failure survives.
	_, ok := store.Get("Goblin")
	assert.True(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestParseUnclosedRecord(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	body := `<p aid:pstyle="MonsterName">Goblin</p>
<p aid:pstyle="MonsterStats">4 HP</p>`
	err := p.Parse("open.xml", strings.NewReader(doc(body)))

	var merr *core.MalformedDocumentError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 0, store.Len())
}

func TestParseDuplicateAcrossDocumentsLastWins(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	first := `<p aid:pstyle="MonsterName">Goblin</p>
<p aid:pstyle="MonsterStats">4 HP</p>
<ul><li>Stab</li></ul>`
	second := strings.ReplaceAll(`<Root>
<h1>Other Setting</h1>
<Body>
<p aid:pstyle="MonsterName">Goblin</p>
<p aid:pstyle="MonsterStats">6 HP</p>
<ul><li>Stab harder</li></ul>
</Body>
</Root>`, "<TAB>", "\t")

	require.NoError(t, p.Parse("a.xml", strings.NewReader(doc(first))))
	require.NoError(t, p.Parse("b.xml", strings.NewReader(second)))

	m, ok := store.Get("Goblin")
	require.True(t, ok)
	assert.Equal(t, 6, m.HP)
	assert.Equal(t, "Other Setting", m.Setting)
	assert.Equal(t, 40, m.SettingReference)
}

func TestParseWeaponTagFlipFlop(t *testing.T) {
	store := core.NewStore()
	p := NewMarkupParser(testIndex(), store)

	// Two monsters in one document: the flip-flop resets per record.
	body := goblinBody + `
<p aid:pstyle="MonsterName">Treant</p>
<p aid:pstyle="MonsterStats">10 HP<TAB>Limb (d10)</p>
<p aid:pstyle="MonsterStats"><em>Reach, forceful</em></p>
<ul><li>Crush</li></ul>`
	require.NoError(t, p.Parse("two.xml", strings.NewReader(doc(body))))
	require.Equal(t, 2, store.Len())

	m, ok := store.Get("Treant")
	require.True(t, ok)
	assert.Equal(t, 10, m.HP)
	assert.Equal(t, 0, m.Armor)
	assert.Equal(t, "Limb", m.Weapon.Name)
	assert.Equal(t, "d10", m.Weapon.Damage)
	assert.Equal(t, []string{"Reach"}, m.Weapon.TagsRange)
	assert.Equal(t, []string{"forceful"}, m.Weapon.TagsDesc)
}
