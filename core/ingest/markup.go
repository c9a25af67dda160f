// Package ingest builds canonical monster records from the two source
// formats: paragraph-styled markup documents and structured YAML
// records. Completed records are committed to the shared store; a
// failure aborts the offending source only.
package ingest

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/monsterdeck/core"
	"github.com/gaurav-prasanna/monsterdeck/core/index"
	"github.com/gaurav-prasanna/monsterdeck/core/tags"
)

// Paragraph style labels carried by the page-layout markup.
const (
	styleAttr        = "aid:pstyle"
	styleName        = "MonsterName"
	styleStats       = "MonsterStats"
	styleQualities   = "MonsterQualities"
	styleDescription = "MonsterDescription"
	styleNoIndent    = "NoIndent"
)

// statsState tracks which stats-styled element the parser expects next.
// The first stats element of a monster carries HP, armor, and the
// weapon name/damage; the second carries the weapon tags; then the
// cycle repeats.
type statsState int

const (
	awaitingPrimaryStats statsState = iota
	awaitingWeaponTags
)

// MarkupParser ingests paragraph-styled markup documents, one setting
// per document, resolving page references through the index.
type MarkupParser struct {
	idx   *index.Index
	store *core.Store
}

// NewMarkupParser creates a parser committing into store.
func NewMarkupParser(idx *index.Index, store *core.Store) *MarkupParser {
	return &MarkupParser{idx: idx, store: store}
}

// ParseFile ingests one markup document from disk.
func (p *MarkupParser) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return p.Parse(path, f)
}

// Parse ingests one markup document. The document's first heading names
// the setting; every record built from the document carries the setting
// and its page reference. Records are committed as their closing move
// list is seen, so a structural error later in the document leaves
// earlier records in the store.
func (p *MarkupParser) Parse(path string, r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("parsing markup %s: %w", path, err)
	}

	heading := doc.Find("h1").First()
	if heading.Length() == 0 {
		return &core.MalformedDocumentError{Path: path, Msg: "missing setting heading"}
	}
	setting := strings.TrimSpace(heading.Text())
	settingRef, ok := p.idx.Setting(setting)
	if !ok {
		return &core.UnresolvedReferenceError{Kind: "setting", Name: setting, Path: path}
	}

	w := walker{
		path:       path,
		setting:    setting,
		settingRef: settingRef,
		idx:        p.idx,
		store:      p.store,
	}

	var werr error
	doc.Find("p, ul").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		werr = w.element(i+1, sel)
		return werr == nil
	})
	if werr != nil {
		return werr
	}
	if w.rec != nil {
		return &core.MalformedDocumentError{Path: path, Msg: fmt.Sprintf("document ended before record %q was closed by a move list", w.rec.Name)}
	}
	return nil
}

// walker is the explicit accumulator threaded through one document:
// the in-progress record plus the stats flip-flop state.
type walker struct {
	path       string
	setting    string
	settingRef int
	idx        *index.Index
	store      *core.Store

	rec   *core.Monster
	state statsState
}

func (w *walker) element(pos int, sel *goquery.Selection) error {
	node := sel.Get(0)

	if node.Data == "ul" {
		return w.moveList(pos, sel)
	}

	style := sel.AttrOr(styleAttr, "")
	if style == styleName {
		return w.monsterName(pos, node)
	}

	// Every other recognized style mutates the record in progress.
	if w.rec == nil {
		switch style {
		case styleStats, styleQualities, styleDescription, styleNoIndent:
			return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: fmt.Sprintf("%s element before any monster name", style)}
		}
		return nil
	}

	switch style {
	case styleStats:
		return w.stats(pos, node)
	case styleQualities:
		return w.qualities(pos, node)
	case styleDescription:
		w.description(node)
	case styleNoIndent:
		return w.noIndent(pos, node)
	}
	return nil
}

// monsterName starts a new record: name from the element text, page
// reference from the index, monster tags from the first child.
func (w *walker) monsterName(pos int, node *html.Node) error {
	if w.rec != nil {
		return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: fmt.Sprintf("monster name before record %q was closed by a move list", w.rec.Name)}
	}
	name := strings.TrimSpace(directText(node))
	if name == "" {
		return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: "monster name element has no text"}
	}
	ref, ok := w.idx.Monster(name)
	if !ok {
		return &core.UnresolvedReferenceError{Kind: "monster", Name: name, Path: w.path}
	}
	w.rec = &core.Monster{
		Name:             name,
		Reference:        ref,
		Setting:          w.setting,
		SettingReference: w.settingRef,
	}
	w.state = awaitingPrimaryStats
	if kids := childElements(node); len(kids) > 0 {
		w.rec.TagsOrg, w.rec.TagsSize, w.rec.TagsDesc = tags.ClassifyMonster(nodeText(kids[0]))
	}
	return nil
}

// stats handles the two-phase stats flip-flop: the primary line first,
// the weapon tag line second.
func (w *walker) stats(pos int, node *html.Node) error {
	if w.state == awaitingWeaponTags {
		kids := childElements(node)
		if len(kids) == 0 {
			return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: "weapon tag element has no child"}
		}
		w.rec.Weapon.TagsRange, w.rec.Weapon.TagsDesc = tags.ClassifyWeapon(nodeText(kids[0]))
		w.state = awaitingPrimaryStats
		return nil
	}

	for _, stat := range strings.Split(directText(node), "\t") {
		stat = strings.TrimSpace(stat)
		switch {
		case strings.HasSuffix(stat, ")"):
			name, damage, found := strings.Cut(stat, "(")
			if !found {
				return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: fmt.Sprintf("weapon stat %q has no damage", stat)}
			}
			w.rec.Weapon.Name = strings.TrimSpace(name)
			w.rec.Weapon.Damage = strings.TrimSpace(strings.TrimSuffix(damage, ")"))
		case strings.HasSuffix(stat, "HP"):
			n, err := leadingInt(stat)
			if err != nil {
				return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: fmt.Sprintf("bad HP stat %q", stat)}
			}
			w.rec.HP = n
		case strings.HasSuffix(stat, "Armor"):
			n, err := leadingInt(stat)
			if err != nil {
				return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: fmt.Sprintf("bad armor stat %q", stat)}
			}
			w.rec.Armor = n
		}
	}
	w.state = awaitingWeaponTags
	return nil
}

// qualities reads the comma-separated list trailing the label child.
func (w *walker) qualities(pos int, node *html.Node) error {
	kids := childElements(node)
	if len(kids) == 0 {
		return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: "qualities element has no label child"}
	}
	for _, q := range strings.Split(tailText(kids[0]), ",") {
		if q = strings.TrimSpace(q); q != "" {
			w.rec.Qualities = append(w.rec.Qualities, q)
		}
	}
	return nil
}

// description starts or extends the description. A child whose text is
// the literal "Instinct" marker diverts its trailing text into the
// instinct field; other children contribute their text (emphasis
// children wrapped in <i> markup) and trailing text in document order.
func (w *walker) description(node *html.Node) {
	if t := strings.TrimSpace(directText(node)); t != "" {
		w.rec.Description = t
	}
	for _, child := range childElements(node) {
		if strings.TrimSpace(nodeText(child)) == "Instinct" {
			w.rec.Instinct = stripInstinct(tailText(child))
			continue
		}
		if text := nodeText(child); text != "" {
			if child.Data == "em" {
				text = "<i>" + text + "</i>"
			}
			w.rec.Description += text
		}
		w.rec.Description += tailText(child)
	}
}

// noIndent handles the free-standing layout some records use: plain
// text continues the description after a line break, and a child
// element's trailing text carries the instinct. The instinct source is
// scoped to this element's own first child; a child with no trailing
// text is a structural error.
func (w *walker) noIndent(pos int, node *html.Node) error {
	if t := strings.TrimSpace(directText(node)); t != "" {
		w.rec.Description += "<br />" + t
	}
	if kids := childElements(node); len(kids) > 0 {
		instinct := stripInstinct(tailText(kids[0]))
		if instinct == "" {
			return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: "indented element child carries no instinct text"}
		}
		w.rec.Instinct = instinct
	}
	return nil
}

// moveList appends every item to the record's moves and closes the
// record, committing it to the store.
func (w *walker) moveList(pos int, sel *goquery.Selection) error {
	if w.rec == nil {
		return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: "move list before any monster name"}
	}
	sel.Find("li").Each(func(_ int, li *goquery.Selection) {
		if move := strings.TrimSpace(li.Text()); move != "" {
			w.rec.Moves = append(w.rec.Moves, move)
		}
	})
	w.rec.Description = strings.TrimSpace(w.rec.Description)
	if err := w.store.Add(w.rec); err != nil {
		return &core.MalformedDocumentError{Path: w.path, Element: pos, Msg: err.Error()}
	}
	w.rec = nil
	w.state = awaitingPrimaryStats
	return nil
}

func stripInstinct(tail string) string {
	t := strings.TrimSpace(tail)
	t = strings.TrimPrefix(t, ":")
	return strings.TrimSpace(t)
}

// leadingInt parses the integer before the first space of a stat token
// like "4 HP" or "2 Armor".
func leadingInt(stat string) (int, error) {
	lead, _, _ := strings.Cut(stat, " ")
	return strconv.Atoi(lead)
}

// directText returns the text preceding the first child element,
// mirroring how the layout markup places a paragraph's own text.
func directText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			break
		}
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// tailText returns the text between n and its next sibling element.
func tailText(n *html.Node) string {
	var b strings.Builder
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			break
		}
		if s.Type == html.TextNode {
			b.WriteString(s.Data)
		}
	}
	return b.String()
}

// childElements returns the element children of n in document order.
func childElements(n *html.Node) []*html.Node {
	var kids []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			kids = append(kids, c)
		}
	}
	return kids
}

// nodeText concatenates all text inside n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			walk(gc)
		}
	}
	walk(n)
	return b.String()
}
