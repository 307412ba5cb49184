package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goemmet/pkg/config"
)

type fakeEditor struct {
	id     string
	syntax string
	text   string
}

func newEditor(text string) *fakeEditor {
	return &fakeEditor{id: "ed1", syntax: "html", text: text}
}

func (e *fakeEditor) ID() string     { return e.id }
func (e *fakeEditor) Syntax() string { return e.syntax }
func (e *fakeEditor) Length() int    { return len(e.text) }

func (e *fakeEditor) Substr(start, end int) string { return e.text[start:end] }

func (e *fakeEditor) Replace(start, end int, text string) {
	e.text = e.text[:start] + text + e.text[end:]
}

func (e *fakeEditor) insert(pos int, text string) { e.Replace(pos, pos, text) }
func (e *fakeEditor) remove(start, end int)       { e.Replace(start, end, "") }

func TestStartTracking(t *testing.T) {
	c := NewController()
	ed := newEditor("div")

	tr := c.StartTracking(ed, 0, 3, nil)
	require.NotNil(t, tr)
	assert.True(t, tr.Valid())
	assert.Equal(t, "div", tr.Abbreviation)
	assert.Equal(t, [2]int{0, 3}, tr.Range)
	assert.Equal(t, "<div></div>", tr.Preview)
	assert.True(t, tr.Simple)
	assert.Same(t, tr, c.Tracker(ed))
}

func TestStartTrackingRejectsEmptyAndMultiline(t *testing.T) {
	c := NewController()

	assert.Nil(t, c.StartTracking(newEditor("div"), 2, 2, nil))
	assert.Nil(t, c.StartTracking(newEditor("a\nb"), 0, 3, nil))
}

func TestInsertGrowsRange(t *testing.T) {
	c := NewController()
	ed := newEditor("ulli")
	require.NotNil(t, c.StartTracking(ed, 0, 4, nil))

	// Caret moves inside, then a character is inserted there.
	require.NotNil(t, c.HandleSelectionChange(ed, 2))
	ed.insert(2, ">")
	tr := c.HandleChange(ed, 3)

	require.NotNil(t, tr)
	assert.Equal(t, [2]int{0, 5}, tr.Range)
	assert.Equal(t, "ul>li", tr.Abbreviation)
	assert.False(t, tr.Simple)
}

func TestDeleteShrinksRange(t *testing.T) {
	c := NewController()
	ed := newEditor("ul>li")
	require.NotNil(t, c.StartTracking(ed, 0, 5, nil))

	require.NotNil(t, c.HandleSelectionChange(ed, 3))
	ed.remove(2, 3)
	tr := c.HandleChange(ed, 2)

	require.NotNil(t, tr)
	assert.Equal(t, [2]int{0, 4}, tr.Range)
	assert.Equal(t, "ulli", tr.Abbreviation)
}

func TestDeleteEverythingStopsTracking(t *testing.T) {
	c := NewController()
	ed := newEditor("d")
	require.NotNil(t, c.StartTracking(ed, 0, 1, nil))

	ed.remove(0, 1)
	assert.Nil(t, c.HandleChange(ed, 0))
	assert.Nil(t, c.Tracker(ed))
}

func TestCaretOutsideStopsTracking(t *testing.T) {
	c := NewController()
	ed := newEditor("before div")
	require.NotNil(t, c.StartTracking(ed, 7, 10, nil))

	assert.Nil(t, c.HandleSelectionChange(ed, 2))
	assert.Nil(t, c.Tracker(ed))
}

func TestForcedTracker(t *testing.T) {
	c := NewController()
	ed := newEditor("text ")

	tr := c.StartTracking(ed, 5, 5, &StartParams{Forced: true})
	require.NotNil(t, tr)
	assert.True(t, tr.Valid())
	assert.Equal(t, "", tr.Abbreviation)

	// Forced trackers survive caret excursions.
	require.NotNil(t, c.HandleSelectionChange(ed, 0))
	assert.NotNil(t, c.Tracker(ed))
}

func TestForcedCancelRemovesContents(t *testing.T) {
	c := NewController()
	ed := newEditor("text ")
	require.NotNil(t, c.StartTracking(ed, 5, 5, &StartParams{Forced: true}))

	ed.insert(5, "p")
	require.NotNil(t, c.HandleChange(ed, 6))

	c.StopTracking(ed, nil)
	assert.Equal(t, "text ", ed.text)
}

func TestErrorState(t *testing.T) {
	c := NewController()
	ed := newEditor("(div")

	tr := c.StartTracking(ed, 0, 4, nil)
	require.NotNil(t, tr)
	assert.False(t, tr.Valid())
	assert.Error(t, tr.Err)
}

func TestCommit(t *testing.T) {
	c := NewController()
	ed := newEditor("ul>li.item$*2")
	require.NotNil(t, c.StartTracking(ed, 0, 13, nil))

	out, err := c.Commit(ed)
	require.NoError(t, err)
	want := "<ul>\n\t<li class=\"item1\"></li>\n\t<li class=\"item2\"></li>\n</ul>"
	assert.Equal(t, want, out)
	assert.Equal(t, want, ed.text)
	assert.Nil(t, c.Tracker(ed))

	_, err = c.Commit(ed)
	assert.Error(t, err)
}

func TestUndoRestore(t *testing.T) {
	c := NewController()
	ed := newEditor("div")
	require.NotNil(t, c.StartTracking(ed, 0, 3, nil))

	c.StopTracking(ed, nil)
	assert.Nil(t, c.Tracker(ed))

	// Same document, caret back inside the old range.
	tr := c.HandleSelectionChange(ed, 2)
	require.NotNil(t, tr)
	assert.Equal(t, "div", tr.Abbreviation)
	assert.Same(t, tr, c.Tracker(ed))
}

func TestUndoRestoreRejectsChangedText(t *testing.T) {
	c := NewController()
	ed := newEditor("div")
	require.NotNil(t, c.StartTracking(ed, 0, 3, nil))
	c.StopTracking(ed, nil)

	ed.text = "xyz"
	assert.Nil(t, c.HandleSelectionChange(ed, 2))
}

func TestStylesheetSectionGuard(t *testing.T) {
	cfg, err := config.Resolve(&config.UserConfig{
		Syntax:  "css",
		Context: &config.Context{Name: config.ScopeSection},
	})
	require.NoError(t, err)

	c := NewController()
	ed := newEditor("font")
	ed.syntax = "css"

	// A bare word between rules is selector typing, not an abbreviation.
	assert.Nil(t, c.StartTracking(ed, 0, 4, &StartParams{Config: cfg}))

	ed = newEditor("@m")
	ed.syntax = "css"
	tr := c.StartTracking(ed, 0, 2, &StartParams{Config: cfg})
	require.NotNil(t, tr)
	assert.Contains(t, tr.Preview, "@media")
}

func TestStylesheetPreview(t *testing.T) {
	c := NewController()
	ed := newEditor("m10-20")
	ed.syntax = "css"

	tr := c.StartTracking(ed, 0, 6, nil)
	require.NotNil(t, tr)
	assert.Equal(t, "margin: 10px -20px;", tr.Preview)
	assert.False(t, tr.Simple)
}

func TestOffsetPrefix(t *testing.T) {
	c := NewController()
	ed := newEditor("<div")
	ed.syntax = "jsx"

	tr := c.StartTracking(ed, 0, 4, &StartParams{Offset: 1})
	require.NotNil(t, tr)
	assert.Equal(t, "div", tr.Abbreviation)
	assert.Equal(t, [2]int{0, 4}, tr.Range)
}

func TestCanStartTyping(t *testing.T) {
	assert.True(t, CanStartTyping("d", 0))
	assert.True(t, CanStartTyping("foo d", 4))
	assert.True(t, CanStartTyping("<p>.", 3))
	assert.False(t, CanStartTyping("word", 3))
	assert.False(t, CanStartTyping("foo 1", 4))
	assert.False(t, CanStartTyping("d", 5))
}
