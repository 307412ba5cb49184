// Package tracker implements the incremental abbreviation tracking
// state machine: one live tracker per editor instance, updated on every
// content change, with a one-slot cache for undo restore.
package tracker

import (
	"errors"
	"regexp"
	"strings"

	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/emmet"
	"github.com/yaklabco/goemmet/pkg/scanner"
)

// Editor is the adapter contract the tracker requires from a host
// editor. Positions are byte offsets into the document.
type Editor interface {
	// ID identifies the editor instance; trackers are keyed by it.
	ID() string

	// Syntax returns the syntax name at the caret.
	Syntax() string

	// Length returns the current document length.
	Length() int

	// Substr returns document text in [start, end).
	Substr(start, end int) string

	// Replace substitutes the [start, end) range with text.
	Replace(start, end int, text string)
}

// Tracker is the live state of one abbreviation being typed. A tracker
// is either valid (Preview holds the expansion) or failed (Err holds
// the parse error); both keep tracking until the range invalidates.
type Tracker struct {
	Abbreviation string
	Range        [2]int
	Config       *config.Config

	// Forced trackers come from explicit enter-abbreviation commands:
	// they may be empty and survive caret moves outside the range.
	Forced bool

	// Offset is the length of an activation prefix (JSX `<`) included
	// in Range but not part of the abbreviation.
	Offset int

	// Simple reports a plain single-element abbreviation, which editors
	// may expand without showing a preview.
	Simple  bool
	Preview string
	Err     error

	lastPos    int
	lastLength int
}

// Valid reports whether the tracked abbreviation parses.
func (t *Tracker) Valid() bool { return t.Err == nil }

// Contains reports whether a caret position lies within the tracked
// range, edges included.
func (t *Tracker) Contains(pos int) bool {
	return pos >= t.Range[0] && pos <= t.Range[1]
}

// StartParams configure a new tracker.
type StartParams struct {
	Offset int
	Forced bool

	// Config overrides syntax-derived configuration resolution.
	Config *config.Config
}

// StopParams configure tracker teardown.
type StopParams struct {
	// SkipRemove keeps the typed text of a forced tracker in place.
	SkipRemove bool

	// Force drops the undo-restore cache slot as well.
	Force bool
}

// Controller owns the tracking state: one mutable tracker per editor
// instance plus a one-slot restore cache per editor. It is not
// goroutine safe; editor events arrive on a single thread.
type Controller struct {
	active map[string]*Tracker
	cache  map[string]*Tracker
}

// NewController returns an empty tracking controller.
func NewController() *Controller {
	return &Controller{
		active: make(map[string]*Tracker),
		cache:  make(map[string]*Tracker),
	}
}

// Tracker returns the active tracker for an editor, if any.
func (c *Controller) Tracker(ed Editor) *Tracker { return c.active[ed.ID()] }

// StartTracking begins tracking the [start, pos) range as an
// abbreviation. It returns nil when the range holds nothing trackable,
// in which case any previous tracker is dropped.
func (c *Controller) StartTracking(ed Editor, start, pos int, params *StartParams) *Tracker {
	if params == nil {
		params = &StartParams{}
	}
	cfg := params.Config
	if cfg == nil {
		resolved, err := config.Resolve(&config.UserConfig{Syntax: ed.Syntax()})
		if err != nil {
			return nil
		}
		cfg = resolved
	}

	t := createTracker(ed, [2]int{start, pos}, cfg, params)
	if t == nil {
		c.StopTracking(ed, &StopParams{SkipRemove: true})
		return nil
	}
	c.active[ed.ID()] = t
	return t
}

// StopTracking drops the active tracker. Forced trackers have their
// typed contents removed unless SkipRemove is set; the tracker is kept
// in the restore cache unless Force is set.
func (c *Controller) StopTracking(ed Editor, params *StopParams) {
	t := c.active[ed.ID()]
	if t == nil {
		return
	}
	if params == nil {
		params = &StopParams{}
	}
	if !params.SkipRemove && t.Forced {
		ed.Replace(t.Range[0], t.Range[1], "")
	}
	if params.Force {
		delete(c.cache, ed.ID())
	} else {
		c.cache[ed.ID()] = t
	}
	delete(c.active, ed.ID())
}

// HandleChange applies a content-change event: the tracked range is
// recomputed from the document length delta, then the abbreviation is
// re-parsed. pos is the caret position after the change.
func (c *Controller) HandleChange(ed Editor, pos int) *Tracker {
	t := c.active[ed.ID()]
	if t == nil {
		return nil
	}

	lastPos := t.lastPos
	start, end := t.Range[0], t.Range[1]
	if lastPos < start || lastPos > end {
		// The edit happened outside the abbreviation.
		c.StopTracking(ed, nil)
		return nil
	}

	length := ed.Length()
	delta := length - t.lastLength

	if delta < 0 {
		if lastPos == start {
			// Deletion at the left edge shifts the whole range.
			start += delta
			end += delta
		} else if start < lastPos && lastPos <= end {
			end += delta
		}
	} else if delta > 0 && start <= lastPos && lastPos <= end {
		end += delta
	}

	if end < start || (start == end && !t.Forced) {
		c.StopTracking(ed, nil)
		return nil
	}

	next := c.StartTracking(ed, start, end, &StartParams{
		Offset: t.Offset,
		Forced: t.Forced,
		Config: t.Config,
	})
	if next != nil {
		next.lastPos = pos
		if next.Err != nil && delta > 0 && pos == end && offendsLastChar(next) {
			// The character just typed is itself the parse error and is
			// not a closing character being typed through.
			c.StopTracking(ed, nil)
			return nil
		}
	}
	return next
}

// HandleSelectionChange applies a caret move: moving outside a
// non-forced tracker stops it, moving into a cached range after an undo
// restores the tracker.
func (c *Controller) HandleSelectionChange(ed Editor, caret int) *Tracker {
	t := c.active[ed.ID()]
	if t == nil {
		t = c.restoreFromCache(ed, caret)
		if t == nil {
			return nil
		}
	}
	if !t.Contains(caret) && !t.Forced {
		c.StopTracking(ed, nil)
		return nil
	}
	t.lastPos = caret
	return t
}

// Commit expands the tracked abbreviation into the editor, replacing
// the tracked range, and drops the tracker for good.
func (c *Controller) Commit(ed Editor) (string, error) {
	t := c.active[ed.ID()]
	if t == nil {
		return "", errors.New("no abbreviation is being tracked")
	}
	if t.Err != nil {
		return "", t.Err
	}

	out, err := emmet.ExpandWith(t.Abbreviation, t.Config)
	if err != nil {
		return "", err
	}
	ed.Replace(t.Range[0], t.Range[1], out)
	c.StopTracking(ed, &StopParams{SkipRemove: true, Force: true})
	return out, nil
}

func (c *Controller) restoreFromCache(ed Editor, caret int) *Tracker {
	t := c.cache[ed.ID()]
	if t == nil || ed.Length() != t.lastLength || !t.Contains(caret) {
		return nil
	}
	if !strings.HasSuffix(ed.Substr(t.Range[0], t.Range[1]), t.Abbreviation) {
		return nil
	}
	delete(c.cache, ed.ID())
	c.active[ed.ID()] = t
	return t
}

var reSectionProperty = regexp.MustCompile(`^[a-z-]+\s*:\s*;?$`)

func createTracker(ed Editor, rng [2]int, cfg *config.Config, params *StartParams) *Tracker {
	if rng[0] > rng[1] || (rng[0] == rng[1] && !params.Forced) {
		return nil
	}

	abbreviation := ed.Substr(rng[0], rng[1])
	if params.Offset > 0 && params.Offset <= len(abbreviation) {
		abbreviation = abbreviation[params.Offset:]
	}
	if abbreviation == "" && !params.Forced {
		return nil
	}
	if strings.ContainsAny(abbreviation, "\r\n") {
		return nil
	}

	t := &Tracker{
		Abbreviation: abbreviation,
		Range:        rng,
		Config:       cfg,
		Forced:       params.Forced,
		Offset:       params.Offset,
		lastPos:      rng[1],
		lastLength:   ed.Length(),
	}
	if abbreviation == "" {
		return t
	}

	preview, err := emmet.ExpandWith(abbreviation, cfg)
	if err != nil {
		t.Err = err
		return t
	}

	// Between CSS rules almost any word parses as `name: ;`. Do not
	// hijack plain selector typing over it.
	if !params.Forced &&
		cfg.Type == config.TypeStylesheet &&
		cfg.Context != nil && cfg.Context.Name == config.ScopeSection &&
		(preview == "" || reSectionProperty.MatchString(preview)) {
		return nil
	}

	t.Preview = preview
	t.Simple = isSimpleAbbreviation(abbreviation, cfg)
	return t
}

var reSimpleName = regexp.MustCompile(`^[a-zA-Z.#]`)

// isSimpleAbbreviation reports a markup abbreviation consisting of at
// most one plain element.
func isSimpleAbbreviation(source string, cfg *config.Config) bool {
	if cfg.Type == config.TypeStylesheet {
		return false
	}
	tree, err := abbr.Parse(source, &abbr.ParseOptions{JSX: cfg.Options.JSXEnabled})
	if err != nil {
		return false
	}
	if len(tree.Children) == 0 {
		return true
	}
	if len(tree.Children) > 1 || len(tree.Children[0].Children) > 0 {
		return false
	}
	first := tree.Children[0]
	return first.Name == "" || reSimpleName.MatchString(first.Name)
}

// offendsLastChar reports whether the tracker's parse error points at
// the final character and that character is not a closing brace or
// quote an editor auto-inserts.
func offendsLastChar(t *Tracker) bool {
	var serr *scanner.Error
	if !errors.As(t.Err, &serr) {
		return false
	}
	if serr.Pos != len(t.Abbreviation)-1 {
		return false
	}
	last := t.Abbreviation[len(t.Abbreviation)-1]
	return !strings.ContainsRune(")]}'\"", rune(last))
}

// CanStartTyping reports whether the character at pos may begin an
// abbreviation: a start character typed at a word boundary.
func CanStartTyping(line string, pos int) bool {
	if pos < 0 || pos >= len(line) {
		return false
	}
	if !isStartChar(line[pos]) {
		return false
	}
	if pos == 0 {
		return true
	}
	return isBoundChar(line[pos-1])
}

func isStartChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
		ch == '.' || ch == '#' || ch == '!' || ch == '@' || ch == '[' || ch == '('
}

func isBoundChar(ch byte) bool {
	switch ch {
	case ' ', '\t', '>', '(', '[', '{', ';', '"', '\'':
		return true
	}
	return false
}
