package canopy

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateName is returned by LoadLayout when two widgets in one
// document share a name.
var ErrDuplicateName = errors.New("canopy: duplicate widget name in layout")

// layoutDoc is the top-level YAML structure for a layout document.
type layoutDoc struct {
	Widgets []layoutNode `yaml:"widgets"`
}

// layoutNode is one widget in a layout document. Vector fields are plain
// sequences so that documents read like the attribute map:
//
//	widgets:
//	  - name: panel
//	    anchor: [0.5, 0.5]
//	    pivot: [0.5, 0.5]
//	    size: [320, 200]
//	    color: [0.1, 0.1, 0.15]
//	    children:
//	      - name: ok
//	        kind: button
//	        text: OK
type layoutNode struct {
	Name         string         `yaml:"name"`
	Kind         string         `yaml:"kind"`
	Size         []float64      `yaml:"size"`
	AutoSize     []float64      `yaml:"autoSize"`
	Border       []float64      `yaml:"border"`
	Translation  []float64      `yaml:"translation"`
	Anchor       []float64      `yaml:"anchor"`
	Pivot        []float64      `yaml:"pivot"`
	Color        []float64      `yaml:"color"`
	TextColor    []float64      `yaml:"textColor"`
	Text         *string        `yaml:"text"`
	Align        string         `yaml:"align"`
	Interactable *bool          `yaml:"interactable"`
	Visible      *bool          `yaml:"visible"`
	Attrs        map[string]any `yaml:"attrs"`
	Children     []layoutNode   `yaml:"children"`
}

// options converts the node into an attribute map. Only fields present in
// the document are included so kind defaults stay in effect.
func (n *layoutNode) options(parent *Widget) Options {
	opts := Options{AttrParent: parent}
	if n.Name != "" {
		opts[AttrName] = n.Name
	}
	for attr, vals := range map[Attr][]float64{
		AttrSize:        n.Size,
		AttrAutoSize:    n.AutoSize,
		AttrBorder:      n.Border,
		AttrTranslation: n.Translation,
		AttrAnchor:      n.Anchor,
		AttrPivot:       n.Pivot,
		AttrColor:       n.Color,
		AttrTextColor:   n.TextColor,
	} {
		if vals != nil {
			opts[attr] = vals
		}
	}
	if n.Text != nil {
		opts[AttrText] = *n.Text
	}
	if n.Align != "" {
		opts[AttrAlign] = n.Align
	}
	if n.Interactable != nil {
		opts[AttrInteractable] = *n.Interactable
	}
	if n.Visible != nil {
		opts[AttrVisible] = *n.Visible
	}
	for k, val := range n.Attrs {
		opts[Attr(k)] = val
	}
	return opts
}

// LoadLayout parses a YAML layout document and builds its widgets under
// parent (nil builds unparented top-level widgets). It returns the created
// widgets indexed by name; unnamed widgets are built but not indexed.
//
// On error every widget created so far is destroyed.
func LoadLayout(v *View, data []byte, parent *Widget) (map[string]*Widget, error) {
	var doc layoutDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("canopy: parse layout: %w", err)
	}

	index := make(map[string]*Widget)
	var created []*Widget
	var build func(n *layoutNode, parent *Widget, path string) error
	build = func(n *layoutNode, parent *Widget, path string) error {
		kindName := n.Kind
		if kindName == "" {
			kindName = KindPanel.name
		}
		kind, ok := LookupKind(kindName)
		if !ok {
			return fmt.Errorf("canopy: layout %s: %w: %q", path, ErrUnknownKind, kindName)
		}
		if n.Name != "" {
			if _, dup := index[n.Name]; dup {
				return fmt.Errorf("canopy: layout %s: %w: %q", path, ErrDuplicateName, n.Name)
			}
		}
		w, err := New(v, kind, n.options(parent))
		if err != nil {
			return fmt.Errorf("canopy: layout %s: %w", path, err)
		}
		created = append(created, w)
		if n.Name != "" {
			index[n.Name] = w
		}
		for i := range n.Children {
			if err := build(&n.Children[i], w, fmt.Sprintf("%s/%d", path, i)); err != nil {
				return err
			}
		}
		return nil
	}

	for i := range doc.Widgets {
		if err := build(&doc.Widgets[i], parent, fmt.Sprintf("widgets/%d", i)); err != nil {
			for _, w := range created {
				w.Destroy()
			}
			return nil, err
		}
	}
	return index, nil
}
