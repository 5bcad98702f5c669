package kml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Element names are matched case-insensitively on their local name, KML exports in the
// wild are not consistent about casing.
const (
	documentElement = "Document"
	overlayElement  = "GroundOverlay"
	boxElement      = "LatLonBox"
)

// node is a generic XML element with its direct character data and children
type node struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
	Nodes   []node `xml:",any"`
}

// Overlay is one GroundOverlay element, exposing its named fields as trimmed text
type Overlay struct {
	Position int // 1-based position of the element in the document
	element  *node
	box      *node
}

// Parse reads all GroundOverlay elements of a KML document's Document element
func Parse(data []byte) ([]Overlay, error) {
	var root node
	err := xml.NewDecoder(bytes.NewReader(data)).Decode(&root)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to parse overlay document")
	}

	var overlays []Overlay
	for _, document := range root.findAll(documentElement) {
		for _, element := range document.findAll(overlayElement) {
			overlays = append(overlays, Overlay{
				Position: len(overlays) + 1,
				element:  element,
				box:      element.find(boxElement),
			})
		}
	}

	return overlays, nil
}

// Field returns the text of the first element with the given name below the overlay
func (o Overlay) Field(name string) (string, bool) {
	n := o.element.find(name)
	if n == nil {
		return "", false
	}
	return strings.TrimSpace(n.Text), true
}

// HasBox reports whether the overlay has a LatLonBox
func (o Overlay) HasBox() bool {
	return o.box != nil
}

// BoxField returns the text of the named element of the overlay's LatLonBox
func (o Overlay) BoxField(name string) (string, bool) {
	if o.box == nil {
		return "", false
	}
	n := o.box.find(name)
	if n == nil {
		return "", false
	}
	return strings.TrimSpace(n.Text), true
}

// String identifies the overlay for diagnostics
func (o Overlay) String() string {
	if name, ok := o.Field("name"); ok && name != "" {
		return fmt.Sprintf("%s #%d (name '%s')", overlayElement, o.Position, name)
	}
	return fmt.Sprintf("%s #%d", overlayElement, o.Position)
}

// find returns the first descendant in document order with the given local name
func (n *node) find(name string) *node {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if strings.EqualFold(child.XMLName.Local, name) {
			return child
		}
		if found := child.find(name); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns all descendants with the given local name, n itself included. Matches
// are not searched for nested matches.
func (n *node) findAll(name string) []*node {
	if strings.EqualFold(n.XMLName.Local, name) {
		return []*node{n}
	}

	var result []*node
	for i := range n.Nodes {
		result = append(result, n.Nodes[i].findAll(name)...)
	}
	return result
}
