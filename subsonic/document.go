package subsonic

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// element is one node of the response document: name, attribute bag and
// children. Every Subsonic endpoint returns the same handful of attributes
// under different element names, so the document is kept generic and the
// normalizer decides what an element means.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
}

// attrMap flattens the element's attributes into a fresh map.
func (e *element) attrMap() map[string]string {
	m := make(map[string]string, len(e.Attrs))
	for _, a := range e.Attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}

// attr returns one attribute value, or "" when absent.
func (e *element) attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// childrenNamed returns the direct children with the given element name, in
// document order.
func (e *element) childrenNamed(name string) []*element {
	var out []*element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// document is one parsed subsonic-response envelope.
type document struct {
	root element
}

func parseDocument(data []byte) (*document, error) {
	var root element
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if root.XMLName.Local != "subsonic-response" {
		return nil, fmt.Errorf("unexpected response root: %s", root.XMLName.Local)
	}
	return &document{root: root}, nil
}

// find returns the first element with the given name, depth-first.
func (d *document) find(name string) *element {
	return findElement(&d.root, name)
}

func findElement(e *element, name string) *element {
	for i := range e.Children {
		child := &e.Children[i]
		if child.XMLName.Local == name {
			return child
		}
		if found := findElement(child, name); found != nil {
			return found
		}
	}
	return nil
}

// protocolError returns the server-reported error, if the envelope carries
// one directly under the response root.
func (d *document) protocolError() *ProtocolError {
	for i := range d.root.Children {
		child := &d.root.Children[i]
		if child.XMLName.Local != "error" {
			continue
		}
		code, _ := strconv.Atoi(child.attr("code"))
		return &ProtocolError{Code: code, Message: child.attr("message")}
	}
	return nil
}
