package yml

import (
	"strings"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

// Category is one node of the shop category tree. ParentID is empty for
// top-level categories.
type Category struct {
	ID       string
	Name     string
	ParentID string
}

func NewCategory(id, name, parentID string) (*Category, error) {
	if id == "" {
		return nil, errRequired("category id")
	}
	if name == "" {
		return nil, errRequired("category name")
	}
	return &Category{ID: id, Name: name, ParentID: parentID}, nil
}

func (c *Category) Dict() *Dict {
	d := NewDict()
	d.Set("id", c.ID)
	d.Set("name", c.Name)
	d.Set("parent_id", strOrNil(c.ParentID))
	return d
}

// ToXML renders <category id [parent_id]>name</category>.
func (c *Category) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := xmltree.NewElement("category")
	el.SetAttr("id", c.ID)
	if c.ParentID != "" {
		el.SetAttr("parent_id", c.ParentID)
	}
	el.SetText(c.Name)
	if parent != nil {
		parent.Append(el)
	}
	return el
}

func CategoryFromXML(el *xmltree.Element) (*Category, error) {
	id, _ := el.Attr("id")
	parentID, _ := el.Attr("parent_id")
	return NewCategory(id, strings.TrimSpace(el.Text()), parentID)
}
