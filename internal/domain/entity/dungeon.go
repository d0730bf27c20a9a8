package entity

import "image"

// NodeType is the kind of room on the dungeon map
type NodeType int

const (
	NodeNormal NodeType = iota
	NodeElite
	NodeRest
	NodeMerchant
	NodeBoss
)

// String returns the string representation of the node type
func (t NodeType) String() string {
	switch t {
	case NodeNormal:
		return "normal"
	case NodeElite:
		return "elite"
	case NodeRest:
		return "rest"
	case NodeMerchant:
		return "merchant"
	case NodeBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// NodeRadius is the clickable radius of a map node in pixels
const NodeRadius = 30

// MapNode is one room on the dungeon map
type MapNode struct {
	Type NodeType
	Pos  image.Point
}

// Contains reports whether p lies inside the node circle
func (n MapNode) Contains(p image.Point) bool {
	d := p.Sub(n.Pos)
	return d.X*d.X+d.Y*d.Y <= NodeRadius*NodeRadius
}

// Dungeon is a floor of connected map nodes, walked in slice order
type Dungeon struct {
	Floor int
	Nodes []MapNode
}

// NewDungeon returns the first floor layout
func NewDungeon() *Dungeon {
	return &Dungeon{
		Floor: 1,
		Nodes: []MapNode{
			{Type: NodeNormal, Pos: image.Pt(100, 500)},
			{Type: NodeElite, Pos: image.Pt(250, 400)},
			{Type: NodeRest, Pos: image.Pt(400, 450)},
			{Type: NodeMerchant, Pos: image.Pt(550, 350)},
			{Type: NodeBoss, Pos: image.Pt(700, 500)},
		},
	}
}

// NodeAt returns the first node under p
func (d *Dungeon) NodeAt(p image.Point) (MapNode, bool) {
	for _, n := range d.Nodes {
		if n.Contains(p) {
			return n, true
		}
	}
	return MapNode{}, false
}
