package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/model"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer/material"
)

// objectCount generates unique IDs for game objects.
var objectCount atomic.Uint64

type gameObject struct {
	id      uint64
	name    string
	enabled atomic.Bool

	mdl model.Model
	mat material.Material

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	parent   *gameObject
	children []GameObject
}

// GameObject is a node of the scene graph. It carries a local transform (position,
// Euler rotation, scale), optional renderable data (model and material), and child
// nodes that inherit its transform. A node without a model is a pure transform group.
type GameObject interface {
	// ID returns the unique identifier assigned at creation.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object label.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled reports whether the object and its subtree are drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Model returns the mesh, or nil for a transform group.
	//
	// Returns:
	//   - model.Model: the model or nil
	Model() model.Model

	// Material returns the surface material, or nil for a transform group.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// Position returns the local translation relative to the parent.
	//
	// Returns:
	//   - x, y, z: translation components
	Position() (x, y, z float32)

	// Rotation returns the local Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation around each axis
	Rotation() (rx, ry, rz float32)

	// Scale returns the local scale.
	//
	// Returns:
	//   - sx, sy, sz: scale along each axis
	Scale() (sx, sy, sz float32)

	// Parent returns the parent node, or nil for a root.
	//
	// Returns:
	//   - GameObject: the parent or nil
	Parent() GameObject

	// Children returns the direct children in insertion order.
	//
	// Returns:
	//   - []GameObject: the children
	Children() []GameObject

	// LocalMatrix composes the local transform.
	//
	// Returns:
	//   - common.Mat4: the local matrix
	LocalMatrix() common.Mat4

	// WorldMatrix composes the local transform with every ancestor's transform.
	//
	// Returns:
	//   - common.Mat4: the world matrix
	WorldMatrix() common.Mat4

	// WorldPosition returns the origin of the object in world space.
	//
	// Returns:
	//   - [3]float32: world-space position
	WorldPosition() [3]float32

	// AddChild attaches child to this node, detaching it from any previous parent.
	//
	// Parameters:
	//   - child: the node to attach
	AddChild(child GameObject)

	// Walk visits this node and then its enabled descendants depth-first.
	// Disabled subtrees are skipped.
	//
	// Parameters:
	//   - fn: visitor called for every enabled node
	Walk(fn func(GameObject))

	// SetEnabled toggles drawing of the object and its subtree.
	//
	// Parameters:
	//   - enabled: true to draw
	SetEnabled(enabled bool)

	// SetPosition sets the local translation.
	//
	// Parameters:
	//   - x, y, z: translation components
	SetPosition(x, y, z float32)

	// SetRotation sets the local Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: rotation around each axis
	SetRotation(rx, ry, rz float32)

	// SetScale sets the local scale.
	//
	// Parameters:
	//   - sx, sy, sz: scale along each axis
	SetScale(sx, sy, sz float32)

	// SetModel replaces the mesh.
	//
	// Parameters:
	//   - m: the model
	SetModel(m model.Model)

	// SetMaterial replaces the material.
	//
	// Parameters:
	//   - m: the material
	SetMaterial(m material.Material)
}

var _ GameObject = &gameObject{}

// NewGameObject creates an enabled node with identity transform and applies the options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the new node
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		id:    objectCount.Add(1),
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Material() material.Material {
	return g.mat
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) Parent() GameObject {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

func (g *gameObject) Children() []GameObject {
	return g.children
}

func (g *gameObject) LocalMatrix() common.Mat4 {
	return common.ModelMatrix(g.position, g.rotation, g.scale)
}

func (g *gameObject) WorldMatrix() common.Mat4 {
	local := g.LocalMatrix()
	if g.parent == nil {
		return local
	}
	return common.Mul4(g.parent.WorldMatrix(), local)
}

func (g *gameObject) WorldPosition() [3]float32 {
	m := g.WorldMatrix()
	return [3]float32{m[12], m[13], m[14]}
}

func (g *gameObject) AddChild(child GameObject) {
	c, ok := child.(*gameObject)
	if !ok || c == g {
		return
	}
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = g
	g.children = append(g.children, c)
}

func (g *gameObject) Walk(fn func(GameObject)) {
	if !g.Enabled() {
		return
	}
	fn(g)
	for _, child := range g.children {
		child.Walk(fn)
	}
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) SetModel(m model.Model) {
	g.mdl = m
}

func (g *gameObject) SetMaterial(m material.Material) {
	g.mat = m
}

// removeChild detaches c from g's child list.
func (g *gameObject) removeChild(c *gameObject) {
	for i, child := range g.children {
		if child == GameObject(c) {
			g.children = append(g.children[:i], g.children[i+1:]...)
			break
		}
	}
	c.parent = nil
}
