package scene

import (
	"errors"
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/math3"
	"github.com/cj-mills/trimotion/studio/mesh"
	"github.com/cj-mills/trimotion/studio/shading"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultCollectionName is the collection every new object links into.
const DefaultCollectionName = "Collection"

// Object places a datablock in the scene: a mesh, a camera, or nothing at
// all. The transform is public state; everything else moves through
// methods.
type Object struct {
	handle    core.Handle
	name      string
	Transform Transform
	mesh      *mesh.Mesh
	camera    *Camera
	slots     []*shading.Material
}

func (o *Object) Handle() core.Handle {
	return o.handle
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) Mesh() *mesh.Mesh {
	return o.mesh
}

func (o *Object) SetMesh(m *mesh.Mesh) {
	o.mesh = m
}

// Camera returns the lens datablock, nil for non-camera objects.
func (o *Object) Camera() *Camera {
	return o.camera
}

func (o *Object) IsCamera() bool {
	return o.camera != nil
}

func (o *Object) SlotCount() int {
	return len(o.slots)
}

// Material returns the material in slot i.
func (o *Object) Material(i int) (*shading.Material, error) {
	if i < 0 || i >= len(o.slots) {
		return nil, fmt.Errorf("material slot %d of %d on %q: %w", i, len(o.slots), o.name, core.ErrIndexOutOfRange)
	}
	return o.slots[i], nil
}

// SetMaterial replaces the material in an existing slot.
func (o *Object) SetMaterial(i int, m *shading.Material) error {
	if i < 0 || i >= len(o.slots) {
		return fmt.Errorf("material slot %d of %d on %q: %w", i, len(o.slots), o.name, core.ErrIndexOutOfRange)
	}
	o.slots[i] = m
	return nil
}

// AppendMaterial adds a new slot holding m.
func (o *Object) AppendMaterial(m *shading.Material) {
	o.slots = append(o.slots, m)
}

func (o *Object) Materials() []*shading.Material {
	return append([]*shading.Material(nil), o.slots...)
}

// SetOriginToGeometry moves the object origin to the centroid of its mesh.
// The mesh shifts so the centroid lands on local zero and the object
// location compensates, keeping the geometry fixed in world space. Only
// this object's transform is compensated, so meshes shared between objects
// should be duplicated first.
func (o *Object) SetOriginToGeometry() error {
	if o.mesh == nil {
		return fmt.Errorf("set origin on %q without mesh data: %w", o.name, core.ErrResourceUnavailable)
	}
	centroid := o.mesh.Centroid()
	b, err := mesh.NewEditBuffer(o.mesh)
	if err != nil {
		return err
	}
	defer b.Free()
	if err := b.Translate(r3.Scale(-1, centroid)); err != nil {
		return err
	}
	if err := b.Commit(); err != nil {
		return err
	}

	shift := math3.RotateEulerXYZ(math3.MulElem(o.Transform.Scale, centroid), o.Transform.RotationEuler)
	o.Transform.Location = r3.Add(o.Transform.Location, shift)
	return nil
}

// ObjectSystem owns every object in a document together with the
// collections they link into. It shares the mesh system so duplicating an
// object can duplicate its mesh datablock too.
type ObjectSystem struct {
	meshes      *mesh.System
	objects     map[string]*Object
	order       []string
	collections map[string]*Collection
	collOrder   []string
}

func NewObjectSystem(meshes *mesh.System) *ObjectSystem {
	s := &ObjectSystem{
		meshes:      meshes,
		objects:     make(map[string]*Object),
		collections: make(map[string]*Collection),
	}
	s.NewCollection(DefaultCollectionName)
	return s
}

func (s *ObjectSystem) taken(name string) bool {
	_, ok := s.objects[name]
	return ok
}

func (s *ObjectSystem) register(o *Object) *Object {
	o.name = core.UniqueName(o.name, s.taken)
	s.objects[o.name] = o
	s.order = append(s.order, o.name)
	return o
}

// New creates an empty object linked into the default collection.
func (s *ObjectSystem) New(name string) *Object {
	o := s.register(&Object{
		handle:    core.NewHandle(),
		name:      name,
		Transform: NewTransform(),
	})
	s.collections[DefaultCollectionName].link(o)
	core.LogDebug("object system created %q", o.name)
	return o
}

// NewCamera creates an object carrying a fresh camera datablock.
func (s *ObjectSystem) NewCamera(name string) *Object {
	o := s.New(name)
	o.camera = NewCamera()
	return o
}

func (s *ObjectSystem) Get(name string) (*Object, bool) {
	o, ok := s.objects[name]
	return o, ok
}

func (s *ObjectSystem) Count() int {
	return len(s.objects)
}

// Names lists the objects in creation order.
func (s *ObjectSystem) Names() []string {
	return append([]string(nil), s.order...)
}

// Remove drops the object from the store and from every collection.
func (s *ObjectSystem) Remove(name string) error {
	o, ok := s.objects[name]
	if !ok {
		return fmt.Errorf("remove object %q: %w", name, core.ErrResourceUnavailable)
	}
	delete(s.objects, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	for _, c := range s.collections {
		c.unlink(o)
	}
	return nil
}

// Duplicate deep-copies an object: transform and camera by value, the mesh
// as a new datablock, material slots sharing the same materials. The copy
// joins the same collections as the source.
func (s *ObjectSystem) Duplicate(o *Object) (*Object, error) {
	if o == nil {
		return nil, fmt.Errorf("duplicate object: %w", core.ErrResourceUnavailable)
	}
	if _, ok := s.objects[o.name]; !ok {
		return nil, fmt.Errorf("duplicate object %q: not in this document: %w", o.name, core.ErrResourceUnavailable)
	}

	dup := &Object{
		handle:    core.NewHandle(),
		name:      o.name,
		Transform: o.Transform,
		slots:     append([]*shading.Material(nil), o.slots...),
	}
	if o.camera != nil {
		dup.camera = o.camera.clone()
	}
	if o.mesh != nil {
		m, err := s.meshes.Duplicate(o.mesh.Name())
		if err != nil {
			if !errors.Is(err, core.ErrResourceUnavailable) {
				return nil, err
			}
			// Unregistered mesh datablock: copy it without registering.
			m, err = mesh.New(o.mesh.Name(), o.mesh.Vertices(), o.mesh.Polygons())
			if err != nil {
				return nil, err
			}
		}
		dup.mesh = m
	}

	s.register(dup)
	for _, cn := range s.collOrder {
		if c := s.collections[cn]; c.contains(o) {
			c.link(dup)
		}
	}
	core.LogDebug("object system duplicated %q as %q", o.name, dup.name)
	return dup, nil
}

// NewCollection creates a collection, suffixing the name if taken.
func (s *ObjectSystem) NewCollection(name string) *Collection {
	name = core.UniqueName(name, func(n string) bool {
		_, ok := s.collections[n]
		return ok
	})
	c := &Collection{name: name}
	s.collections[name] = c
	s.collOrder = append(s.collOrder, name)
	return c
}

func (s *ObjectSystem) Collection(name string) (*Collection, bool) {
	c, ok := s.collections[name]
	return c, ok
}

// Collections lists the collections in creation order.
func (s *ObjectSystem) Collections() []*Collection {
	out := make([]*Collection, 0, len(s.collOrder))
	for _, n := range s.collOrder {
		out = append(out, s.collections[n])
	}
	return out
}

// Link adds the object to a collection.
func (s *ObjectSystem) Link(o *Object, collection string) error {
	c, ok := s.collections[collection]
	if !ok {
		return fmt.Errorf("link %q into collection %q: %w", o.Name(), collection, core.ErrResourceUnavailable)
	}
	c.link(o)
	return nil
}

// Unlink removes the object from a collection. The object stays in the
// document.
func (s *ObjectSystem) Unlink(o *Object, collection string) error {
	c, ok := s.collections[collection]
	if !ok {
		return fmt.Errorf("unlink %q from collection %q: %w", o.Name(), collection, core.ErrResourceUnavailable)
	}
	c.unlink(o)
	return nil
}

// ClearCollection removes every member object from the document. The
// collection itself stays.
func (s *ObjectSystem) ClearCollection(name string) error {
	c, ok := s.collections[name]
	if !ok {
		return fmt.Errorf("clear collection %q: %w", name, core.ErrResourceUnavailable)
	}
	for _, o := range c.Objects() {
		if err := s.Remove(o.Name()); err != nil {
			return err
		}
	}
	core.LogDebug("object system cleared collection %q", name)
	return nil
}
