package scene

// Collection groups objects for organization. An object can sit in any
// number of collections; membership keeps link order.
type Collection struct {
	name    string
	objects []*Object
}

func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) Count() int {
	return len(c.objects)
}

// Objects returns the members in link order.
func (c *Collection) Objects() []*Object {
	return append([]*Object(nil), c.objects...)
}

func (c *Collection) contains(o *Object) bool {
	for _, have := range c.objects {
		if have == o {
			return true
		}
	}
	return false
}

func (c *Collection) link(o *Object) {
	if c.contains(o) {
		return
	}
	c.objects = append(c.objects, o)
}

func (c *Collection) unlink(o *Object) {
	for i, have := range c.objects {
		if have == o {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			return
		}
	}
}
