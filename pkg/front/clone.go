package front

// Clone returns a deep copy of the document. Renderers working from a
// copy stay untouched by mutations applied to the live tree. Nil in,
// nil out; empty child slices stay empty rather than becoming nil.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Fronts: make([]Front, len(d.Fronts))}
	for i := range d.Fronts {
		out.Fronts[i] = d.Fronts[i].clone()
	}
	return out
}

func (f Front) clone() Front {
	c := f
	c.Cast = copyStrings(f.Cast)
	c.Stakes = copyStrings(f.Stakes)
	c.PlayerHooks = copyStrings(f.PlayerHooks)
	c.Dangers = make([]Danger, len(f.Dangers))
	for i := range f.Dangers {
		c.Dangers[i] = f.Dangers[i].clone()
	}
	return c
}

func (d Danger) clone() Danger {
	c := d
	c.Locations = copyStrings(d.Locations)
	if d.GrimPortents != nil {
		c.GrimPortents = make([]GrimPortent, len(d.GrimPortents))
		copy(c.GrimPortents, d.GrimPortents)
	}
	if d.Secrets != nil {
		c.Secrets = make([]Secret, len(d.Secrets))
		for i, s := range d.Secrets {
			c.Secrets[i] = s
			if s.RevealedAt != nil {
				at := *s.RevealedAt
				c.Secrets[i].RevealedAt = &at
			}
		}
	}
	return c
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
