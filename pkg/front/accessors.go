package front

// Front returns the front with the given id, or nil when the id is unknown
// or the document is nil.
func (d *Document) Front(id string) *Front {
	if d == nil || id == "" {
		return nil
	}
	for i := range d.Fronts {
		if d.Fronts[i].ID == id {
			return &d.Fronts[i]
		}
	}
	return nil
}

// Danger returns the danger with the given id together with its owning
// front. The owning front is a derived relation: no back-reference is
// stored, so this is a linear scan and the first match wins.
func (d *Document) Danger(id string) (*Front, *Danger) {
	if d == nil || id == "" {
		return nil, nil
	}
	for i := range d.Fronts {
		f := &d.Fronts[i]
		for j := range f.Dangers {
			if f.Dangers[j].ID == id {
				return f, &f.Dangers[j]
			}
		}
	}
	return nil, nil
}

// Secret resolves a secret inside the given danger.
func (dn *Danger) Secret(id string) *Secret {
	if dn == nil || id == "" {
		return nil
	}
	for i := range dn.Secrets {
		if dn.Secrets[i].ID == id {
			return &dn.Secrets[i]
		}
	}
	return nil
}

// Portent resolves a grim portent inside the given danger.
func (dn *Danger) Portent(id string) *GrimPortent {
	if dn == nil || id == "" {
		return nil
	}
	for i := range dn.GrimPortents {
		if dn.GrimPortents[i].ID == id {
			return &dn.GrimPortents[i]
		}
	}
	return nil
}

// DangerOwners builds the danger-id to front-id index. Callers rebuild it
// whenever the document is replaced; the index never lives inside the
// document itself, which would reintroduce the parent-pointer cycle.
func (d *Document) DangerOwners() map[string]string {
	owners := make(map[string]string)
	if d == nil {
		return owners
	}
	for i := range d.Fronts {
		for j := range d.Fronts[i].Dangers {
			id := d.Fronts[i].Dangers[j].ID
			if _, ok := owners[id]; !ok {
				owners[id] = d.Fronts[i].ID
			}
		}
	}
	return owners
}
