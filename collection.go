package sfhandle

import "github.com/google/uuid"

// Collection is a keyed set of star-formation histories, typically one per
// galaxy of a catalogue.
type Collection map[string]*SFH

// Add stores the record under a fresh UUID and returns the UUID.
func (c *Collection) Add(rec *SFH) uuid.UUID {
	id := uuid.New()
	(*c)[id.String()] = rec
	return id
}

// Set stores the record under the given key, replacing any previous entry.
func (c Collection) Set(id string, rec *SFH) {
	c[id] = rec
}

// Integrals returns the total formed mass of every record, keyed like the
// collection itself.
func (c Collection) Integrals() map[string]float64 {
	masses := make(map[string]float64, len(c))
	for id := range c {
		masses[id] = c[id].Integral()
	}
	return masses
}
