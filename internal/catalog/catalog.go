package catalog

// Service is one bookable grooming service. Exclusive services allow at
// most one active appointment per date and time slot; shared services
// have no slot capacity limit.
type Service struct {
	Price     float64
	Exclusive bool
}

// Catalog is the injected business policy for appointment booking: which
// services exist, what they cost, whether their slots are exclusive, and
// the canonical list of bookable time slots. It is plain data so new
// services are configuration, not code changes.
type Catalog struct {
	services map[string]Service
	slots    []string
	slotSet  map[string]struct{}
}

func New(services map[string]Service, slots []string) *Catalog {
	c := &Catalog{
		services: make(map[string]Service, len(services)),
		slots:    make([]string, len(slots)),
		slotSet:  make(map[string]struct{}, len(slots)),
	}
	for name, svc := range services {
		c.services[name] = svc
	}
	copy(c.slots, slots)
	for _, slot := range slots {
		c.slotSet[slot] = struct{}{}
	}
	return c
}

// Default returns the salon's standard offering. Hair Grooming is the
// only exclusive service: it occupies the single grooming table.
func Default() *Catalog {
	return New(
		map[string]Service{
			"Hair Grooming":  {Price: 50, Exclusive: true},
			"Nail Trimming":  {Price: 15},
			"Bath & Dry":     {Price: 30},
			"Full Grooming":  {Price: 80},
			"Dental Care":    {Price: 40},
			"Flea Treatment": {Price: 35},
		},
		[]string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
	)
}

// Has reports whether serviceType is a known service.
func (c *Catalog) Has(serviceType string) bool {
	_, ok := c.services[serviceType]
	return ok
}

// Price returns the current price for serviceType.
func (c *Catalog) Price(serviceType string) (float64, bool) {
	svc, ok := c.services[serviceType]
	return svc.Price, ok
}

// IsExclusive reports whether serviceType allows only one active booking
// per slot. Unknown service types are shared; callers must validate the
// service type before relying on this.
func (c *Catalog) IsExclusive(serviceType string) bool {
	return c.services[serviceType].Exclusive
}

// ValidSlot reports whether t is one of the bookable time slots.
func (c *Catalog) ValidSlot(t string) bool {
	_, ok := c.slotSet[t]
	return ok
}

// Slots returns the bookable time slots in canonical order.
func (c *Catalog) Slots() []string {
	out := make([]string, len(c.slots))
	copy(out, c.slots)
	return out
}
