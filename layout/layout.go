package layout

// Kind describes the logical type of a layout field.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
	KindBoolean
	KindDate
	KindTimestamp
)

// String returns the human readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Texto"
	case KindNumeric:
		return "Numérico"
	case KindBoolean:
		return "Booleano"
	case KindDate:
		return "Data"
	case KindTimestamp:
		return "Timestamp"
	default:
		return "Texto"
	}
}

// FieldSpec describes a single field of a target layout.
// MaxLen == 0 means the field has no declared length limit.
// SkipLearning marks volatile fields (prices, balances) whose values are
// never persisted as learning samples.
type FieldSpec struct {
	ID           string
	Label        string
	Kind         Kind
	MaxLen       int
	Required     bool
	SkipLearning bool
}

// Layout is a named, ordered target schema plus the curated keyword aliases
// used by the header mapping stage. Layouts are static configuration: they
// are registered once at process start and never mutated afterwards.
type Layout struct {
	ID       string
	Name     string
	Fields   []FieldSpec
	Keywords map[string][]string
}

// Field returns the descriptor for the given field id, or nil if the layout does
// not declare it.
func (l *Layout) Field(id string) *FieldSpec {
	for i := range l.Fields {
		if l.Fields[i].ID == id {
			return &l.Fields[i]
		}
	}
	return nil
}

// FieldIDs returns the field ids in layout order.
func (l *Layout) FieldIDs() []string {
	ids := make([]string, 0, len(l.Fields))
	for _, f := range l.Fields {
		ids = append(ids, f.ID)
	}
	return ids
}

// RequiredIDs returns the ids of the required fields in layout order.
func (l *Layout) RequiredIDs() []string {
	var ids []string
	for _, f := range l.Fields {
		if f.Required {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// KeywordsFor returns the keyword aliases for a field. The field id
// itself is always an implicit alias, so a column named exactly after
// the field maps even when the curated list omits it.
func (l *Layout) KeywordsFor(fieldID string) []string {
	kw := l.Keywords[fieldID]
	out := make([]string, 0, len(kw)+1)
	out = append(out, fieldID)
	return append(out, kw...)
}
