package core

// LabelEncoder is a categorical value to integer code bijection fixed at
// training time.
type LabelEncoder struct {
	codes  map[string]int
	labels map[int]string
}

// NewLabelEncoder creates a label encoder from a value to code mapping and
// builds the inverse used to decode predicted classes.
func NewLabelEncoder(codes map[string]int) *LabelEncoder {
	labels := make(map[int]string, len(codes))
	for value, code := range codes {
		labels[code] = value
	}
	return &LabelEncoder{codes: codes, labels: labels}
}

// Encode returns the integer code for a categorical value.
func (e *LabelEncoder) Encode(value string) (int, bool) {
	code, ok := e.codes[value]
	return code, ok
}

// Decode returns the categorical value for an integer code.
func (e *LabelEncoder) Decode(code int) (string, bool) {
	value, ok := e.labels[code]
	return value, ok
}

// LabelEncoderTable maps feature names to their fitted label encoders.
// A nil table behaves as an empty one.
type LabelEncoderTable struct {
	columns map[string]*LabelEncoder
}

// NewLabelEncoderTable creates a table from per-column value to code
// mappings.
func NewLabelEncoderTable(columns map[string]map[string]int) *LabelEncoderTable {
	encoders := make(map[string]*LabelEncoder, len(columns))
	for name, codes := range columns {
		encoders[name] = NewLabelEncoder(codes)
	}
	return &LabelEncoderTable{columns: encoders}
}

// Column returns the encoder fitted for a feature name.
func (t *LabelEncoderTable) Column(name string) (*LabelEncoder, bool) {
	if t == nil {
		return nil, false
	}
	enc, ok := t.columns[name]
	return enc, ok
}

// Has reports whether a feature was encoded categorically at training time.
func (t *LabelEncoderTable) Has(name string) bool {
	_, ok := t.Column(name)
	return ok
}
