package ir

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	ComplexKind
	StringKind
	BytesKind
	ListKind
	SetKind
	RecordKind
	DictKind
	TimeKind
	DurationKind
	TaggedKind
	AppKind
)

var kindNames = map[Kind]string{
	NullKind:     "Null",
	BoolKind:     "Bool",
	IntKind:      "Int",
	FloatKind:    "Float",
	ComplexKind:  "Complex",
	StringKind:   "String",
	BytesKind:    "Bytes",
	ListKind:     "List",
	SetKind:      "Set",
	RecordKind:   "Record",
	DictKind:     "Dict",
	TimeKind:     "DateTime",
	DurationKind: "Duration",
	TaggedKind:   "Tagged",
	AppKind:      "App",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntKind,
		FloatKind,
		ComplexKind,
		StringKind,
		BytesKind,
		ListKind,
		SetKind,
		RecordKind,
		DictKind,
		TimeKind,
		DurationKind,
		TaggedKind,
		AppKind,
	}
}
