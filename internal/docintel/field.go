package docintel

// Kind discriminates the closed set of value shapes a document field
// can carry.
type Kind uint8

const (
	KindText Kind = iota + 1
	KindNumber
	KindList
	KindDictionary
)

// Field is one loosely-typed value from the document model: a tagged
// union of text, number, list, or dictionary, plus the raw page content
// the value was read from. Accessors return ok=false when the field does
// not hold the requested shape.
type Field struct {
	kind    Kind
	content string
	text    string
	number  float64
	list    []Field
	dict    map[string]Field
}

func NewTextField(content string) Field {
	return Field{kind: KindText, content: content, text: content}
}

func NewNumberField(value float64, content string) Field {
	return Field{kind: KindNumber, content: content, number: value}
}

func NewListField(items ...Field) Field {
	return Field{kind: KindList, list: items}
}

func NewDictionaryField(content string, fields map[string]Field) Field {
	return Field{kind: KindDictionary, content: content, dict: fields}
}

func (f Field) Kind() Kind { return f.kind }

func (f Field) IsZero() bool { return f.kind == 0 }

// Content returns the raw text of the field as it appeared on the page,
// regardless of kind.
func (f Field) Content() string { return f.content }

func (f Field) Text() (string, bool) {
	if f.kind != KindText {
		return "", false
	}
	return f.text, true
}

func (f Field) Number() (float64, bool) {
	if f.kind != KindNumber {
		return 0, false
	}
	return f.number, true
}

func (f Field) List() ([]Field, bool) {
	if f.kind != KindList {
		return nil, false
	}
	return f.list, true
}

func (f Field) Dictionary() (map[string]Field, bool) {
	if f.kind != KindDictionary {
		return nil, false
	}
	return f.dict, true
}

// FieldBag is the raw, string-keyed output of the document model.
// Read-only for the duration of one extraction call.
type FieldBag map[string]Field

func (b FieldBag) Get(name string) (Field, bool) {
	f, ok := b[name]
	return f, ok
}
