package format

import "strings"

// The weekly endpoint embeds lists of pseudo-object records inside JSON
// string values, e.g.
//
//	{'ArmedForceId':40005,'inum':2}#{'ArmedForceId':20004,'inum':10}
//
// This is not JSON (single quotes, unquoted keys), so it gets its own
// tolerant tokenizer rather than a pass through the JSON decoder.
// Malformed tokens are dropped silently; a record missing a field reads
// as zero/empty.

// Field is one key/value pair of an embedded record, in source order.
type Field struct {
	Key   string
	Value string
}

// Record is one parsed element of a delimited record list.
type Record struct {
	Fields []Field
}

// ParseRecordList splits a '#'-delimited record list into records.
// A token only qualifies when wrapped in braces; everything else is
// discarded.
func ParseRecordList(s string) []Record {
	var records []Record
	for _, token := range strings.Split(s, "#") {
		token = strings.TrimSpace(token)
		if len(token) < 2 || !strings.HasPrefix(token, "{") || !strings.HasSuffix(token, "}") {
			continue
		}
		inner := token[1 : len(token)-1]
		var rec Record
		for _, pair := range strings.Split(inner, ",") {
			key, value, ok := strings.Cut(pair, ":")
			if !ok {
				continue
			}
			rec.Fields = append(rec.Fields, Field{
				Key:   unquote(key),
				Value: unquote(value),
			})
		}
		if len(rec.Fields) > 0 {
			records = append(records, rec)
		}
	}
	return records
}

// At returns the i-th field of the record.
func (r Record) At(i int) (Field, bool) {
	if i < 0 || i >= len(r.Fields) {
		return Field{}, false
	}
	return r.Fields[i], true
}

// Get returns the value for key, scanning fields in order.
func (r Record) Get(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Int reads the named field as an integer, 0 when absent or malformed.
func (r Record) Int(key string) int64 {
	v, _ := r.Get(key)
	return Int(v)
}

// Float reads the named field as a float, 0 when absent or malformed.
func (r Record) Float(key string) float64 {
	v, _ := r.Get(key)
	return Float(v)
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `'"`)
}
