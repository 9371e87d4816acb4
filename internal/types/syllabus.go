package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CourseMeta holds the index metadata for a single course
type CourseMeta struct {
	// Aliases are alternate strings recognized as referring to the course
	Aliases []string `json:"aliases"`
	// SyllabusURL points at the raw syllabus document, empty when none is published
	SyllabusURL string `json:"syllabus_url"`
}

// Course pairs a course name with its metadata
type Course struct {
	Name string
	Meta CourseMeta
}

// CourseIndex is the ordered mapping from course name to metadata.
// Order is the source document order; course detection relies on it
// for tie-breaking, so decoding must preserve it.
type CourseIndex struct {
	Courses []Course
}

// Names returns all course names in index order
func (idx *CourseIndex) Names() []string {
	names := make([]string, len(idx.Courses))
	for i, c := range idx.Courses {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the metadata for a course name
func (idx *CourseIndex) Lookup(name string) (CourseMeta, bool) {
	for _, c := range idx.Courses {
		if c.Name == name {
			return c.Meta, true
		}
	}
	return CourseMeta{}, false
}

// UnmarshalJSON decodes the index from a JSON object while preserving
// the key order of the source document. encoding/json's map decoding
// would lose it, so the object is walked token by token.
func (idx *CourseIndex) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode course index: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("failed to decode course index: expected object, got %v", tok)
	}

	idx.Courses = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode course index key: %v", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("failed to decode course index key: %v", keyTok)
		}

		var meta CourseMeta
		if err := dec.Decode(&meta); err != nil {
			return fmt.Errorf("failed to decode course %q: %v", name, err)
		}
		idx.Courses = append(idx.Courses, Course{Name: name, Meta: meta})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode course index: %v", err)
	}
	return nil
}

// MarshalJSON writes the index back as a JSON object in index order
func (idx CourseIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range idx.Courses {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		meta, err := json.Marshal(c.Meta)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(meta)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
