package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/registrar/internal/model"
)

// Dataset is a seed file. Lists are applied in dependency order regardless
// of the order they appear in the file.
type Dataset struct {
	// Name optionally labels the dataset in logs and output.
	Name string `yaml:"name,omitempty"`

	Curators  []Curator  `yaml:"curators,omitempty"`
	Groups    []Group    `yaml:"groups,omitempty"`
	Students  []Student  `yaml:"students,omitempty"`
	Courses   []Course   `yaml:"courses,omitempty"`
	Degrees   []Degree   `yaml:"degrees,omitempty"`
	Positions []Position `yaml:"positions,omitempty"`
	Teachers  []Teacher  `yaml:"teachers,omitempty"`
	Lessons   []Lesson   `yaml:"lessons,omitempty"`
	Marks     []Mark     `yaml:"marks,omitempty"`
}

type Curator struct {
	Ref  string `yaml:"ref"`
	Name string `yaml:"name"`
}

type Group struct {
	Ref        string `yaml:"ref"`
	Curator    string `yaml:"curator"`
	NameNumber string `yaml:"name_number"`
}

type Student struct {
	Ref      string `yaml:"ref"`
	Group    string `yaml:"group"`
	Name     string `yaml:"name"`
	Birthday string `yaml:"birthday"`
}

type Course struct {
	Ref   string `yaml:"ref"`
	Title string `yaml:"title"`
}

type Degree struct {
	Ref   string `yaml:"ref"`
	Title string `yaml:"title"`
}

type Position struct {
	Ref   string `yaml:"ref"`
	Title string `yaml:"title"`
}

type Teacher struct {
	Ref      string `yaml:"ref"`
	Degree   string `yaml:"degree"`
	Position string `yaml:"position"`
	Name     string `yaml:"name"`
}

// Lesson refs are optional; nothing references a lesson.
type Lesson struct {
	Ref     string `yaml:"ref,omitempty"`
	Group   string `yaml:"group"`
	Teacher string `yaml:"teacher"`
	Course  string `yaml:"course"`
	Time    string `yaml:"time"`
}

// Mark refs are optional; nothing references a mark.
type Mark struct {
	Ref     string `yaml:"ref,omitempty"`
	Student string `yaml:"student"`
	Course  string `yaml:"course"`
	Mark    int64  `yaml:"mark"`
}

// Load reads and parses a dataset file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields, or has unresolvable refs.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a dataset from YAML bytes.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	return &ds, nil
}

// Len returns the number of records in the dataset.
func (ds *Dataset) Len() int {
	return len(ds.Curators) + len(ds.Groups) + len(ds.Students) +
		len(ds.Courses) + len(ds.Degrees) + len(ds.Positions) +
		len(ds.Teachers) + len(ds.Lessons) + len(ds.Marks)
}

// Validate checks that refs are unique per entity and that every reference
// names a record of the right entity in the same dataset. All problems are
// reported together.
func (ds *Dataset) Validate() error {
	v := validator{declared: map[model.Entity]map[string]bool{}}

	for i, c := range ds.Curators {
		v.declare(model.EntityCurator, i, c.Ref, true)
	}
	for i, c := range ds.Courses {
		v.declare(model.EntityCourse, i, c.Ref, true)
	}
	for i, d := range ds.Degrees {
		v.declare(model.EntityDegree, i, d.Ref, true)
	}
	for i, p := range ds.Positions {
		v.declare(model.EntityPosition, i, p.Ref, true)
	}
	for i, g := range ds.Groups {
		v.declare(model.EntityGroup, i, g.Ref, true)
	}
	for i, s := range ds.Students {
		v.declare(model.EntityStudent, i, s.Ref, true)
	}
	for i, t := range ds.Teachers {
		v.declare(model.EntityTeacher, i, t.Ref, true)
	}
	for i, l := range ds.Lessons {
		v.declare(model.EntityLesson, i, l.Ref, false)
	}
	for i, m := range ds.Marks {
		v.declare(model.EntityMark, i, m.Ref, false)
	}

	for i, g := range ds.Groups {
		v.resolve(model.EntityGroup, i, model.EntityCurator, g.Curator)
	}
	for i, s := range ds.Students {
		v.resolve(model.EntityStudent, i, model.EntityGroup, s.Group)
	}
	for i, t := range ds.Teachers {
		v.resolve(model.EntityTeacher, i, model.EntityDegree, t.Degree)
		v.resolve(model.EntityTeacher, i, model.EntityPosition, t.Position)
	}
	for i, l := range ds.Lessons {
		v.resolve(model.EntityLesson, i, model.EntityGroup, l.Group)
		v.resolve(model.EntityLesson, i, model.EntityTeacher, l.Teacher)
		v.resolve(model.EntityLesson, i, model.EntityCourse, l.Course)
	}
	for i, m := range ds.Marks {
		v.resolve(model.EntityMark, i, model.EntityStudent, m.Student)
		v.resolve(model.EntityMark, i, model.EntityCourse, m.Course)
	}

	return errors.Join(v.problems...)
}

type validator struct {
	declared map[model.Entity]map[string]bool
	problems []error
}

func (v *validator) declare(entity model.Entity, index int, ref string, required bool) {
	if ref == "" {
		if required {
			v.problems = append(v.problems, fmt.Errorf("%s #%d: ref is required", entity, index+1))
		}
		return
	}

	refs := v.declared[entity]
	if refs == nil {
		refs = map[string]bool{}
		v.declared[entity] = refs
	}
	if refs[ref] {
		v.problems = append(v.problems, fmt.Errorf("%s #%d: duplicate ref %q", entity, index+1, ref))
		return
	}
	refs[ref] = true
}

func (v *validator) resolve(from model.Entity, index int, to model.Entity, ref string) {
	if ref == "" {
		v.problems = append(v.problems, fmt.Errorf("%s #%d: %s is required", from, index+1, strings.ToLower(string(to))))
		return
	}
	if !v.declared[to][ref] {
		v.problems = append(v.problems, fmt.Errorf("%s #%d: unknown %s ref %q", from, index+1, to, ref))
	}
}
