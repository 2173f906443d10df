package model

import "fmt"

// Entity names one of the nine persisted entity types.
type Entity string

const (
	EntityCurator  Entity = "Curator"
	EntityGroup    Entity = "Group"
	EntityStudent  Entity = "Student"
	EntityCourse   Entity = "Course"
	EntityMark     Entity = "Mark"
	EntityDegree   Entity = "Degree"
	EntityPosition Entity = "Position"
	EntityTeacher  Entity = "Teacher"
	EntityLesson   Entity = "Lesson"
)

// Entities lists every entity in dependency order: an entity only references
// entities that appear before it.
var Entities = []Entity{
	EntityCurator,
	EntityGroup,
	EntityStudent,
	EntityCourse,
	EntityMark,
	EntityDegree,
	EntityPosition,
	EntityTeacher,
	EntityLesson,
}

var tables = map[Entity]string{
	EntityCurator:  "curators",
	EntityGroup:    "student_groups",
	EntityStudent:  "students",
	EntityCourse:   "courses",
	EntityMark:     "marks",
	EntityDegree:   "degrees",
	EntityPosition: "positions",
	EntityTeacher:  "teachers",
	EntityLesson:   "lessons",
}

var resources = map[Entity]string{
	EntityCurator:  "curators",
	EntityGroup:    "groups",
	EntityStudent:  "students",
	EntityCourse:   "courses",
	EntityMark:     "marks",
	EntityDegree:   "degrees",
	EntityPosition: "positions",
	EntityTeacher:  "teachers",
	EntityLesson:   "lessons",
}

// Table returns the SQL table backing the entity.
func (e Entity) Table() string {
	return tables[e]
}

// Resource returns the plural resource name used by the HTTP and CLI surfaces.
func (e Entity) Resource() string {
	return resources[e]
}

// ParseEntity resolves a resource name ("students") or entity name
// ("Student") to an Entity.
func ParseEntity(name string) (Entity, error) {
	for _, e := range Entities {
		if name == string(e) || name == e.Resource() {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown entity %q", name)
}
