package models

// Subject identifies one of the group's fixed study subjects.
type Subject string

// Subject codes tracked by the group
const (
	SubjectMath      Subject = "MATH"
	SubjectPhysics   Subject = "PHYSICS"
	SubjectChemistry Subject = "CHEMISTRY"
	SubjectBiology   Subject = "BIOLOGY"
	SubjectEnglish   Subject = "ENGLISH"
	SubjectArabic    Subject = "ARABIC"
	SubjectIslamic   Subject = "ISLAMIC"
	SubjectComputer  Subject = "COMPUTER"
)

// AllSubjects returns the fixed subject set in display order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectMath,
		SubjectPhysics,
		SubjectChemistry,
		SubjectBiology,
		SubjectEnglish,
		SubjectArabic,
		SubjectIslamic,
		SubjectComputer,
	}
}

// IsValid reports whether s is one of the known subject codes.
func (s Subject) IsValid() bool {
	switch s {
	case SubjectMath, SubjectPhysics, SubjectChemistry, SubjectBiology,
		SubjectEnglish, SubjectArabic, SubjectIslamic, SubjectComputer:
		return true
	}
	return false
}
