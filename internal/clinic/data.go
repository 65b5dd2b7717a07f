// Package clinic holds the static demo roster for the Avenir Fertility Centre:
// departments, doctors, time slots, treatment costs and contact details.
// Slot lists are static demo data, not live availability.
package clinic

// Clinic contact details shown in the location view.
const (
	Location = "Avenir Fertility Centre, San Diego, California"
	Hours    = "Mon-Sat, 9:00 AM - 7:00 PM"
	Phone    = "+1 (619) 555-0123"
)

// Doctor is one bookable practitioner with their configured slots.
type Doctor struct {
	Name  string
	Slots []string
}

// departments preserves a stable menu order; the map alone would not.
var departmentOrder = []string{
	"Fertility / IVF",
	"Andrology",
	"Genetic Testing",
	"Counselling",
	"Gynecology / Reproductive Endocrinology",
}

var departments = map[string][]Doctor{
	"Fertility / IVF": {
		{Name: "Dr. Priya Nair", Slots: []string{"10:00 AM", "10:30 AM", "11:00 AM"}},
		{Name: "Dr. Rhea Thomas", Slots: []string{"2:00 PM", "3:00 PM", "5:00 PM"}},
		{Name: "Dr. Vikram Singh", Slots: []string{"9:00 AM", "1:00 PM", "4:00 PM"}},
	},
	"Andrology": {
		{Name: "Dr. Arun Menon", Slots: []string{"11:00 AM", "1:00 PM", "4:00 PM"}},
		{Name: "Dr. Sanjay Gupta", Slots: []string{"10:30 AM", "2:30 PM", "3:30 PM"}},
		{Name: "Dr. Rohit Verma", Slots: []string{"9:30 AM", "12:30 PM", "5:30 PM"}},
	},
	"Genetic Testing": {
		{Name: "Dr. Meera Kapoor", Slots: []string{"9:30 AM", "10:30 AM", "11:30 AM"}},
		{Name: "Dr. Anil Desai", Slots: []string{"1:30 PM", "3:30 PM", "4:30 PM"}},
		{Name: "Dr. Leena Shah", Slots: []string{"11:30 AM", "4:30 PM", "5:30 PM"}},
	},
	"Counselling": {
		{Name: "Dr. Kavita Rao", Slots: []string{"12:00 PM", "2:30 PM", "4:00 PM"}},
		{Name: "Dr. Nisha Patel", Slots: []string{"10:00 AM", "1:00 PM", "3:00 PM"}},
		{Name: "Dr. Suresh Iyer", Slots: []string{"9:00 AM", "11:00 AM", "5:00 PM"}},
	},
	"Gynecology / Reproductive Endocrinology": {
		{Name: "Dr. Seema Iyer", Slots: []string{"3:30 PM", "4:30 PM", "5:30 PM"}},
		{Name: "Dr. Ananya Sen", Slots: []string{"9:30 AM", "12:30 PM", "2:30 PM"}},
		{Name: "Dr. Ritu Malhotra", Slots: []string{"10:30 AM", "1:30 PM", "3:30 PM"}},
	},
}

// TreatmentCost is a treatment name with its estimated price range.
type TreatmentCost struct {
	Treatment string
	Cost      string
}

// TreatmentCosts returns the estimated cost table in display order.
func TreatmentCosts() []TreatmentCost {
	return []TreatmentCost{
		{"IVF / ICSI", "$12,00 - $15,00"},
		{"IUI", "$800 - $1,200"},
		{"Egg Freezing", "$7,00 - $10,00"},
		{"Genetic Testing", "$5,00 - $8,00"},
		{"Male Infertility", "$3,00 - $6,00"},
		{"Donor Programs", "$20,00 - $30,00"},
	}
}

// Departments returns the bookable department names in menu order.
func Departments() []string {
	out := make([]string, len(departmentOrder))
	copy(out, departmentOrder)
	return out
}

// IsDepartment reports whether name is a bookable department.
func IsDepartment(name string) bool {
	_, ok := departments[name]
	return ok
}

// DoctorsFor returns the doctor names configured for a department, or nil if
// the department is unknown.
func DoctorsFor(department string) []string {
	docs, ok := departments[department]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names
}

// StaticDirectory exposes the package data through the directory interface
// the booking state machine validates against.
type StaticDirectory struct{}

func (StaticDirectory) IsDepartment(name string) bool         { return IsDepartment(name) }
func (StaticDirectory) DoctorsFor(department string) []string { return DoctorsFor(department) }

func (StaticDirectory) SlotsFor(department, doctor string) []string {
	return SlotsFor(department, doctor)
}

// SlotsFor returns the time slots configured for a doctor within a department.
// An unknown department or doctor yields nil.
func SlotsFor(department, doctor string) []string {
	for _, d := range departments[department] {
		if d.Name == doctor {
			slots := make([]string, len(d.Slots))
			copy(slots, d.Slots)
			return slots
		}
	}
	return nil
}
