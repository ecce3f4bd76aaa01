package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment status values. An appointment is never deleted; it only
// moves Booked -> Completed or Booked -> Cancelled.
const (
	StatusBooked    = "Booked"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Date and clock layouts used on the wire and in the schema.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Department model
type Department struct {
	ID          uint     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string   `gorm:"size:120;not null;unique;column:name" json:"name"`
	Description string   `gorm:"size:500;column:description" json:"description"`
	Doctors     []Doctor `gorm:"foreignKey:DepartmentID;references:ID" json:"-"`
}

func (Department) TableName() string {
	return "department"
}

// Doctor model. Blacklisted doctors are hidden from patient-facing
// search and booking feeds but stay visible to admins.
type Doctor struct {
	ID             uint           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID         *int64         `gorm:"column:user_id;index" json:"user_id,omitempty"`
	FullName       string         `gorm:"size:120;not null;index;column:fullname" json:"fullname"`
	Specialization string         `gorm:"size:120;not null;column:specialization" json:"specialization"`
	Bio            string         `gorm:"size:500;column:bio" json:"bio"`
	IsBlacklisted  bool           `gorm:"not null;default:false;column:is_blacklisted" json:"is_blacklisted"`
	DepartmentID   *uint          `gorm:"column:department_id;index" json:"department_id,omitempty"`
	Department     *Department    `gorm:"foreignKey:DepartmentID;references:ID" json:"-"`
	Availabilities []Availability `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Appointments   []Appointment  `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// Patient model
type Patient struct {
	ID            uint          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID        *int64        `gorm:"column:user_id;index" json:"user_id,omitempty"`
	FullName      string        `gorm:"size:120;not null;column:fullname" json:"fullname"`
	Contact       string        `gorm:"size:50;column:contact" json:"contact"`
	IsBlacklisted bool          `gorm:"not null;default:false;column:is_blacklisted" json:"is_blacklisted"`
	Appointments  []Appointment `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Treatments    []Treatment   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Availability is a doctor-declared half-open window [start_time, end_time)
// on a given date. Windows on the same day may overlap.
type Availability struct {
	ID        uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID  uint   `gorm:"not null;index;column:doctor_id" json:"doctor_id"`
	Date      string `gorm:"type:date;not null;index;column:date" json:"date"`
	StartTime string `gorm:"size:5;not null;column:start_time" json:"start_time"`
	EndTime   string `gorm:"size:5;not null;column:end_time" json:"end_time"`
}

func (Availability) TableName() string {
	return "availability"
}

// Appointment occupies a (doctor, date, time) slot. The composite unique
// index holds regardless of status: a cancelled appointment keeps its
// slot consumed.
type Appointment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID  uint      `gorm:"not null;index;uniqueIndex:uix_doctor_date_time;column:doctor_id" json:"doctor_id"`
	PatientID uint      `gorm:"not null;index;column:patient_id" json:"patient_id"`
	Date      string    `gorm:"type:date;not null;uniqueIndex:uix_doctor_date_time;column:date" json:"date"`
	Time      string    `gorm:"size:5;not null;uniqueIndex:uix_doctor_date_time;column:time" json:"time"`
	Status    string    `gorm:"size:20;not null;default:'Booked';check:status IN ('Booked', 'Completed', 'Cancelled');column:status" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	Doctor    Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"doctor"`
	Patient   Patient   `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// Treatment is recorded at most once per appointment and never mutated.
// PatientID is denormalized for direct history queries.
type Treatment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AppointmentID uint      `gorm:"not null;uniqueIndex;column:appointment_id" json:"appointment_id"`
	PatientID     uint      `gorm:"not null;index;column:patient_id" json:"patient_id"`
	Diagnosis     string    `gorm:"size:500;column:diagnosis" json:"diagnosis"`
	Prescription  string    `gorm:"size:1000;column:prescription" json:"prescription"`
	Notes         string    `gorm:"size:2000;column:notes" json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (Treatment) TableName() string {
	return "treatment"
}

// SeedDepartments inserts the initial departments on first run.
func SeedDepartments(db *gorm.DB) error {
	initial := []Department{
		{Name: "Cardiology", Description: "Cardiology department"},
		{Name: "Oncology", Description: "Oncology department"},
		{Name: "General", Description: "General department"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, dept := range initial {
			if err := tx.FirstOrCreate(&dept, Department{Name: dept.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
