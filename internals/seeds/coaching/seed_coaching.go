package coaching

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "coachingku_backend/internals/models"
	"coachingku_backend/internals/tabular"
)

//go:embed data_coaching.json
var DemoData []byte

// Rows refer to each other by 1-based position (student, test, faculty, room) or by
// course name, so the seed works whatever ids the database hands out.
type CoachingSeed struct {
	Courses  []model.Course `json:"courses"`
	Students []struct {
		model.Student
		DOB      string `json:"dob"`
		JoinDate string `json:"join_date"`
	} `json:"students"`
	Attendance []struct {
		Student int    `json:"student"`
		Date    string `json:"date"`
		Status  string `json:"status"`
	} `json:"attendance"`
	FeePayments []struct {
		Student     int     `json:"student"`
		Course      string  `json:"course"`
		AmountPaid  float64 `json:"amount_paid"`
		PaymentDate string  `json:"payment_date"`
		PaymentMode string  `json:"payment_mode"`
	} `json:"fee_payments"`
	Leads []struct {
		model.Lead
		CreatedDate string `json:"created_date"`
	} `json:"leads"`
	Tests []struct {
		TestName string  `json:"test_name"`
		Course   string  `json:"course"`
		TestDate string  `json:"test_date"`
		MaxMarks float64 `json:"max_marks"`
	} `json:"tests"`
	Results []struct {
		Student       int     `json:"student"`
		Test          int     `json:"test"`
		MarksObtained float64 `json:"marks_obtained"`
		Grade         string  `json:"grade"`
		Remarks       string  `json:"remarks"`
	} `json:"results"`
	Faculty       []model.Faculty `json:"faculty"`
	Rooms         []model.Room    `json:"rooms"`
	ClassSchedule []struct {
		Course    string `json:"course"`
		Faculty   int    `json:"faculty"`
		Room      int    `json:"room"`
		DayOfWeek string `json:"day_of_week"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	} `json:"class_schedule"`
}

// SeedCoachingFromJSON inserts the demo institute in one transaction.
func SeedCoachingFromJSON(db *gorm.DB, data []byte) error {
	var seed CoachingSeed
	if err := sonic.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("decode seed json: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		courseIDs := map[string]int64{}
		for i := range seed.Courses {
			c := seed.Courses[i]
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("seed course %q: %w", c.CourseName, err)
			}
			courseIDs[c.CourseName] = c.CourseID
		}

		studentIDs := make([]int64, 0, len(seed.Students))
		for _, s := range seed.Students {
			st := s.Student
			st.DOB, st.JoinDate = date(s.DOB), date(s.JoinDate)
			if err := tx.Create(&st).Error; err != nil {
				return fmt.Errorf("seed student %q: %w", st.Name, err)
			}
			studentIDs = append(studentIDs, st.StudentID)
		}

		for _, a := range seed.Attendance {
			row := model.Attendance{StudentID: ref(studentIDs, a.Student), AttendanceDate: date(a.Date), Status: a.Status}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed attendance: %w", err)
			}
		}

		for _, p := range seed.FeePayments {
			row := model.FeePayment{
				StudentID:   ref(studentIDs, p.Student),
				CourseID:    courseIDs[p.Course],
				AmountPaid:  p.AmountPaid,
				PaymentDate: date(p.PaymentDate),
				PaymentMode: p.PaymentMode,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed fee payment: %w", err)
			}
		}

		for _, l := range seed.Leads {
			row := l.Lead
			row.CreatedDate = date(l.CreatedDate)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed lead %q: %w", row.Name, err)
			}
		}

		testIDs := make([]int64, 0, len(seed.Tests))
		for _, t := range seed.Tests {
			row := model.Test{TestName: t.TestName, CourseID: courseIDs[t.Course], TestDate: date(t.TestDate), MaxMarks: t.MaxMarks}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed test %q: %w", t.TestName, err)
			}
			testIDs = append(testIDs, row.TestID)
		}

		for _, r := range seed.Results {
			row := model.Result{
				StudentID:     ref(studentIDs, r.Student),
				TestID:        ref(testIDs, r.Test),
				MarksObtained: r.MarksObtained,
				Grade:         r.Grade,
				Remarks:       r.Remarks,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed result: %w", err)
			}
		}

		facultyIDs := make([]int64, 0, len(seed.Faculty))
		for i := range seed.Faculty {
			f := seed.Faculty[i]
			if err := tx.Create(&f).Error; err != nil {
				return fmt.Errorf("seed faculty %q: %w", f.Name, err)
			}
			facultyIDs = append(facultyIDs, f.FacultyID)
		}

		roomIDs := make([]int64, 0, len(seed.Rooms))
		for i := range seed.Rooms {
			r := seed.Rooms[i]
			if err := tx.Create(&r).Error; err != nil {
				return fmt.Errorf("seed room %q: %w", r.RoomName, err)
			}
			roomIDs = append(roomIDs, r.RoomID)
		}

		for _, cs := range seed.ClassSchedule {
			row := model.ClassSchedule{
				CourseID:  courseIDs[cs.Course],
				FacultyID: ref(facultyIDs, cs.Faculty),
				RoomID:    ref(roomIDs, cs.Room),
				DayOfWeek: cs.DayOfWeek,
				StartTime: cs.StartTime,
				EndTime:   cs.EndTime,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed class schedule: %w", err)
			}
		}
		return nil
	})
}

func ref(ids []int64, pos int) int64 {
	if pos < 1 || pos > len(ids) {
		return 0
	}
	return ids[pos-1]
}

func date(s string) datatypes.Date {
	t, err := time.Parse(tabular.DateLayout, s)
	if err != nil {
		return datatypes.Date{}
	}
	return datatypes.Date(t)
}
