package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	timetableModel "sekolahku_backend/internals/features/academics/timetables/model"
	yearModel "sekolahku_backend/internals/features/academics/academic_years/model"
	empAttModel "sekolahku_backend/internals/features/employees/attendance/model"
	employeeModel "sekolahku_backend/internals/features/employees/employees/model"
	leaveModel "sekolahku_backend/internals/features/employees/leaves/model"
	admissionModel "sekolahku_backend/internals/features/students/admissions/model"
	stuAttModel "sekolahku_backend/internals/features/students/attendance/model"
	enrollmentModel "sekolahku_backend/internals/features/students/enrollments/model"
	studentModel "sekolahku_backend/internals/features/students/students/model"
	busModel "sekolahku_backend/internals/features/transport/buses/model"
	userModel "sekolahku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("⚠️ Gagal ambil sql.DB: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua tabel, urut dari tabel referensi
// ke tabel yang punya FK (supaya constraint bisa dibuat sekali jalan).
func Migrate() {
	if err := DB.AutoMigrate(
		// referensi
		&userModel.UserModel{},
		&yearModel.AcademicYearModel{},
		&employeeModel.DepartmentModel{},

		// employee + anak-anaknya
		&employeeModel.EmployeeModel{},
		&employeeModel.EmployeeSalaryModel{},
		&employeeModel.EmployeeDocumentModel{},
		&empAttModel.EmployeeAttendanceModel{},
		&leaveModel.EmployeeLeaveModel{},
		&leaveModel.LeaveStatusHistoryModel{},

		// akademik
		&classModel.ClassModel{},
		&subjectModel.SubjectModel{},
		&subjectModel.CourseOfferingModel{},
		&subjectModel.CourseMaterialModel{},
		&timetableModel.TimetableModel{},
		&timetableModel.TimetableSlotModel{},

		// siswa + anak-anaknya
		&studentModel.StudentModel{},
		&studentModel.StudentDetailModel{},
		&studentModel.StudentFamilyDetailModel{},
		&studentModel.StudentPreviousAcademicModel{},
		&studentModel.StudentPaymentDetailModel{},
		&studentModel.StudentHostelDetailModel{},
		&studentModel.StudentFacilityModel{},
		&studentModel.StudentAddressModel{},
		&studentModel.StudentDocumentModel{},
		&admissionModel.AdmissionModel{},
		&enrollmentModel.StudentCourseEnrollmentModel{},
		&stuAttModel.StudentAttendanceModel{},
		&stuAttModel.StudentLeaveModel{},
		&stuAttModel.StudentLeaveStatusHistoryModel{},

		// transportasi
		&busModel.BusModel{},
		&busModel.BusStopModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
