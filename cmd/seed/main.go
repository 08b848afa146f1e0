package main

import (
	"log"
	"os"
	"time"

	"hr-assistant-be/internal/model"
	"hr-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo data...")

	users := seedUsers(db)
	org := seedOrganization(db)
	projects := seedProjects(db, org)
	seedTasks(db, projects, users)
	seedAttendance(db, users)

	color.Green("Seeding complete.")
}

func seedUsers(db *gorm.DB) []model.User {
	users := []model.User{
		{Id: uuid.New(), Code: "1024", FullName: "Ravi Kumar", Email: "ravi.kumar@example.com", Designation: "Software Engineer", Department: "Engineering", Status: "active"},
		{Id: uuid.New(), Code: "1025", FullName: "Priya Sharma", Email: "priya.sharma@example.com", Designation: "QA Engineer", Department: "Engineering", Status: "active"},
		{Id: uuid.New(), Code: "2048", FullName: "John Mathew", Email: "john.mathew@example.com", Designation: "Project Manager", Department: "Delivery", Status: "active"},
	}
	upsert(db, "code", &users)
	color.Yellow("  users: %d", len(users))
	return users
}

func seedOrganization(db *gorm.DB) model.Organization {
	org := model.Organization{Id: uuid.New(), Name: "Acme Corp"}
	upsert(db, "name", &org)
	color.Yellow("  organizations: 1")
	return org
}

func seedProjects(db *gorm.DB, org model.Organization) []model.Project {
	projects := []model.Project{
		{Id: uuid.New(), Name: "Atlas", Status: "active", OrganizationId: &org.Id},
		{Id: uuid.New(), Name: "Phoenix", Status: "on_hold", OrganizationId: &org.Id},
	}
	for i := range projects {
		db.Where("name = ?", projects[i].Name).FirstOrCreate(&projects[i])
	}
	color.Yellow("  projects: %d", len(projects))
	return projects
}

func seedTasks(db *gorm.DB, projects []model.Project, users []model.User) {
	due := time.Now().AddDate(0, 0, 7)
	overdue := time.Now().AddDate(0, 0, -3)
	tasks := []model.Task{
		{Id: uuid.New(), Name: "Payment gateway integration", ProjectId: &projects[0].Id, AssigneeId: &users[0].Id, Status: "open", Severity: "high", DueDate: &due, HoursSpent: 12.5},
		{Id: uuid.New(), Name: "Login page redesign", ProjectId: &projects[0].Id, AssigneeId: &users[1].Id, Status: "completed", Severity: "medium", HoursSpent: 8},
		{Id: uuid.New(), Name: "Data migration script", ProjectId: &projects[1].Id, AssigneeId: &users[0].Id, Status: "overdue", Severity: "critical", DueDate: &overdue, HoursSpent: 20},
	}
	for i := range tasks {
		db.Where("name = ?", tasks[i].Name).FirstOrCreate(&tasks[i])
	}
	color.Yellow("  tasks: %d", len(tasks))
}

func seedAttendance(db *gorm.DB, users []model.User) {
	count := 0
	for day := 0; day < 5; day++ {
		date := time.Now().AddDate(0, 0, -day)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		for i, u := range users {
			in := date.Add(9 * time.Hour).Add(time.Duration(i*12) * time.Minute)
			out := date.Add(18 * time.Hour)
			late := in.Hour() > 9 || (in.Hour() == 9 && in.Minute() > 0)
			minutesLate := 0
			if late {
				minutesLate = in.Minute()
			}
			rec := model.AttendanceRecord{
				Id:          uuid.New(),
				UserId:      u.Id,
				Date:        date,
				InTime:      &in,
				OutTime:     &out,
				Present:     true,
				Late:        late,
				MinutesLate: minutesLate,
				WorkedHours: out.Sub(in).Hours(),
			}
			db.Where("user_id = ? AND date = ?", u.Id, date).FirstOrCreate(&rec)
			count++
		}
	}
	color.Yellow("  attendance records: %d", count)
}

func upsert(db *gorm.DB, conflictColumn string, value interface{}) {
	db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: conflictColumn}},
		DoNothing: true,
	}).Create(value)
}
