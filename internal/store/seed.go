package store

import (
	"time"

	"github.com/taskboard/taskboard/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// DemoEmail and DemoPassword identify the seeded demo account.
const (
	DemoEmail    = "user@example.com"
	DemoPassword = "password123"
)

func due(days int) *string {
	s := time.Now().UTC().AddDate(0, 0, days).Format(time.RFC3339)
	return &s
}

// seedDb builds the initial document written on first run: one demo user,
// three boards and eight tasks spread across them.
func seedDb() (*model.Db, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &model.Db{
		Version: 1,
		Users: []model.User{
			{
				ID:           "user-1",
				Email:        DemoEmail,
				Username:     "Test User",
				Avatar:       "https://i.pravatar.cc/150?u=a042581f4e29026704d",
				PasswordHash: string(hash),
			},
		},
		Boards: []model.Board{
			{ID: "board-1", Name: "Work", UserID: "user-1"},
			{ID: "board-2", Name: "Personal", UserID: "user-1"},
			{ID: "board-3", Name: "Project Phoenix", UserID: "user-1"},
		},
		Tasks: []model.Task{
			{
				ID: "task-1", BoardID: "board-1",
				Title:       "Design landing page mockups",
				Description: "Create high-fidelity mockups for the new landing page in Figma. Focus on a clean and modern design.",
				Status:      model.StatusInProgress,
				DueDate:     due(5),
				Tags:        []string{"design", "ui", "figma"},
			},
			{
				ID: "task-2", BoardID: "board-1",
				Title:       "Develop API for user authentication",
				Description: "Implement JWT-based authentication endpoints. Includes login, registration, and password reset.",
				Status:      model.StatusNotStarted,
				DueDate:     due(10),
				Tags:        []string{"development", "backend", "security"},
			},
			{
				ID: "task-3", BoardID: "board-1",
				Title:       "Q3 Financial Report",
				Description: "Finalize and submit the financial report for the third quarter.",
				Status:      model.StatusCompleted,
				DueDate:     due(-2),
				Tags:        []string{"finance", "reporting"},
			},
			{
				ID: "task-4", BoardID: "board-2",
				Title:       "Schedule dentist appointment",
				Description: "Call the clinic to schedule a routine check-up.",
				Status:      model.StatusNotStarted,
				Tags:        []string{"health", "personal"},
			},
			{
				ID: "task-5", BoardID: "board-2",
				Title:       "Buy groceries",
				Description: "Milk, bread, eggs, and vegetables.",
				Status:      model.StatusNotStarted,
				DueDate:     due(1),
				Tags:        []string{"shopping", "home"},
			},
			{
				ID: "task-6", BoardID: "board-3",
				Title:       "Setup project repository",
				Description: "Initialize Git repo on GitHub and set up main branches and CI/CD pipeline.",
				Status:      model.StatusCompleted,
				DueDate:     due(-20),
				Tags:        []string{"setup", "devops"},
			},
			{
				ID: "task-7", BoardID: "board-3",
				Title:       "Define MVP features",
				Description: "Brainstorm and document the core features for the Minimum Viable Product.",
				Status:      model.StatusInProgress,
				DueDate:     due(3),
				Tags:        []string{"planning", "product"},
			},
			{
				ID: "task-8", BoardID: "board-1",
				Title:       "Review pull requests",
				Description: "Go through open PRs on GitHub and provide feedback.",
				Status:      model.StatusNotStarted,
				DueDate:     due(2),
				Tags:        []string{"development", "code-review"},
			},
		},
	}, nil
}
