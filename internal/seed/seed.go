package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/shiningstar/learninglens/internal/app/models"
	appRepos "github.com/shiningstar/learninglens/internal/app/repositories"
	"github.com/shiningstar/learninglens/internal/config"
	"github.com/shiningstar/learninglens/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account and a demo teacher
// and student so a fresh install is usable immediately.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error // To collect potential errors without stopping the process

	// --- Default Admin User --- //
	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Username: "admin",
				Email:    cfg.Admin.Email,
				Password: hashedPassword,
				Role:     appModels.RoleAdmin,
			}

			if err := userRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
			}
		}
	} else {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	}

	// --- Demo Teacher User --- //
	exists, err = userRepo.UsernameExists(ctx, "demo.teacher")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if demo teacher exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		hashedPassword, err := auth.HashPassword("Teacher123!")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing demo teacher password")
			finalErr = errors.Join(finalErr, err)
		} else {
			teacher := &appModels.User{
				Username: "demo.teacher",
				Email:    "teacher@shiningstar.edu",
				Password: hashedPassword,
				Role:     appModels.RoleTeacher,
			}

			if err := userRepo.Create(ctx, teacher); err != nil {
				lgr.Error().Err(err).Msg("Error creating demo teacher")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Demo Student --- //
	students, err := studentRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing students")
		finalErr = errors.Join(finalErr, err)
	} else if len(students) == 0 {
		parentEmail := "parent@example.com"
		student := &appModels.Student{
			FirstName:   "Demo",
			LastName:    "Student",
			Age:         10,
			Grade:       "4",
			ParentEmail: &parentEmail,
		}

		if err := studentRepo.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int64("studentID", student.ID).Msg("Demo student created successfully")
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr // Return collected errors, if any
}
