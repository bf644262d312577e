package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/transferdesk/internal/app/models"
	appRepos "github.com/yigit/transferdesk/internal/app/repositories"
)

// DefaultColleges are the constituent and affiliated colleges offered in
// the transfer and director forms.
var DefaultColleges = []appModels.College{
	{CollegeName: "Pokhara Engineering College", CollegeAddress: "Phirke, Pokhara"},
	{CollegeName: "Gandaki College of Engineering and Science", CollegeAddress: "Lamachaur, Pokhara"},
	{CollegeName: "School of Engineering, Pokhara University", CollegeAddress: "Dhungepatan, Pokhara"},
	{CollegeName: "Nepal Engineering College", CollegeAddress: "Changunarayan, Bhaktapur"},
}

// DefaultPrograms are the programs a student can be enrolled in
var DefaultPrograms = []appModels.Program{
	{Name: "Computer Engineering"},
	{Name: "Civil Engineering"},
	{Name: "Electrical Engineering"},
	{Name: "Software Engineering"},
}

// CreateDefaultData creates the lookup collections if they are missing.
// With samples set it also adds demo students and dean approvals when
// those collections are empty.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, samples bool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Colleges/Programs)...")
	var finalErr error // collect errors without stopping the process

	for _, c := range DefaultColleges {
		existing, err := repos.CollegeRepository.FindByName(ctx, c.CollegeName)
		if err != nil {
			lgr.Error().Err(err).Str("college", c.CollegeName).Msg("Error looking up college")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if existing != nil {
			continue
		}
		college := c
		if err := repos.CollegeRepository.Create(ctx, &college); err != nil {
			lgr.Error().Err(err).Str("college", c.CollegeName).Msg("Error creating college")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, p := range DefaultPrograms {
		existing, err := repos.ProgramRepository.FindByName(ctx, p.Name)
		if err != nil {
			lgr.Error().Err(err).Str("program", p.Name).Msg("Error looking up program")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if existing != nil {
			continue
		}
		program := p
		if err := repos.ProgramRepository.Create(ctx, &program); err != nil {
			lgr.Error().Err(err).Str("program", p.Name).Msg("Error creating program")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if samples {
		finalErr = errors.Join(finalErr, createSamples(ctx, repos, lgr))
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func createSamples(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	var finalErr error

	students, err := repos.StudentRepository.ListStudents(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		lgr.Info().Msg("Creating sample students...")
		for _, s := range []appModels.Student{
			{Name: "Sita Gurung", PuRegNumber: "2019-1-22-0101", College: "Pokhara Engineering College", Program: "Computer Engineering", Semester: "5"},
			{Name: "Ram Thapa", PuRegNumber: "2019-1-22-0102", College: "Pokhara Engineering College", Program: "Civil Engineering", Semester: "5"},
			{Name: "Anita Sharma", PuRegNumber: "2020-1-22-0210", College: "Gandaki College of Engineering and Science", Program: "Software Engineering", Semester: "3"},
			{Name: "Sita Gurung", PuRegNumber: "2021-1-22-0333", College: "Nepal Engineering College", Program: "Electrical Engineering", Semester: "1"},
		} {
			student := s
			if err := repos.StudentRepository.CreateStudent(ctx, &student); err != nil {
				lgr.Error().Err(err).Str("student", s.Name).Msg("Error creating sample student")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	approvals, err := repos.ApprovalRepository.ListByStage(ctx, appModels.StageDean)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if len(approvals) == 0 {
		lgr.Info().Msg("Creating sample dean approvals...")
		for _, a := range []appModels.Approval{
			{StudentName: "Ram Thapa", RegistrationNumber: "2019-1-22-0102", SourceCollege: "Pokhara Engineering College", DestinationCollege: "School of Engineering, Pokhara University", Program: "Civil Engineering", Stage: appModels.StageDean, Status: "pending"},
			{StudentName: "Anita Sharma", RegistrationNumber: "2020-1-22-0210", SourceCollege: "Gandaki College of Engineering and Science", DestinationCollege: "Pokhara Engineering College", Program: "Software Engineering", Stage: appModels.StageDean, Status: "pending"},
		} {
			approval := a
			if err := repos.ApprovalRepository.Create(ctx, &approval); err != nil {
				lgr.Error().Err(err).Str("student", a.StudentName).Msg("Error creating sample approval")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	return finalErr
}
