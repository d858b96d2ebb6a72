package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/CATIGERN/job-applications/internal/app"
	"github.com/CATIGERN/job-applications/internal/domain"
)

// --- Create Job Application ---

type CreateJobApplicationInput struct {
	ID   string `path:"id" doc:"Job offer ID"`
	Body struct {
		CandidateEmail string `json:"candidateEmail" format:"email" maxLength:"50"`
		ResumeText     string `json:"resumeText" minLength:"1" maxLength:"1000"`
	}
}

type JobApplicationOutput struct {
	Body JobApplicationResponse
}

// --- Get Job Application ---

type GetJobApplicationInput struct {
	ID string `path:"id" doc:"Job application ID"`
}

// --- Update Job Application Status ---

const errStatusMissing = "status field is not present in the body."

type UpdateJobApplicationInput struct {
	ID   string `path:"id" doc:"Job application ID"`
	Body struct {
		Status string `json:"status,omitempty" enum:"APPLIED,INVITED,HIRED,REJECTED" doc:"New application status"`
	}
}

func registerJobApplications(api huma.API, svc *app.JobApplicationService) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-job-application",
		Method:        http.MethodPost,
		Path:          BasePath + "/application/{id}",
		Summary:       "Apply to a job offer",
		Tags:          []string{"Job Applications"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateJobApplicationInput) (*JobApplicationOutput, error) {
		offerID, err := parseID(input.ID, domain.ErrJobOfferNotFound)
		if err != nil {
			return nil, err
		}

		a, err := svc.Create(ctx, offerID, domain.JobApplicationDraft{
			CandidateEmail: input.Body.CandidateEmail,
			ResumeText:     input.Body.ResumeText,
		})
		if err != nil {
			return nil, toHumaError(err)
		}
		return &JobApplicationOutput{Body: toJobApplicationResponse(a)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-job-application",
		Method:      http.MethodGet,
		Path:        BasePath + "/application/{id}",
		Summary:     "Get a job application by ID",
		Tags:        []string{"Job Applications"},
	}, func(ctx context.Context, input *GetJobApplicationInput) (*JobApplicationOutput, error) {
		id, err := parseID(input.ID, domain.ErrJobApplicationNotFound)
		if err != nil {
			return nil, err
		}

		a, err := svc.GetByID(ctx, id)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &JobApplicationOutput{Body: toJobApplicationResponse(a)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-job-application",
		Method:      http.MethodPatch,
		Path:        BasePath + "/application/{id}",
		Summary:     "Update the status of a job application",
		Tags:        []string{"Job Applications"},
	}, func(ctx context.Context, input *UpdateJobApplicationInput) (*JobApplicationOutput, error) {
		id, err := parseID(input.ID, domain.ErrJobApplicationNotFound)
		if err != nil {
			return nil, err
		}

		if input.Body.Status == "" {
			return nil, huma.Error400BadRequest(errStatusMissing)
		}

		a, err := svc.UpdateStatus(ctx, id, domain.ApplicationStatus(input.Body.Status))
		if err != nil {
			return nil, toHumaError(err)
		}
		return &JobApplicationOutput{Body: toJobApplicationResponse(a)}, nil
	})
}
