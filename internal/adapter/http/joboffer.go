package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/CATIGERN/job-applications/internal/app"
	"github.com/CATIGERN/job-applications/internal/domain"
)

// BasePath prefixes every route of the API.
const BasePath = "/jobmanagement/v1"

// --- List Job Offers ---

type ListJobOffersInput struct {
	Status string `query:"status" default:"ACTIVE" enum:"ACTIVE,INACTIVE" doc:"Filter by status"`
	Limit  int    `query:"limit" default:"10" doc:"Max results"`
	Offset int    `query:"offset" default:"0" doc:"Results to skip"`
}

type ListJobOffersOutput struct {
	Body []JobOfferResponse
}

// --- Create Job Offer ---

type CreateJobOfferInput struct {
	Body struct {
		JobTitle       string `json:"jobTitle" minLength:"1" maxLength:"50"`
		JobDescription string `json:"jobDescription" minLength:"1" maxLength:"1000"`
		Location       string `json:"location" minLength:"1" maxLength:"50"`
		StartDate      string `json:"startDate" maxLength:"10" pattern:"^\\d{4}-\\d{2}-\\d{2}" doc:"Start date (YYYY-MM-DD)"`
		Vacancies      int    `json:"vacancies" minimum:"1" maximum:"100"`
	}
}

type JobOfferOutput struct {
	Body JobOfferResponse
}

// --- Get Job Offer ---

type GetJobOfferInput struct {
	ID string `path:"id" doc:"Job offer ID"`
}

// --- List Job Offer Applications ---

type ListJobOfferApplicationsInput struct {
	ID                string `path:"id" doc:"Job offer ID"`
	ApplicationStatus string `query:"applicationStatus" default:"APPLIED" enum:"APPLIED,INVITED,HIRED,REJECTED" doc:"Filter by status"`
	Limit             int    `query:"limit" default:"10" doc:"Max results"`
	Offset            int    `query:"offset" default:"0" doc:"Results to skip"`
}

type JobApplicationsOutput struct {
	Body []JobApplicationResponse
}

func registerJobOffers(api huma.API, svc *app.JobOfferService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-job-offers",
		Method:      http.MethodGet,
		Path:        BasePath + "/joboffers",
		Summary:     "List job offers by status",
		Tags:        []string{"Job Offers"},
	}, func(ctx context.Context, input *ListJobOffersInput) (*ListJobOffersOutput, error) {
		offers, err := svc.List(ctx, domain.OfferStatus(input.Status), input.Limit, input.Offset)
		if err != nil {
			return nil, toHumaError(err)
		}

		resp := make([]JobOfferResponse, len(offers))
		for i, o := range offers {
			resp[i] = toJobOfferResponse(o)
		}
		return &ListJobOffersOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-job-offer",
		Method:        http.MethodPost,
		Path:          BasePath + "/joboffer",
		Summary:       "Create a job offer",
		Tags:          []string{"Job Offers"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateJobOfferInput) (*JobOfferOutput, error) {
		offer, err := svc.Create(ctx, domain.JobOfferDraft{
			Title:       input.Body.JobTitle,
			Description: input.Body.JobDescription,
			Location:    input.Body.Location,
			StartDate:   input.Body.StartDate,
			Vacancies:   input.Body.Vacancies,
		})
		if err != nil {
			return nil, toHumaError(err)
		}
		return &JobOfferOutput{Body: toJobOfferResponse(offer)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-job-offer",
		Method:      http.MethodGet,
		Path:        BasePath + "/joboffer/{id}",
		Summary:     "Get a job offer by ID",
		Tags:        []string{"Job Offers"},
	}, func(ctx context.Context, input *GetJobOfferInput) (*JobOfferOutput, error) {
		id, err := parseID(input.ID, domain.ErrJobOfferNotFound)
		if err != nil {
			return nil, err
		}

		offer, err := svc.GetByID(ctx, id)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &JobOfferOutput{Body: toJobOfferResponse(offer)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-job-offer-applications",
		Method:      http.MethodGet,
		Path:        BasePath + "/joboffer/{id}/applications",
		Summary:     "List the applications of a job offer by status",
		Tags:        []string{"Job Offers"},
	}, func(ctx context.Context, input *ListJobOfferApplicationsInput) (*JobApplicationsOutput, error) {
		id, err := parseID(input.ID, domain.ErrJobOfferNotFound)
		if err != nil {
			return nil, err
		}

		apps, err := svc.ListApplications(ctx, id, domain.ApplicationStatus(input.ApplicationStatus), input.Limit, input.Offset)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &JobApplicationsOutput{Body: toJobApplicationResponses(apps)}, nil
	})
}
