package http

import (
	"github.com/CATIGERN/job-applications/internal/domain"
)

// JobOfferResponse is the API representation of a job offer.
type JobOfferResponse struct {
	ID                   string `json:"id" doc:"Public identifier"`
	JobTitle             string `json:"jobTitle" doc:"Title, unique ignoring case"`
	JobDescription       string `json:"jobDescription"`
	Location             string `json:"location"`
	JobOfferStatus       string `json:"jobOfferStatus" enum:"ACTIVE,INACTIVE"`
	StartDate            string `json:"startDate" doc:"Start date (YYYY-MM-DD)"`
	Vacancies            int    `json:"vacancies"`
	NumberOfApplications int    `json:"numberOfApplications" doc:"Applications received so far"`
}

func toJobOfferResponse(o domain.JobOffer) JobOfferResponse {
	return JobOfferResponse{
		ID:                   o.ID.String(),
		JobTitle:             o.Title,
		JobDescription:       o.Description,
		Location:             o.Location,
		JobOfferStatus:       string(o.Status),
		StartDate:            o.StartDate,
		Vacancies:            o.Vacancies,
		NumberOfApplications: len(o.Applications),
	}
}

// JobApplicationResponse is the API representation of a job application.
type JobApplicationResponse struct {
	ID                string `json:"id" doc:"Public identifier"`
	CandidateEmail    string `json:"candidateEmail"`
	ResumeText        string `json:"resumeText"`
	ApplicationStatus string `json:"applicationStatus" enum:"APPLIED,INVITED,HIRED,REJECTED"`
}

func toJobApplicationResponse(a domain.JobApplication) JobApplicationResponse {
	return JobApplicationResponse{
		ID:                a.ID.String(),
		CandidateEmail:    a.CandidateEmail,
		ResumeText:        a.ResumeText,
		ApplicationStatus: string(a.Status),
	}
}

func toJobApplicationResponses(apps []domain.JobApplication) []JobApplicationResponse {
	resp := make([]JobApplicationResponse, len(apps))
	for i, a := range apps {
		resp[i] = toJobApplicationResponse(a)
	}
	return resp
}
