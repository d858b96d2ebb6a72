// Package http exposes the job board over a Huma API.
package http

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/CATIGERN/job-applications/internal/app"
)

// Register adds all job offer and job application routes to the Huma API.
func Register(api huma.API, offers *app.JobOfferService, applications *app.JobApplicationService) {
	registerJobOffers(api, offers)
	registerJobApplications(api, applications)
}
