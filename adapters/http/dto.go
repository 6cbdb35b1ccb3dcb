package http

import (
	"time"

	"github.com/avlorenzana/jobtrail/internal/domain/application"
	"github.com/avlorenzana/jobtrail/internal/domain/identity"
	"github.com/avlorenzana/jobtrail/internal/domain/profile"
)

// Auth DTOs

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type IdentityDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func ToIdentityDTO(id *identity.Identity) IdentityDTO {
	return IdentityDTO{
		ID:    id.ID,
		Email: id.Email,
		Name:  id.Name,
	}
}

// Application DTOs

type JobApplicationDTO struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	AppliedDate string    `json:"appliedDate"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateApplicationRequest struct {
	ID          string `json:"id"`
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=applied interview offer rejected"`
	Location    string `json:"location" binding:"required"`
	AppliedDate string `json:"appliedDate" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateApplicationRequest struct {
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=applied interview offer rejected"`
	Location    string `json:"location" binding:"required"`
	AppliedDate string `json:"appliedDate" binding:"required"`
	Notes       string `json:"notes"`
}

func ToJobApplicationDTO(a *application.JobApplication) JobApplicationDTO {
	return JobApplicationDTO{
		ID:          a.ID,
		Company:     a.Company,
		Position:    a.Position,
		Status:      string(a.Status),
		Location:    a.Location,
		AppliedDate: a.AppliedDate,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func ToJobApplicationDTOs(apps []application.JobApplication) []JobApplicationDTO {
	dtos := make([]JobApplicationDTO, len(apps))
	for i := range apps {
		dtos[i] = ToJobApplicationDTO(&apps[i])
	}
	return dtos
}

// Notification DTOs

type NotificationApplicationPayload struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	AppliedDate string `json:"appliedDate"`
	Notes       string `json:"notes"`
}

type SendNotificationRequest struct {
	Type        string                         `json:"type" binding:"required"`
	Application NotificationApplicationPayload `json:"application" binding:"required"`
}

func (r *SendNotificationRequest) ToDomainApplication() application.JobApplication {
	return application.JobApplication{
		ID:          r.Application.ID,
		Company:     r.Application.Company,
		Position:    r.Application.Position,
		Status:      application.Status(r.Application.Status),
		Location:    r.Application.Location,
		AppliedDate: r.Application.AppliedDate,
		Notes:       r.Application.Notes,
	}
}

// Profile DTOs

type PersonalInfoDTO struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Country      string    `json:"country,omitempty"`
	City         string    `json:"city,omitempty"`
	Municipality string    `json:"municipality,omitempty"`
	Barangay     string    `json:"barangay,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SavePersonalInfoRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Title        string `json:"title"`
	ImageURL     string `json:"imageUrl"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Municipality string `json:"municipality"`
	Barangay     string `json:"barangay"`
}

func (r *SavePersonalInfoRequest) ToDomain() profile.PersonalInfo {
	return profile.PersonalInfo{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Location:     r.Location,
		Title:        r.Title,
		ImageURL:     r.ImageURL,
		Country:      r.Country,
		City:         r.City,
		Municipality: r.Municipality,
		Barangay:     r.Barangay,
	}
}

func ToPersonalInfoDTO(p *profile.PersonalInfo) PersonalInfoDTO {
	return PersonalInfoDTO{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Location,
		Title:        p.Title,
		ImageURL:     p.ImageURL,
		Country:      p.Country,
		City:         p.City,
		Municipality: p.Municipality,
		Barangay:     p.Barangay,
		UpdatedAt:    p.UpdatedAt,
	}
}
