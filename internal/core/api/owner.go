package api

import (
	"context"
	"fmt"
	"net/http"
)

// Owner endpoints. All of these go through the request gate, so they carry
// the bearer token of the logged-in owner.

// Me retrieves the owner's profile.
func (c *Client) Me(ctx context.Context) (*OwnerProfile, error) {
	var profile OwnerProfile
	if err := c.doRequest(ctx, http.MethodGet, "/api/owners/me", nil, &profile); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile updates the owner's profile.
func (c *Client) SaveProfile(ctx context.Context, req OwnerProfileRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/owners/me/profile", req, nil); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// ListPets returns the owner's registered pets.
func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	var pets []Pet
	if err := c.doRequest(ctx, http.MethodGet, "/api/owners/me/mascotas", nil, &pets); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return pets, nil
}

// CreatePet registers a new pet.
func (c *Client) CreatePet(ctx context.Context, req PetCreateRequest) (*Pet, error) {
	var pet Pet
	if err := c.doRequest(ctx, http.MethodPost, "/api/owners/me/mascotas", req, &pet); err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	return &pet, nil
}

// UpdatePet updates a pet's fields.
func (c *Client) UpdatePet(ctx context.Context, id string, req PetUpdateRequest) (*Pet, error) {
	var pet Pet
	if err := c.doRequest(ctx, http.MethodPut, "/api/owners/me/mascotas/"+id, req, &pet); err != nil {
		return nil, fmt.Errorf("update pet: %w", err)
	}
	return &pet, nil
}

// DeletePet removes a pet.
func (c *Client) DeletePet(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/owners/me/mascotas/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	return nil
}

// ListAppointments returns the owner's appointments.
func (c *Client) ListAppointments(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if err := c.doRequest(ctx, http.MethodGet, "/api/owners/me/citas", nil, &appointments); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

// CreateAppointment books an appointment.
func (c *Client) CreateAppointment(ctx context.Context, req AppointmentCreateRequest) (*Appointment, error) {
	var appointment Appointment
	if err := c.doRequest(ctx, http.MethodPost, "/api/owners/me/citas", req, &appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &appointment, nil
}

// UpdateAppointment reschedules or edits an appointment.
func (c *Client) UpdateAppointment(ctx context.Context, id string, req AppointmentUpdateRequest) (*Appointment, error) {
	var appointment Appointment
	if err := c.doRequest(ctx, http.MethodPut, "/api/owners/me/citas/"+id, req, &appointment); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return &appointment, nil
}

// DeleteAppointment cancels an appointment.
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/owners/me/citas/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
