package api

import (
	"context"
	"fmt"
	"net/http"
)

// Vet endpoints, available to accounts with the veterinario role.

// VetMe retrieves the vet's profile.
func (c *Client) VetMe(ctx context.Context) (*VetProfile, error) {
	var profile VetProfile
	if err := c.doRequest(ctx, http.MethodGet, "/api/vet/me", nil, &profile); err != nil {
		return nil, fmt.Errorf("get vet profile: %w", err)
	}
	return &profile, nil
}

// VetSaveProfile updates the vet's profile and clinic details.
func (c *Client) VetSaveProfile(ctx context.Context, req VetProfile) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/vet/me/profile", req, nil); err != nil {
		return fmt.Errorf("save vet profile: %w", err)
	}
	return nil
}

// VetOwners lists every owner registered with the clinic.
func (c *Client) VetOwners(ctx context.Context) ([]VetOwner, error) {
	var owners []VetOwner
	if err := c.doRequest(ctx, http.MethodGet, "/api/vet/owners", nil, &owners); err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	return owners, nil
}

// VetPets lists every pet across owners.
func (c *Client) VetPets(ctx context.Context) ([]VetPet, error) {
	var pets []VetPet
	if err := c.doRequest(ctx, http.MethodGet, "/api/vet/mascotas", nil, &pets); err != nil {
		return nil, fmt.Errorf("list clinic pets: %w", err)
	}
	return pets, nil
}

// VetAppointments lists every appointment at the clinic.
func (c *Client) VetAppointments(ctx context.Context) ([]VetAppointment, error) {
	var appointments []VetAppointment
	if err := c.doRequest(ctx, http.MethodGet, "/api/vet/citas", nil, &appointments); err != nil {
		return nil, fmt.Errorf("list clinic appointments: %w", err)
	}
	return appointments, nil
}

// VetUpdateAppointment changes an appointment's state or notes.
func (c *Client) VetUpdateAppointment(ctx context.Context, id string, req VetAppointmentUpdateRequest) (*VetAppointment, error) {
	var appointment VetAppointment
	if err := c.doRequest(ctx, http.MethodPatch, "/api/vet/citas/"+id, req, &appointment); err != nil {
		return nil, fmt.Errorf("update clinic appointment: %w", err)
	}
	return &appointment, nil
}
