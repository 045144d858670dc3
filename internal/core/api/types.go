package api

// Wire shapes follow the backend's JSON field names, which are Spanish for
// most domain objects ("nombre", "mascota", "cita", ...).

// Roles accepted by the backend.
const (
	RoleOwner = "dueno"
	RoleVet   = "veterinario"
)

// Appointment states the vet can set.
const (
	AppointmentPending    = "pendiente"
	AppointmentInProgress = "en_curso"
	AppointmentDone       = "hecha"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"nombre,omitempty"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"nombre"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Pet struct {
	ID        string `json:"id"`
	Name      string `json:"nombre"`
	Species   string `json:"especie"`
	Breed     string `json:"raza,omitempty"`
	BirthDate string `json:"fechaNacimiento,omitempty"`
	Sex       string `json:"sexo,omitempty"`
	Age       int    `json:"edad,omitempty"`
}

type PetCreateRequest struct {
	Name      string `json:"nombre"`
	Species   string `json:"especie"`
	Breed     string `json:"raza,omitempty"`
	BirthDate string `json:"fechaNacimiento,omitempty"`
	Sex       string `json:"sexo,omitempty"`
	Age       int    `json:"edad,omitempty"`
}

type PetUpdateRequest struct {
	Name      string `json:"nombre,omitempty"`
	Species   string `json:"especie,omitempty"`
	Breed     string `json:"raza,omitempty"`
	BirthDate string `json:"fechaNacimiento,omitempty"`
	Sex       string `json:"sexo,omitempty"`
	Age       int    `json:"edad,omitempty"`
}

type Appointment struct {
	ID     string `json:"id"`
	Date   string `json:"fechaIso"`
	Reason string `json:"motivo"`
	PetID  string `json:"mascotaId"`
	State  string `json:"estado,omitempty"`
	Notes  string `json:"notas,omitempty"`
}

type AppointmentCreateRequest struct {
	Date   string `json:"fechaIso"`
	Reason string `json:"motivo"`
	PetID  string `json:"mascotaId"`
}

type AppointmentUpdateRequest struct {
	Date   string `json:"fechaIso,omitempty"`
	Reason string `json:"motivo,omitempty"`
	PetID  string `json:"mascotaId,omitempty"`
}

type OwnerProfile struct {
	Name    string `json:"nombre,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Address string `json:"direccion,omitempty"`
	Email   string `json:"email,omitempty"`
}

type OwnerProfileRequest struct {
	Name    string `json:"nombre"`
	Phone   string `json:"telefono,omitempty"`
	Address string `json:"direccion,omitempty"`
}

type VetOwner struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"nombre,omitempty"`
	Email string `json:"email,omitempty"`
}

type VetPet struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"nombre,omitempty"`
	Species   string `json:"especie,omitempty"`
	OwnerName string `json:"duenioNombre,omitempty"`
	OwnerID   string `json:"ownerId,omitempty"`
}

type VetAppointment struct {
	ID        string `json:"id,omitempty"`
	Date      string `json:"fechaIso,omitempty"`
	Reason    string `json:"motivo,omitempty"`
	State     string `json:"estado,omitempty"`
	PetID     string `json:"mascotaId,omitempty"`
	OwnerID   string `json:"ownerId,omitempty"`
	OwnerName string `json:"duenioNombre,omitempty"`
	PetName   string `json:"mascotaNombre,omitempty"`
	Notes     string `json:"notas,omitempty"`
}

type VetAppointmentUpdateRequest struct {
	State string `json:"estado,omitempty"`
	Notes string `json:"notas,omitempty"`
}

type VetProfile struct {
	Name               string `json:"nombre,omitempty"`
	Phone              string `json:"telefono,omitempty"`
	Address            string `json:"direccion,omitempty"`
	ClinicName         string `json:"clinicName,omitempty"`
	ClinicPhone        string `json:"clinicPhone,omitempty"`
	ClinicAddress      string `json:"clinicAddress,omitempty"`
	Speciality         string `json:"speciality,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Email              string `json:"email,omitempty"`
}

type PrediagnosisRequest struct {
	Symptoms string `json:"sintomas"`
	Species  string `json:"especie,omitempty"`
	Age      string `json:"edad,omitempty"`
	Context  string `json:"contexto,omitempty"`
}

type PrediagnosisParsed struct {
	Recommendations string   `json:"recomendaciones"`
	RedFlags        string   `json:"red_flags"`
	Confidence      string   `json:"confidence"`
	Sources         []string `json:"fuentes"`
	Disclaimer      string   `json:"disclaimer"`
}

type PrediagnosisResponse struct {
	OK        bool                `json:"ok"`
	ConsultID string              `json:"consultId"`
	Parsed    *PrediagnosisParsed `json:"parsed"`
	Raw       string              `json:"raw"`
}

type Feedback struct {
	ID         string `json:"id"`
	Rating     int    `json:"rating"`
	Suggestion string `json:"sugerencia"`
	CreatedAt  string `json:"createdAt"`
}

type FeedbackCreateRequest struct {
	Rating     int    `json:"rating"`
	Suggestion string `json:"sugerencia"`
}

type FeedbackSummary struct {
	Average float64 `json:"avg"`
	Count   int     `json:"count"`
}
